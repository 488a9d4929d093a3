package compress

import (
	"fmt"

	"github.com/arloliu/ehrlens/errs"
	"github.com/arloliu/ehrlens/format"
)

// Compressor compresses a complete in-memory payload.
type Compressor interface {
	// Compress compresses data and returns a newly allocated result.
	//
	// The input slice is not modified. The output is a complete, self-describing
	// frame that the matching Decompressor (or the algorithm's command line
	// tool) can decode.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete in-memory payload.
type Decompressor interface {
	// Decompress decodes data produced by the matching algorithm.
	//
	// Error conditions:
	//   - Returns error if the input is corrupted or truncated
	//   - Returns error if the input was produced by a different algorithm
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of what is being decoded (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrUnsupportedCompression for unknown types
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}
