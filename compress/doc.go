// Package compress decodes and encodes the compressed table files that ehrlens
// loads.
//
// Clinical extracts are often shipped as large CSV files squeezed with a
// general purpose compressor. This package wraps the supported algorithms
// behind a single Codec interface so the dataset loader can pick one from the
// file extension and hand plain CSV bytes to the parser.
//
// # Supported algorithms
//
//   - None: bytes pass through unchanged
//   - Zstd: Zstandard frames (github.com/klauspost/compress/zstd), the format
//     written by the `zstd` command line tool
//   - S2: S2/Snappy framed streams (github.com/klauspost/compress/s2), readable
//     from `s2c` and Snappy framing producers
//   - LZ4: LZ4 frames (github.com/pierrec/lz4/v4), the format written by the
//     `lz4` command line tool
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "labs table")
//	if err != nil {
//	    return err
//	}
//	plain, err := codec.Decompress(raw)
//
// Every codec in this package is stateless from the caller's point of view and
// safe for concurrent use.
package compress
