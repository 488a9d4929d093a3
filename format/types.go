package format

import (
	"path/filepath"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents a plain file.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2/Snappy stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// extensions maps lower-case file suffixes to the compression they imply.
var extensions = map[string]CompressionType{
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".sz":   CompressionS2,
	".s2":   CompressionS2,
	".lz4":  CompressionLZ4,
}

// CompressionFromPath infers the compression of a table file from its extension.
//
// Only the last extension is inspected, so "labs.csv.zst" is Zstd and
// "labs.csv" is None.
func CompressionFromPath(path string) CompressionType {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := extensions[ext]; ok {
		return c
	}

	return CompressionNone
}
