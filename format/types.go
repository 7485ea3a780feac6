// Package format holds the identifiers stored in snapshot headers.
package format

import (
	"fmt"
	"strings"
)

// CompressionType identifies the codec of a snapshot payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

// Compressions lists every known compression type.
var Compressions = []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}

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

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompression parses a case-insensitive compression name as printed by
// String.
func ParseCompression(s string) (CompressionType, error) {
	for _, c := range Compressions {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown compression %q", s)
}
