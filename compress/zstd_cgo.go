//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/hepkit/hbin/format"
)

// Compress compresses data as one Zstandard frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decodes one Zstandard frame.
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize("zstd", 0, size)
	}
	if err := checkBound("zstd", format.CompressionZstd, data, size); err != nil {
		return nil, err
	}

	out, err := gozstd.Decompress(make([]byte, 0, size), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkSize("zstd", len(out), size); err != nil {
		return nil, err
	}

	return out, nil
}
