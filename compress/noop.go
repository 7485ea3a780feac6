package compress

import "github.com/hepkit/hbin/format"

// NoOpCompressor stores payloads uncompressed.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself after checking its length.
func (c NoOpCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if err := checkBound("none", format.CompressionNone, data, size); err != nil {
		return nil, err
	}
	if err := checkSize("none", len(data), size); err != nil {
		return nil, err
	}

	return data, nil
}
