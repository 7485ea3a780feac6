package compress

import (
	"github.com/klauspost/compress/s2"

	"github.com/hepkit/hbin/format"
)

// S2Compressor uses S2 block compression, the fastest of the codecs.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as one S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes one S2 block.
func (c S2Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize("s2", 0, size)
	}

	if err := checkBound("s2", format.CompressionS2, data, size); err != nil {
		return nil, err
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if err := checkSize("s2", n, size); err != nil {
		return nil, err
	}

	return s2.Decode(make([]byte, size), data)
}
