package compress

import (
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/hepkit/hbin/format"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor uses LZ4 block compression.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as one LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block into a buffer of exactly size bytes.
// LZ4 blocks do not carry their decoded length, so the size hint is required.
func (c LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize("lz4", 0, size)
	}
	if err := checkBound("lz4", format.CompressionLZ4, data, size); err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}
	if err := checkSize("lz4", n, size); err != nil {
		return nil, err
	}

	return buf, nil
}
