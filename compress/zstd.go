package compress

// ZstdCompressor uses Zstandard, the codec with the best ratio. Edge and bin
// value arrays of sparse histograms compress well with it.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec with the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
