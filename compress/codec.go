package compress

import (
	"fmt"
	"math"

	"github.com/hepkit/hbin/errs"
	"github.com/hepkit/hbin/format"
)

// Compressor compresses a complete snapshot payload.
//
// The returned slice may alias data for the no-op codec; callers must not
// modify data while the result is in use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload of known uncompressed size.
type Decompressor interface {
	// Decompress returns exactly size bytes or an error if data is corrupt or
	// decodes to a different length.
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for a compression type.
//
// Returns:
//   - Codec: The shared codec instance
//   - error: ErrUnsupportedCompression for an unknown type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedCompression, uint8(compressionType))
}

// maxExpansion is the most output one compressed byte can produce in each
// format. A zstd block takes at least 4 bytes and decodes to at most 128 KiB,
// an LZ4 length byte adds at most 255, and an S2 repeat of at most 5 bytes
// copies at most 1<<24 bytes.
var maxExpansion = map[format.CompressionType]int{
	format.CompressionNone: 1,
	format.CompressionZstd: 1 << 15,
	format.CompressionS2:   1 << 22,
	format.CompressionLZ4:  255,
}

// expansionSlack covers frame and block headers of short inputs.
const expansionSlack = 1 << 10

// MaxDecodedLen returns the largest payload that compressedLen bytes of the
// given type can decode to, or -1 for an unknown type.
func MaxDecodedLen(compressionType format.CompressionType, compressedLen int) int {
	ratio, ok := maxExpansion[compressionType]
	if !ok {
		return -1
	}
	if compressionType == format.CompressionNone {
		return compressedLen
	}
	if compressedLen > (math.MaxInt-expansionSlack)/ratio {
		return math.MaxInt
	}

	return compressedLen*ratio + expansionSlack
}

// checkBound rejects a size hint that data cannot decode to, before any
// output buffer is allocated.
func checkBound(name string, compressionType format.CompressionType, data []byte, size int) error {
	if size < 0 {
		return fmt.Errorf("%s: negative decoded size %d", name, size)
	}
	if limit := MaxDecodedLen(compressionType, len(data)); size > limit {
		return fmt.Errorf("%s: %d compressed bytes cannot decode to %d bytes (limit %d)", name, len(data), size, limit)
	}

	return nil
}

func checkSize(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: decompressed %d bytes, expected %d", name, got, want)
	}

	return nil
}
