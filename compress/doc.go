// Package compress provides the payload codecs of the snapshot format.
//
// Every codec is stateless from the caller's point of view and safe for
// concurrent use; encoders and decoders that benefit from reuse are pooled.
//
// Snapshot headers record the uncompressed payload length, so Decompress takes
// it as a size hint and rejects output of any other length:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed, size)
//
// Zstandard uses github.com/valyala/gozstd when built with cgo and the gozstd
// build tag, and github.com/klauspost/compress/zstd otherwise. Both produce
// standard frames, so snapshots written by one are read by the other.
package compress
