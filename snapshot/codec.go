package snapshot

import (
	"fmt"
	"math"

	"github.com/hepkit/hbin/binner"
	"github.com/hepkit/hbin/compress"
	"github.com/hepkit/hbin/endian"
	"github.com/hepkit/hbin/errs"
	"github.com/hepkit/hbin/format"
	"github.com/hepkit/hbin/internal/hash"
	"github.com/hepkit/hbin/internal/options"
	"github.com/hepkit/hbin/internal/pool"
)

const (
	HeaderSize = 24
	Version    = 1

	// FlagBigEndian marks a big-endian snapshot.
	FlagBigEndian = 0x01

	maxAxes   = math.MaxUint8
	maxString = math.MaxUint16
)

const (
	specUnderflow = 1 << iota
	specOverflow
	specStrict
)

var magic = [4]byte{'H', 'B', 'I', 'N'}

type encodeConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// Option configures Encode.
type Option = options.Option[*encodeConfig]

// WithCompression selects the payload codec. The default is Zstd.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *encodeConfig) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrUnsupportedCompression, uint8(c))
		}
		cfg.compression = c

		return nil
	})
}

// WithBigEndian writes integers and floats big-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.bigEndian = true
	})
}

// Header is the fixed-size prefix of an encoded snapshot.
type Header struct {
	Version     uint8
	Flags       uint8
	Compression format.CompressionType
	NAxes       uint8
	NValues     uint32
	PayloadLen  uint32
	Checksum    uint64
}

// BigEndian reports whether the snapshot is big-endian.
func (h Header) BigEndian() bool { return h.Flags&FlagBigEndian != 0 }

func (h Header) engine() endian.EndianEngine { return endian.ForFlag(h.BigEndian()) }

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b[0:4], magic[:])
	b[4] = h.Version
	b[5] = h.Flags
	b[6] = uint8(h.Compression)
	b[7] = h.NAxes

	engine := h.engine()
	engine.PutUint32(b[8:12], h.NValues)
	engine.PutUint32(b[12:16], h.PayloadLen)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// ParseHeader parses and validates the header at the start of data.
//
// Returns:
//   - Header: The parsed header
//   - error: ErrInvalidSnapshot for short input, bad magic or version, or
//     ErrUnsupportedCompression
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrInvalidSnapshot, len(data), HeaderSize)
	}
	if [4]byte(data[0:4]) != magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidSnapshot, data[0:4])
	}

	h := Header{
		Version:     data[4],
		Flags:       data[5],
		Compression: format.CompressionType(data[6]),
		NAxes:       data[7],
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: version %d", errs.ErrInvalidSnapshot, h.Version)
	}
	if !h.Compression.Valid() {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedCompression, data[6])
	}

	engine := h.engine()
	h.NValues = engine.Uint32(data[8:12])
	h.PayloadLen = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h, nil
}

// minAxisLen is the payload size of an axis without edges and with an empty
// kind: nbins, spec flags, edge count and the kind length prefix.
const minAxisLen = 4 + 1 + 4 + 2

// checkPayloadLen rejects a header whose payload length cannot hold its axes
// and values, or that the body cannot decompress to.
func (h Header) checkPayloadLen(bodyLen int) error {
	need := int(h.NAxes)*minAxisLen + int(h.NValues)*8 + 2
	if int(h.PayloadLen) < need {
		return fmt.Errorf("%w: payload length %d, %d axes and %d values need %d",
			errs.ErrInvalidSnapshot, h.PayloadLen, h.NAxes, h.NValues, need)
	}
	if limit := compress.MaxDecodedLen(h.Compression, bodyLen); int(h.PayloadLen) > limit {
		return fmt.Errorf("%w: payload length %d exceeds %d for %d %s bytes",
			errs.ErrInvalidSnapshot, h.PayloadLen, limit, bodyLen, h.Compression)
	}

	return nil
}

// Encode serializes s.
//
// Returns:
//   - []byte: Header followed by the compressed payload
//   - error: ErrNoAxes, ErrInvalidAxis, ErrInvalidEdges or ErrInvalidSnapshot
//     for an inconsistent snapshot, ErrUnsupportedCompression, or a codec error
func (s *Snapshot) Encode(opts ...Option) ([]byte, error) {
	cfg := &encodeConfig{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if len(s.Name) > maxString {
		return nil, fmt.Errorf("%w: name longer than %d bytes", errs.ErrInvalidSnapshot, maxString)
	}

	h := Header{Version: Version, Compression: cfg.compression, NAxes: uint8(len(s.Axes))}
	if cfg.bigEndian {
		h.Flags |= FlagBigEndian
	}
	engine := h.engine()

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	b := buf.B
	for _, a := range s.Axes {
		b = engine.AppendUint32(b, uint32(a.NBins))
		b = append(b, specFlags(a.Spec))
		b = engine.AppendUint32(b, uint32(len(a.Edges)))
		for _, e := range a.Edges {
			b = engine.AppendUint64(b, math.Float64bits(e))
		}
		b = appendString(engine, b, a.Kind)
	}
	for _, v := range s.Values {
		b = engine.AppendUint64(b, math.Float64bits(v))
	}
	b = appendString(engine, b, s.Name)
	buf.B = b

	h.NValues = uint32(len(s.Values))
	h.PayloadLen = uint32(len(b))
	h.Checksum = hash.Sum(b)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	packed, err := codec.Compress(b)
	if err != nil {
		return nil, fmt.Errorf("compress %s payload: %w", cfg.compression, err)
	}

	out := make([]byte, 0, HeaderSize+len(packed))
	out = append(out, h.Bytes()...)

	return append(out, packed...), nil
}

// Decode parses an encoded snapshot.
//
// Returns:
//   - *Snapshot: The decoded snapshot, not sharing memory with data
//   - error: ErrInvalidSnapshot for malformed input, ErrChecksum when the
//     payload does not match the header checksum
func Decode(data []byte) (*Snapshot, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	body := data[HeaderSize:]
	if err := h.checkPayloadLen(len(body)); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(body, int(h.PayloadLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}
	if sum := hash.Sum(payload); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %016x, header has %016x", errs.ErrChecksum, sum, h.Checksum)
	}

	r := reader{b: payload, engine: h.engine()}
	s := &Snapshot{Axes: make([]Axis, h.NAxes)}
	for k := range s.Axes {
		a := &s.Axes[k]
		a.NBins = int(r.uint32())
		a.Spec = parseSpec(r.byte())
		if n := int(r.uint32()); n > 0 {
			a.Edges = r.float64s(n)
		}
		a.Kind = r.string()
	}
	s.Values = r.float64s(int(h.NValues))
	s.Name = r.string()

	if r.err != nil {
		return nil, r.err
	}
	if len(r.b) != 0 {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidSnapshot, len(r.b))
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSnapshot, err)
	}

	return s, nil
}

func specFlags(s binner.Spec) byte {
	var f byte
	if s.Underflow {
		f |= specUnderflow
	}
	if s.Overflow {
		f |= specOverflow
	}
	if s.Strict {
		f |= specStrict
	}

	return f
}

func parseSpec(f byte) binner.Spec {
	return binner.Spec{
		Underflow: f&specUnderflow != 0,
		Overflow:  f&specOverflow != 0,
		Strict:    f&specStrict != 0,
	}
}

func appendString(engine endian.EndianEngine, b []byte, s string) []byte {
	if len(s) > maxString {
		s = s[:maxString]
	}
	b = engine.AppendUint16(b, uint16(len(s)))

	return append(b, s...)
}

// reader consumes a payload, remembering the first short read.
type reader struct {
	b      []byte
	engine endian.EndianEngine
	err    error
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > len(r.b) {
		r.err = fmt.Errorf("%w: payload truncated", errs.ErrInvalidSnapshot)
		return nil
	}
	p := r.b[:n]
	r.b = r.b[n:]

	return p
}

func (r *reader) byte() byte {
	if p := r.take(1); p != nil {
		return p[0]
	}

	return 0
}

func (r *reader) uint32() uint32 {
	if p := r.take(4); p != nil {
		return r.engine.Uint32(p)
	}

	return 0
}

func (r *reader) float64s(n int) []float64 {
	if n > len(r.b)/8 {
		r.take(-1)
		return nil
	}
	p := r.take(8 * n)
	if p == nil {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(r.engine.Uint64(p[8*i:]))
	}

	return out
}

func (r *reader) string() string {
	p := r.take(2)
	if p == nil {
		return ""
	}

	return string(r.take(int(r.engine.Uint16(p))))
}
