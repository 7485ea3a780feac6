package snapshot

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hepkit/hbin/axis"
	"github.com/hepkit/hbin/binner"
	"github.com/hepkit/hbin/errs"
	"github.com/hepkit/hbin/format"
)

func TestRoundTrip(t *testing.T) {
	s, err := FromBinner(filled(t), nil)
	require.NoError(t, err)

	for _, ct := range format.Compressions {
		for _, big := range []bool{false, true} {
			name := ct.String()
			opts := []Option{WithCompression(ct)}
			if big {
				name += "/BigEndian"
				opts = append(opts, WithBigEndian())
			}

			t.Run(name, func(t *testing.T) {
				data, err := s.Encode(opts...)
				require.NoError(t, err)

				h, err := ParseHeader(data)
				require.NoError(t, err)
				require.Equal(t, ct, h.Compression)
				require.Equal(t, big, h.BigEndian())
				require.Equal(t, uint8(3), h.NAxes)
				require.Equal(t, uint32(len(s.Values)), h.NValues)

				got, err := Decode(data)
				require.NoError(t, err)
				require.Equal(t, s, got)
			})
		}
	}
}

func TestHeaderLayout(t *testing.T) {
	s := &Snapshot{
		Name:   "x",
		Axes:   []Axis{{NBins: 1, Spec: binner.NoFlow}},
		Values: []float64{7},
	}

	data, err := s.Encode(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	require.Equal(t, []byte("HBIN"), data[0:4])
	require.Equal(t, byte(Version), data[4])
	require.Zero(t, data[5])
	require.Equal(t, byte(format.CompressionNone), data[6])
	require.Equal(t, byte(1), data[7])
	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[8:12]))

	// nbins, flags, nedges, kind, one value, name
	payload := 4 + 1 + 4 + 2 + 8 + 2 + 1
	require.Equal(t, uint32(payload), binary.LittleEndian.Uint32(data[12:16]))
	require.Len(t, data, HeaderSize+payload)
}

func TestDefaultCompressionIsZstd(t *testing.T) {
	s := &Snapshot{Axes: []Axis{{NBins: 2}}, Values: []float64{1, 2}}
	data, err := s.Encode()
	require.NoError(t, err)

	h, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, h.Compression)
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		s    *Snapshot
		want error
	}{
		{"NoAxes", &Snapshot{Values: []float64{1}}, errs.ErrNoAxes},
		{"ZeroBins", &Snapshot{Axes: []Axis{{NBins: 0}}}, errs.ErrInvalidAxis},
		{"EdgeCount", &Snapshot{Axes: []Axis{{NBins: 2, Edges: []float64{0, 1}}}, Values: []float64{0, 0}}, errs.ErrInvalidEdges},
		{"ValueCount", &Snapshot{Axes: []Axis{{NBins: 2, Spec: binner.DefaultSpec}}, Values: []float64{0, 0}}, errs.ErrInvalidSnapshot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.s.Encode()
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("UnknownCompression", func(t *testing.T) {
		s := &Snapshot{Axes: []Axis{{NBins: 1}}, Values: []float64{1}}
		_, err := s.Encode(WithCompression(format.CompressionType(0)))
		require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	})
}

func TestDecodeErrors(t *testing.T) {
	s := &Snapshot{Name: "h", Axes: []Axis{{NBins: 2, Edges: []float64{0, 1, 2}}}, Values: []float64{3, 4}}
	data, err := s.Encode(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	corrupt := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), data...))
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"Short", data[:10], errs.ErrInvalidSnapshot},
		{"Magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b }), errs.ErrInvalidSnapshot},
		{"Version", corrupt(func(b []byte) []byte { b[4] = 9; return b }), errs.ErrInvalidSnapshot},
		{"Compression", corrupt(func(b []byte) []byte { b[6] = 0; return b }), errs.ErrUnsupportedCompression},
		{"Truncated", data[:len(data)-3], errs.ErrInvalidSnapshot},
		{"Checksum", corrupt(func(b []byte) []byte { b[len(b)-2] ^= 0xff; return b }), errs.ErrChecksum},
		{"ValueCount", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[8:12], 5)
			return b
		}), errs.ErrInvalidSnapshot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeForgedPayloadLength(t *testing.T) {
	forge := func(h Header, body ...byte) []byte {
		h.Version = Version
		return append(h.Bytes(), body...)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"HugeLZ4", forge(Header{Compression: format.CompressionLZ4, NAxes: 1, NValues: 1, PayloadLen: 0xF0000000}, 0x1f, 0x00)},
		{"HugeZstd", forge(Header{Compression: format.CompressionZstd, NAxes: 1, NValues: 1, PayloadLen: 0xF0000000}, 0x28, 0xb5)},
		{"HugeS2", forge(Header{Compression: format.CompressionS2, NAxes: 1, NValues: 1, PayloadLen: 0xF0000000}, 0x80, 0x80)},
		{"LongerThanRaw", forge(Header{Compression: format.CompressionNone, NAxes: 1, NValues: 1, PayloadLen: 64}, make([]byte, 32)...)},
		{"TooShortForValues", forge(Header{Compression: format.CompressionNone, NAxes: 1, NValues: 100, PayloadLen: 32}, make([]byte, 32)...)},
		{"TooShortForAxes", forge(Header{Compression: format.CompressionNone, NAxes: 200, NValues: 1, PayloadLen: 32}, make([]byte, 32)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
			require.ErrorContains(t, err, "payload length")
		})
	}
}

func TestDecodeDoesNotAlias(t *testing.T) {
	s := &Snapshot{Name: "h", Axes: []Axis{{NBins: 1, Kind: "k"}}, Values: []float64{1}}
	data, err := s.Encode(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	for i := range data {
		data[i] = 0
	}
	require.Equal(t, s, got)
}

func BenchmarkEncode(b *testing.B) {
	h, err := binner.New[float64]([]binner.Dim{
		binner.On[float64](axis.MustUniform(200, 0, 200), binner.DefaultSpec),
		binner.On[float64](axis.MustUniform(50, -5, 5), binner.DefaultSpec),
	})
	require.NoError(b, err)
	for i := range h.Bins() {
		h.Bins()[i] = float64(i % 17)
	}
	s, err := FromBinner(h, nil)
	require.NoError(b, err)

	for _, ct := range format.Compressions {
		b.Run(ct.String(), func(b *testing.B) {
			for b.Loop() {
				_, _ = s.Encode(WithCompression(ct))
			}
		})
	}
}
