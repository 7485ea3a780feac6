package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	bb := NewByteBuffer(4)
	require.Zero(t, bb.Len())
	require.Equal(t, 4, bb.Cap())

	n, err := bb.Write([]byte("hbin"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("hbin"), bb.Bytes())

	bb.Grow(10)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 10)
	require.Equal(t, []byte("hbin"), bb.Bytes(), "grow keeps contents")

	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap(), "no growth when room is left")

	bb.Reset()
	require.Zero(t, bb.Len())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Zero(t, bb.Len())

	_, _ = bb.Write([]byte("data"))
	p.Put(bb)
	p.Put(nil)

	big := NewByteBuffer(128)
	p.Put(big)

	got := p.Get()
	require.Zero(t, got.Len())
	require.LessOrEqual(t, got.Cap(), 64)
}

func TestSnapshotBuffer(t *testing.T) {
	bb := GetSnapshotBuffer()
	require.Zero(t, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), SnapshotBufferDefaultSize)
	PutSnapshotBuffer(bb)
}
