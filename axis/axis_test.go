package axis

import (
	"testing"

	"github.com/hepkit/hbin/errs"
	"github.com/stretchr/testify/require"
)

func TestCheckEdge(t *testing.T) {
	a := MustEdges(0.0, 1, 2)

	require.True(t, CheckEdge(a, 0))
	require.True(t, CheckEdge(a, 2))
	require.False(t, CheckEdge(a, 3))
	require.False(t, CheckEdge(a, -1))

	require.NoError(t, CheckEdgeErr(a, 1))
	err := CheckEdgeErr(a, 3)
	require.ErrorIs(t, err, errs.ErrEdgeOutOfRange)
	require.Contains(t, err.Error(), "3 >= 3")
}

func TestCheckBin(t *testing.T) {
	a := MustUniform(3, 0, 3)

	require.False(t, CheckBin(a, 0))
	require.True(t, CheckBin(a, 1))
	require.True(t, CheckBin(a, 3))
	require.False(t, CheckBin(a, 4))

	require.NoError(t, CheckBinErr(a, 2))
	err := CheckBinErr(a, 4)
	require.ErrorIs(t, err, errs.ErrBinOutOfRange)
	require.Contains(t, err.Error(), "[1, 3]")
}

func TestConvert(t *testing.T) {
	f, ok := Convert[float64](3)
	require.True(t, ok)
	require.Equal(t, 3.0, f)

	f, ok = Convert[float64](float32(0.5))
	require.True(t, ok)
	require.Equal(t, 0.5, f)

	u, ok := Convert[uint](int64(7))
	require.True(t, ok)
	require.Equal(t, uint(7), u)

	i, ok := Convert[int](2.9)
	require.True(t, ok)
	require.Equal(t, 2, i)

	_, ok = Convert[float64]("1.0")
	require.False(t, ok)

	_, ok = Convert[float64](nil)
	require.False(t, ok)
}
