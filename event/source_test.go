package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hepkit/hbin/errs"
)

func TestRows(t *testing.T) {
	r, err := NewRows([]string{"x", "w"}, [][]float64{{1, 0.5}, {2, 1.5}})
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	_, err = r.Float("x")
	require.ErrorIs(t, err, errs.ErrBinOutOfRange, "no current row before Next")

	require.True(t, r.Next())
	x, err := r.Float("x")
	require.NoError(t, err)
	require.Equal(t, 1.0, x)

	require.True(t, r.Next())
	w, err := r.Float("w")
	require.NoError(t, err)
	require.Equal(t, 1.5, w)

	_, err = r.Float("y")
	require.ErrorIs(t, err, errs.ErrUnknownField)

	require.False(t, r.Next())
	require.False(t, r.Next())
	require.NoError(t, r.Err())
}

func TestNewRowsArity(t *testing.T) {
	_, err := NewRows([]string{"x", "y"}, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, errs.ErrArity)
	require.Contains(t, err.Error(), "row 1")
}
