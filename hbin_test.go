package hbin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hepkit/hbin/axis"
	"github.com/hepkit/hbin/binner"
	"github.com/hepkit/hbin/errs"
)

func TestHistID(t *testing.T) {
	require.Equal(t, HistID("pt_yy"), HistID("pt_yy"))
	require.NotEqual(t, HistID("pt_yy"), HistID("pt_jj"))
}

func TestNewHist1D(t *testing.T) {
	h, err := NewHist1D("pt", axis.MustUniform(4, 0, 4))
	require.NoError(t, err)
	require.Equal(t, "pt", h.Name())
	require.Equal(t, 6, h.NBinsTotal())
	require.Equal(t, binner.DefaultSpec, h.Dim(0).Spec())

	for _, x := range []float64{-1, 0, 1.5, 4, 3.999} {
		_, err := h.Fill(x)
		require.NoError(t, err)
	}
	require.Equal(t, []float64{1, 1, 1, 0, 1, 1}, h.Bins())
}

func TestNewHist2D(t *testing.T) {
	h, err := NewHist2D("pt_eta", axis.MustEdges(0.0, 10, 20, 30), axis.MustUniform(2, -1, 1),
		binner.WithName[float64]("renamed"))
	require.NoError(t, err)
	require.Equal(t, "renamed", h.Name())
	require.Equal(t, 5*4, h.NBinsTotal())

	bin, err := h.Fill(10.0, 0.0, 2.5)
	require.NoError(t, err)
	require.Equal(t, h.Index(2, 2), bin)
	require.Equal(t, 2.5, *h.At(bin))
}

func TestNewHistNoAxes(t *testing.T) {
	_, err := NewHist("empty", nil)
	require.ErrorIs(t, err, errs.ErrNoAxes)
}

func TestNewCounter(t *testing.T) {
	h, err := NewCounter("n", axis.MustUniform(2, 0, 2))
	require.NoError(t, err)

	_, err = h.Fill(0.5)
	require.NoError(t, err)
	_, err = h.Fill(0.5)
	require.NoError(t, err)
	require.Equal(t, 2, *h.Bin(1))
}
