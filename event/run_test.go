package event

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hepkit/hbin/axis"
	"github.com/hepkit/hbin/binner"
	"github.com/hepkit/hbin/errs"
	"github.com/hepkit/hbin/internal/options"
	"github.com/hepkit/hbin/truthreco"
)

func rows(t *testing.T) *Rows {
	t.Helper()

	r, err := NewRows([]string{"pt", "eta", "w"}, [][]float64{
		{10, 0.5, 1},
		{30, -1.0, 2},
		{250, 0.1, 1}, // pt overflow
		{50, 3.0, 1},  // eta outside
		{70, 1.5, 0.5},
	})
	require.NoError(t, err)

	return r
}

func histogram(t *testing.T, spec binner.Spec) *binner.Binner[float64] {
	t.Helper()

	h, err := binner.New[float64]([]binner.Dim{
		binner.On[float64](axis.MustUniform(4, 0, 200), binner.DefaultSpec),
		binner.On[float64](axis.MustUniform(2, -2, 2), spec),
	}, binner.WithName[float64]("pt_eta"))
	require.NoError(t, err)

	return h
}

func sum(h *binner.Binner[float64]) float64 {
	total := 0.0
	for _, v := range h.Bins() {
		total += v
	}

	return total
}

func TestRun(t *testing.T) {
	h := histogram(t, binner.NoFlow)
	b, err := Bind(h, "pt", "eta")
	require.NoError(t, err)

	st, err := Run(context.Background(), rows(t), []Binding{b})
	require.NoError(t, err)
	require.Equal(t, 5, st.Events)
	require.Equal(t, 5, st.Selected)
	require.Equal(t, 4, st.Fills)
	require.Equal(t, 1, st.Dropped)
	require.Equal(t, 4.0, sum(h))

	bin, err := h.FindBin(250.0, 0.1)
	require.NoError(t, err)
	require.Equal(t, 1.0, *h.At(bin))
}

func TestRunWeighted(t *testing.T) {
	h := histogram(t, binner.NoFlow)
	b, err := Bind(h, "pt", "eta")
	require.NoError(t, err)

	_, err = Run(context.Background(), rows(t), []Binding{b.Weighted("w")})
	require.NoError(t, err)
	require.Equal(t, 4.5, sum(h))
}

func TestRunViolations(t *testing.T) {
	t.Run("Stop", func(t *testing.T) {
		h := histogram(t, binner.StrictNoFlow)
		b, err := Bind(h, "pt", "eta")
		require.NoError(t, err)

		st, err := Run(context.Background(), rows(t), []Binding{b})
		require.ErrorIs(t, err, errs.ErrRangeViolation)
		require.Contains(t, err.Error(), "event 4: pt_eta")
		require.Equal(t, 4, st.Events)
		require.Equal(t, 3.0, sum(h))
	})

	t.Run("Skip", func(t *testing.T) {
		h := histogram(t, binner.StrictNoFlow)
		b, err := Bind(h, "pt", "eta")
		require.NoError(t, err)

		st, err := Run(context.Background(), rows(t), []Binding{b}, WithSkipViolations())
		require.NoError(t, err)
		require.Equal(t, 1, st.Violations)
		require.Equal(t, 4, st.Fills)
	})
}

func TestRunCutAndLimit(t *testing.T) {
	h := histogram(t, binner.NoFlow)
	b, err := Bind(h, "pt", "eta")
	require.NoError(t, err)

	central := func(src Source) (bool, error) {
		eta, err := src.Float("eta")
		return eta >= -0.5 && eta <= 0.5, err
	}

	st, err := Run(context.Background(), rows(t), []Binding{b}, WithCut(central), WithLimit(3))
	require.NoError(t, err)
	require.Equal(t, 3, st.Events)
	require.Equal(t, 2, st.Selected)
	require.Equal(t, 2, st.Fills)
}

func TestRunErrors(t *testing.T) {
	h := histogram(t, binner.NoFlow)

	t.Run("BindArity", func(t *testing.T) {
		_, err := Bind(h, "pt")
		require.ErrorIs(t, err, errs.ErrArity)
	})

	t.Run("UnknownField", func(t *testing.T) {
		b, err := Bind(h, "pt", "phi")
		require.NoError(t, err)

		_, err = Run(context.Background(), rows(t), []Binding{b})
		require.ErrorIs(t, err, errs.ErrUnknownField)
		require.Contains(t, err.Error(), "event 1")
	})

	t.Run("Canceled", func(t *testing.T) {
		b, err := Bind(h, "pt", "eta")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		st, err := Run(ctx, rows(t), []Binding{b})
		require.ErrorIs(t, err, context.Canceled)
		require.Zero(t, st.Events)
	})

	t.Run("SourceError", func(t *testing.T) {
		boom := errors.New("read failed")
		st, err := Run(context.Background(), &failing{err: boom}, nil)
		require.ErrorIs(t, err, boom)
		require.Zero(t, st.Events)
	})

	t.Run("NegativeInterval", func(t *testing.T) {
		_, err := Run(context.Background(), rows(t), nil, WithProgressInterval(-time.Second))
		require.Error(t, err)
	})
}

type failing struct{ err error }

func (f *failing) Next() bool                    { return false }
func (f *failing) Float(string) (float64, error) { return 0, nil }
func (f *failing) Err() error                    { return f.err }

func TestRunProgress(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Unix(0, 0)
	tick := options.NoError(func(c *runConfig) {
		c.now = func() time.Time {
			clock = clock.Add(400 * time.Millisecond)
			return clock
		}
	})

	_, err := Run(context.Background(), rows(t), nil,
		WithLogger(zerolog.New(&buf)), WithProgressInterval(500*time.Millisecond), tick)
	require.NoError(t, err)

	// every clock read advances 400ms, so events 2 and 4 cross the interval
	require.Equal(t, 2, strings.Count(buf.String(), "event loop progress"))
	require.Equal(t, 1, strings.Count(buf.String(), "event loop finished"))
	require.Contains(t, buf.String(), `"events":5`)
}

func TestFuncBinding(t *testing.T) {
	h, err := binner.New[float64]([]binner.Dim{
		binner.On[float64](axis.MustEdges(-50.0, -10, 0, 10, 50), binner.NoFlow),
	}, binner.WithName[float64]("pt_resolution"))
	require.NoError(t, err)

	// detector pt 30% above truth
	res := BindFunc(h.Name(), func(src Source) (int, error) {
		pt, err := src.Float("pt")
		if err != nil {
			return binner.NoBin, err
		}
		v := truthreco.Pair(pt*1.3, pt)
		diff := truthreco.Sub(v, truthreco.Pair(pt, pt))

		return h.Fill(diff.Det)
	})
	require.Equal(t, "pt_resolution", res.Name())

	st, err := Run(context.Background(), rows(t), []Binding{res})
	require.NoError(t, err)
	require.Equal(t, 4, st.Fills)
	require.Equal(t, 1, st.Dropped)
	require.Equal(t, []float64{0, 0, 2, 2}, h.Bins())
}
