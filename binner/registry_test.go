package binner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hepkit/hbin/axis"
	"github.com/hepkit/hbin/errs"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry[float64]()
	dims := []Dim{On[float64](axis.MustUniform(4, 0, 1), DefaultSpec)}
	wide := []Dim{On[float64](axis.MustUniform(8, 0, 1), DefaultSpec)}

	a, err := New[float64](dims, WithName[float64]("a"), WithRegistry(r))
	require.NoError(t, err)
	b, err := New[float64](dims, WithName[float64]("b"), WithRegistry(r))
	require.NoError(t, err)
	c, err := New[float64](wide, WithName[float64]("c"), WithRegistry(r))
	require.NoError(t, err)

	require.Equal(t, 3, r.Len())
	require.Len(t, r.Shapes(), 2)

	t.Run("All", func(t *testing.T) {
		var names []string
		for _, e := range r.All() {
			names = append(names, e.Name)
		}
		require.Equal(t, []string{"a", "b", "c"}, names)
	})

	t.Run("ShapeGroups", func(t *testing.T) {
		group := r.Shape(a.Shape())
		require.Len(t, group, 2)
		require.Same(t, a, group[0].Binner)
		require.Same(t, b, group[1].Binner)

		require.Len(t, r.Shape(c.Shape()), 1)
		require.Empty(t, r.Shape(0))
	})

	t.Run("RegisterIsIdempotent", func(t *testing.T) {
		h1 := r.Register("again", a)
		h2 := r.Register("again", a)
		require.Equal(t, h1, h2)
		require.Equal(t, 3, r.Len())

		got, ok := r.Lookup("a")
		require.True(t, ok)
		require.Same(t, a, got)

		_, ok = r.Lookup("again")
		require.False(t, ok)
	})

	t.Run("Close", func(t *testing.T) {
		require.NoError(t, b.Close())
		require.NoError(t, b.Close())
		require.Equal(t, 2, r.Len())
		require.Len(t, r.Shape(a.Shape()), 1)

		require.NoError(t, c.Close())
		require.Len(t, r.Shapes(), 1)
	})

	t.Run("RemoveUnknown", func(t *testing.T) {
		require.ErrorIs(t, r.Remove(Handle(999)), errs.ErrNotRegistered)
	})

	t.Run("CloseUnregistered", func(t *testing.T) {
		free, err := New[float64](dims)
		require.NoError(t, err)
		require.NoError(t, free.Close())
	})
}
