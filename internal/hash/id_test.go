package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	names := map[string]uint64{
		"":              0xef46db3751d8e999,
		"pT_yy":         0xfefd8e3474dffeb7,
		"pt_eta":        0xf8643740d88fb63e,
		"m_yy_vs_pT_yy": 0x90f4104c2ef8cc06,
	}
	for name, id := range names {
		assert.Equal(t, id, ID(name), name)
		assert.Equal(t, id, Sum([]byte(name)), name)
	}
}

func TestKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := NewKey().String("float64").Uint(4).Bool(true).Sum64()
		b := NewKey().String("float64").Uint(4).Bool(true).Sum64()
		require.Equal(t, a, b)
	})

	t.Run("field order matters", func(t *testing.T) {
		a := NewKey().Uint(1).Uint(2).Sum64()
		b := NewKey().Uint(2).Uint(1).Sum64()
		require.NotEqual(t, a, b)
	})

	t.Run("strings are length prefixed", func(t *testing.T) {
		a := NewKey().String("ab").String("c").Sum64()
		b := NewKey().String("a").String("bc").Sum64()
		require.NotEqual(t, a, b)
	})

	t.Run("bool differs", func(t *testing.T) {
		require.NotEqual(t, NewKey().Bool(true).Sum64(), NewKey().Bool(false).Sum64())
	})
}

func BenchmarkKey(b *testing.B) {
	for b.Loop() {
		k := NewKey().String("float64").Uint(2)
		for range 2 {
			k.Uint(50).Bool(true).Bool(true).Bool(false)
		}
		_ = k.Sum64()
	}
}
