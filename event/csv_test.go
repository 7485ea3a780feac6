package event

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hepkit/hbin/errs"
)

func TestReadCSV(t *testing.T) {
	src := "pt, eta, w\n# skipped\n10, 0.5, 1\n20, , 2\n"

	r, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	require.True(t, r.Next())
	pt, err := r.Float("pt")
	require.NoError(t, err)
	require.Equal(t, 10.0, pt)

	require.True(t, r.Next())
	eta, err := r.Float("eta")
	require.NoError(t, err)
	require.Zero(t, eta)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"Empty", "", errs.ErrSyntax},
		{"BadNumber", "pt\nten\n", errs.ErrSyntax},
		{"FieldCount", "pt,eta\n1,2,3\n", errs.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.src))
			require.ErrorIs(t, err, tt.want)
		})
	}
}
