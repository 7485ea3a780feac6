package axis

import (
	"testing"

	"github.com/hepkit/hbin/errs"
	"github.com/stretchr/testify/require"
)

func TestMigration_LeftmostFail(t *testing.T) {
	base := MustUniform(4, 0, 4)
	m, err := NewMigration[float64](base, 2, LeftmostFail)
	require.NoError(t, err)
	require.Equal(t, 6, m.NBins())
	require.Equal(t, 2, m.NChecks())
	require.Same(t, base, m.Base())

	tests := []struct {
		name   string
		x      float64
		checks []bool
		want   int
	}{
		{"all pass first bin", 0.5, []bool{true, true}, 3},
		{"all pass last bin", 3.5, []bool{true, true}, 6},
		{"all pass underflow", -1, []bool{true, true}, 0},
		{"all pass overflow", 9, []bool{true, true}, 7},
		{"first fails", 1.5, []bool{false, true}, 1},
		{"both fail", 1.5, []bool{false, false}, 1},
		{"second fails", 1.5, []bool{true, false}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin, err := m.FindBin(tt.x, tt.checks...)
			require.NoError(t, err)
			require.Equal(t, tt.want, bin)
		})
	}
}

func TestMigration_PassCount(t *testing.T) {
	m, err := NewMigration[float64](MustUniform(4, 0, 4), 3, PassCount)
	require.NoError(t, err)

	bin, err := m.FindBin(1, false, true, true)
	require.NoError(t, err)
	require.Equal(t, 3, bin)

	bin, err = m.FindBin(1, true, false, false)
	require.NoError(t, err)
	require.Equal(t, 2, bin)

	bin, err = m.FindBin(1, true, true, true)
	require.NoError(t, err)
	require.Equal(t, 5, bin)
}

func TestMigration_CheckCount(t *testing.T) {
	m, err := NewMigration[float64](MustUniform(4, 0, 4), 2, LeftmostFail)
	require.NoError(t, err)

	_, err = m.FindBin(1, true)
	require.ErrorIs(t, err, errs.ErrCheckCount)

	_, err = m.FindBin(1, true, true, true)
	require.ErrorIs(t, err, errs.ErrCheckCount)
}

func TestMigration_Locate(t *testing.T) {
	m, err := NewMigration[float64](MustEdges(0.0, 1, 2), 1, LeftmostFail)
	require.NoError(t, err)

	bin, err := m.Locate(MigrationCoord[float64]{X: 1.5, Checks: []bool{true}})
	require.NoError(t, err)
	require.Equal(t, 3, bin)

	bin, err = m.Locate(&MigrationCoord[float64]{X: 1.5, Checks: []bool{false}})
	require.NoError(t, err)
	require.Equal(t, 1, bin)

	_, err = m.Locate(1.5)
	require.ErrorIs(t, err, errs.ErrCoordinateType)
}

func TestNewMigration_Invalid(t *testing.T) {
	_, err := NewMigration[float64](nil, 1, LeftmostFail)
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewMigration[float64](MustUniform(1, 0, 1), -1, LeftmostFail)
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewMigration[float64](MustUniform(1, 0, 1), 1, MigrationMode(9))
	require.ErrorIs(t, err, errs.ErrInvalidAxis)
}
