package axis

import (
	"fmt"

	"github.com/hepkit/hbin/errs"
)

// MigrationMode selects which reserved bin a failing event goes to.
type MigrationMode uint8

const (
	// LeftmostFail routes an event to the bin of its first failing check.
	LeftmostFail MigrationMode = iota
	// PassCount routes an event to the bin indexed by how many checks passed.
	PassCount
)

func (m MigrationMode) String() string {
	switch m {
	case LeftmostFail:
		return "LeftmostFail"
	case PassCount:
		return "PassCount"
	default:
		return "Unknown"
	}
}

// MigrationCoord is the coordinate of a migration axis: the primary value and
// one flag per auxiliary check.
type MigrationCoord[E Edge] struct {
	X      E
	Checks []bool
}

// Migration decorates a base axis with nchecks reserved bins for events that
// fail auxiliary boolean checks, as needed for migration and efficiency
// matrices.
//
// Bin layout:
//
//	0                        base underflow (all checks passed)
//	1 .. nchecks             failed check bins
//	nchecks+1 .. NBins()     base bins 1..base.NBins()
//	NBins()+1                base overflow
type Migration[E Edge] struct {
	base    Axis[E]
	nchecks int
	mode    MigrationMode
}

// NewMigration creates a migration axis over base with nchecks reserved bins.
//
// Returns:
//   - *Migration[E]: The axis
//   - error: ErrInvalidAxis for a nil base or negative nchecks
func NewMigration[E Edge](base Axis[E], nchecks int, mode MigrationMode) (*Migration[E], error) {
	if base == nil {
		return nil, fmt.Errorf("%w: migration axis needs a base axis", errs.ErrInvalidAxis)
	}
	if nchecks < 0 {
		return nil, fmt.Errorf("%w: negative check count %d", errs.ErrInvalidAxis, nchecks)
	}
	if mode != LeftmostFail && mode != PassCount {
		return nil, fmt.Errorf("%w: unknown migration mode %d", errs.ErrInvalidAxis, mode)
	}

	return &Migration[E]{base: base, nchecks: nchecks, mode: mode}, nil
}

// Base returns the decorated axis.
func (m *Migration[E]) Base() Axis[E] { return m.base }

// NChecks returns the number of reserved check bins.
func (m *Migration[E]) NChecks() int { return m.nchecks }

// Mode returns the failing-event routing convention.
func (m *Migration[E]) Mode() MigrationMode { return m.mode }

func (m *Migration[E]) NBins() int  { return m.base.NBins() + m.nchecks }
func (m *Migration[E]) NEdges() int { return m.base.NEdges() }

func (m *Migration[E]) Edge(i int) E { return m.base.Edge(i) }
func (m *Migration[E]) Min() E       { return m.base.Min() }
func (m *Migration[E]) Max() E       { return m.base.Max() }

// FindBin returns the bin for x given exactly NChecks() check flags.
//
// Returns:
//   - int: The migration bin (see the type documentation for the layout)
//   - error: ErrCheckCount if len(checks) != NChecks()
func (m *Migration[E]) FindBin(x E, checks ...bool) (int, error) {
	if len(checks) != m.nchecks {
		return 0, fmt.Errorf("%w: got %d flags, axis has %d checks", errs.ErrCheckCount, len(checks), m.nchecks)
	}

	failed := -1
	passed := 0
	for i, ok := range checks {
		if ok {
			passed++
		} else if failed < 0 {
			failed = i
		}
	}

	if failed < 0 {
		bin := m.base.FindBin(x)
		if bin != 0 {
			bin += m.nchecks
		}

		return bin, nil
	}

	if m.mode == PassCount {
		return passed + 1, nil
	}

	return failed + 1, nil
}

// Locate implements the binner locator contract. x must be a MigrationCoord[E].
func (m *Migration[E]) Locate(x any) (int, error) {
	switch c := x.(type) {
	case MigrationCoord[E]:
		return m.FindBin(c.X, c.Checks...)
	case *MigrationCoord[E]:
		return m.FindBin(c.X, c.Checks...)
	}

	return 0, fmt.Errorf("%w: migration axis expects MigrationCoord, got %T", errs.ErrCoordinateType, x)
}
