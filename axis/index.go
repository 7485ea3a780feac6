package axis

import (
	"fmt"
	"math"

	"github.com/hepkit/hbin/errs"
)

// Index is an axis over integer ticks in [min, max), one bin per tick.
// FindBin is x-min+1.
type Index[E Integer] struct {
	min, max E
	nbins    int
}

var _ Axis[int] = Index[int]{}

// NewIndex creates an index axis. Reversed limits are swapped.
//
// Returns:
//   - Index[E]: The axis
//   - error: ErrInvalidAxis when min == max (no ticks) or when the tick count
//     does not fit in an int
func NewIndex[E Integer](min, max E) (Index[E], error) {
	if min == max {
		return Index[E]{}, fmt.Errorf("%w: index axis [%d, %d) is empty", errs.ErrInvalidAxis, min, max)
	}
	if min > max {
		min, max = max, min
	}

	span := distance(min, max)
	if span >= math.MaxInt {
		return Index[E]{}, fmt.Errorf("%w: index axis [%d, %d) has too many ticks", errs.ErrInvalidAxis, min, max)
	}

	return Index[E]{min: min, max: max, nbins: int(span)}, nil
}

// distance returns hi-lo for lo <= hi without overflowing E.
func distance[E Integer](lo, hi E) uint64 {
	return uint64(hi) - uint64(lo)
}

// MustIndex is like NewIndex but panics on error.
func MustIndex[E Integer](min, max E) Index[E] {
	a, err := NewIndex(min, max)
	if err != nil {
		panic(err)
	}

	return a
}

func (a Index[E]) NBins() int  { return a.nbins }
func (a Index[E]) NEdges() int { return a.nbins + 1 }

func (a Index[E]) Edge(i int) E { return a.min + E(i) }
func (a Index[E]) Min() E       { return a.min }
func (a Index[E]) Max() E       { return a.max }

func (a Index[E]) Lower(bin int) E { return a.Edge(bin - 1) }
func (a Index[E]) Upper(bin int) E { return a.Edge(bin) }

func (a Index[E]) FindBin(x E) int {
	if x < a.min {
		return 0
	}
	if !(x < a.max) {
		return a.nbins + 1
	}

	return int(distance(a.min, x)) + 1
}

func (a Index[E]) String() string {
	return fmt.Sprintf("index[%d,%d)", a.min, a.max)
}
