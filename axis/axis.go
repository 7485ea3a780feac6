package axis

import (
	"fmt"

	"github.com/hepkit/hbin/errs"
	"github.com/hepkit/hbin/internal/num"
)

// Integer is the set of integer edge types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point edge types.
type Float interface {
	~float32 | ~float64
}

// Edge is the set of types an axis can be partitioned over.
type Edge interface {
	Integer | Float
}

// Sized is the part of the axis contract that does not depend on the edge type.
type Sized interface {
	// NBins returns the number of regular bins, excluding underflow and overflow.
	NBins() int
	// NEdges returns NBins()+1.
	NEdges() int
}

// Axis is the contract every typed axis satisfies.
//
// Edge(i) is only defined for 0 <= i < NEdges(); use CheckEdge or
// CheckEdgeErr first when the index is not known to be valid.
// Lower and Upper are only defined for regular bins 1..NBins().
type Axis[E Edge] interface {
	Sized

	// Edge returns the i-th boundary value.
	Edge(i int) E
	// Min returns Edge(0).
	Min() E
	// Max returns Edge(NBins()).
	Max() E
	// Lower returns the lower (included) edge of bin.
	Lower(bin int) E
	// Upper returns the upper (excluded) edge of bin.
	Upper(bin int) E
	// FindBin returns the bin containing x: 0 below Min, NBins()+1 at or above Max.
	FindBin(x E) int
}

// CheckEdge reports whether i is a valid edge index of a.
func CheckEdge(a Sized, i int) bool {
	return i >= 0 && i < a.NEdges()
}

// CheckEdgeErr returns ErrEdgeOutOfRange naming i and the edge count when i is not
// a valid edge index of a.
func CheckEdgeErr(a Sized, i int) error {
	if CheckEdge(a, i) {
		return nil
	}

	return fmt.Errorf("%w: edge index %d >= %d", errs.ErrEdgeOutOfRange, i, a.NEdges())
}

// CheckBin reports whether bin is a regular bin of a, i.e. 1 <= bin <= NBins().
func CheckBin(a Sized, bin int) bool {
	return bin >= 1 && bin <= a.NBins()
}

// CheckBinErr returns ErrBinOutOfRange naming bin and the bin count when bin is not
// a regular bin of a.
func CheckBinErr(a Sized, bin int) error {
	if CheckBin(a, bin) {
		return nil
	}

	return fmt.Errorf("%w: bin %d not in [1, %d]", errs.ErrBinOutOfRange, bin, a.NBins())
}

// Convert converts a coordinate of any Go numeric kind to E.
// It reports false for non-numeric values.
func Convert[E Edge](x any) (E, bool) {
	return num.Convert[E](x)
}
