package axis

import (
	"fmt"
	"slices"
	"sort"

	"github.com/hepkit/hbin/errs"
)

// Edges is an axis over an explicit, sorted list of edges.
// FindBin is an upper-bound binary search, O(log n).
type Edges[E Edge] struct {
	edges []E
}

var _ Axis[float64] = (*Edges[float64])(nil)

// NewEdges creates an explicit-edge axis from a copy of edges.
//
// Parameters:
//   - edges: At least two boundary values in non-decreasing order
//
// Returns:
//   - *Edges[E]: The axis
//   - error: ErrInvalidEdges if there are fewer than two edges, they are not
//     sorted, or a floating-point edge is NaN
func NewEdges[E Edge](edges []E) (*Edges[E], error) {
	if err := validateEdges(edges); err != nil {
		return nil, err
	}

	return &Edges[E]{edges: slices.Clone(edges)}, nil
}

// MustEdges is like NewEdges but panics on error.
func MustEdges[E Edge](edges ...E) *Edges[E] {
	e, err := NewEdges(edges)
	if err != nil {
		panic(err)
	}

	return e
}

func validateEdges[E Edge](edges []E) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: need at least 2 edges, got %d", errs.ErrInvalidEdges, len(edges))
	}
	for i, e := range edges {
		if e != e {
			return fmt.Errorf("%w: edge %d is NaN", errs.ErrInvalidEdges, i)
		}
		if i > 0 && e < edges[i-1] {
			return fmt.Errorf("%w: edge %d (%v) < edge %d (%v)", errs.ErrInvalidEdges, i, e, i-1, edges[i-1])
		}
	}

	return nil
}

func (a *Edges[E]) NBins() int  { return len(a.edges) - 1 }
func (a *Edges[E]) NEdges() int { return len(a.edges) }

func (a *Edges[E]) Edge(i int) E { return a.edges[i] }
func (a *Edges[E]) Min() E       { return a.edges[0] }
func (a *Edges[E]) Max() E       { return a.edges[len(a.edges)-1] }

func (a *Edges[E]) Lower(bin int) E { return a.edges[bin-1] }
func (a *Edges[E]) Upper(bin int) E { return a.edges[bin] }

// FindBin returns the number of edges less than or equal to x, which places an
// edge value in the bin above it.
func (a *Edges[E]) FindBin(x E) int {
	return sort.Search(len(a.edges), func(i int) bool { return x < a.edges[i] })
}

// EdgeSlice returns the edges. The slice must not be modified.
func (a *Edges[E]) EdgeSlice() []E {
	return a.edges
}

func (a *Edges[E]) String() string {
	return fmt.Sprintf("edges%v", a.edges)
}

// Fixed is an explicit-edge axis meant for literal edge tables written in code.
//
// It is a value type and panics on invalid input instead of returning an error,
// since its edges are part of the program rather than of its input.
type Fixed[E Edge] struct {
	edges []E
	n     int // nbins
}

var _ Axis[float64] = Fixed[float64]{}

// NewFixed creates a Fixed axis from a copy of edges. It panics if edges are
// invalid under the same rules as NewEdges.
func NewFixed[E Edge](edges ...E) Fixed[E] {
	if err := validateEdges(edges); err != nil {
		panic(err)
	}

	return Fixed[E]{edges: slices.Clone(edges), n: len(edges) - 1}
}

func (a Fixed[E]) NBins() int  { return a.n }
func (a Fixed[E]) NEdges() int { return a.n + 1 }

func (a Fixed[E]) Edge(i int) E { return a.edges[i] }
func (a Fixed[E]) Min() E       { return a.edges[0] }
func (a Fixed[E]) Max() E       { return a.edges[a.n] }

func (a Fixed[E]) Lower(bin int) E { return a.edges[bin-1] }
func (a Fixed[E]) Upper(bin int) E { return a.edges[bin] }

// FindBin has the same contract as Edges.FindBin.
func (a Fixed[E]) FindBin(x E) int {
	if !(x < a.edges[a.n]) {
		return a.n + 1
	}
	if x < a.edges[0] {
		return 0
	}

	i, count := 0, a.n
	for count > 0 {
		step := count / 2
		j := i + step
		if !(x < a.edges[j]) {
			i = j + 1
			count -= step + 1
		} else {
			count = step
		}
	}

	return i
}
