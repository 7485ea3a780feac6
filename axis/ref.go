package axis

import "fmt"

// Ref forwards every call to a shared target axis.
//
// Many histograms can hold a Ref to one axis definition, and the target's
// concrete type can be chosen at run time (see package reaxes).
type Ref[E Edge] struct {
	target Axis[E]
}

var _ Axis[float64] = Ref[float64]{}

// NewRef wraps target. It panics if target is nil.
func NewRef[E Edge](target Axis[E]) Ref[E] {
	if target == nil {
		panic("axis: NewRef with nil target")
	}

	return Ref[E]{target: target}
}

// Target returns the wrapped axis.
func (r Ref[E]) Target() Axis[E] { return r.target }

func (r Ref[E]) NBins() int      { return r.target.NBins() }
func (r Ref[E]) NEdges() int     { return r.target.NEdges() }
func (r Ref[E]) Edge(i int) E    { return r.target.Edge(i) }
func (r Ref[E]) Min() E          { return r.target.Min() }
func (r Ref[E]) Max() E          { return r.target.Max() }
func (r Ref[E]) Lower(bin int) E { return r.target.Lower(bin) }
func (r Ref[E]) Upper(bin int) E { return r.target.Upper(bin) }
func (r Ref[E]) FindBin(x E) int { return r.target.FindBin(x) }

func (r Ref[E]) String() string {
	if s, ok := r.target.(fmt.Stringer); ok {
		return "ref(" + s.String() + ")"
	}

	return fmt.Sprintf("ref(%d bins)", r.target.NBins())
}

// SharedUniform returns a Ref to a new uniform axis.
func SharedUniform(nbins int, min, max float64) (Ref[float64], error) {
	u, err := NewUniform(nbins, min, max)
	if err != nil {
		return Ref[float64]{}, err
	}

	return NewRef[float64](u), nil
}

// SharedEdges returns a Ref to a new explicit-edge axis.
func SharedEdges[E Edge](edges []E) (Ref[E], error) {
	e, err := NewEdges(edges)
	if err != nil {
		return Ref[E]{}, err
	}

	return NewRef[E](e), nil
}
