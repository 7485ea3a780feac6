package binner

import (
	"fmt"

	"github.com/hepkit/hbin/axis"
	"github.com/hepkit/hbin/errs"
)

// NoBin is returned by FindBin and Fill when a coordinate was dropped.
const NoBin = -1

// Spec is the per-axis flow policy of a binner.
type Spec struct {
	// Underflow materializes bin 0 of the axis.
	Underflow bool
	// Overflow materializes bin nbins+1 of the axis.
	Overflow bool
	// Strict turns a coordinate in an excluded flow bin into an error instead
	// of a silent drop.
	Strict bool
}

var (
	// DefaultSpec keeps both flow bins.
	DefaultSpec = Spec{Underflow: true, Overflow: true}
	// NoFlow drops coordinates outside the axis range.
	NoFlow = Spec{}
	// StrictNoFlow rejects coordinates outside the axis range.
	StrictNoFlow = Spec{Strict: true}
)

// NOver returns the number of flow bins the spec materializes.
func (s Spec) NOver() int {
	n := 0
	if s.Underflow {
		n++
	}
	if s.Overflow {
		n++
	}

	return n
}

// Locator maps a coordinate of any type to a raw axis bin.
// Typed axes are adapted with On; migration axes implement it directly.
type Locator interface {
	NBins() int
	Locate(x any) (int, error)
}

// EdgeLister is implemented by locators that can report their edges as float64.
type EdgeLister interface {
	EdgeValues() []float64
}

// Dim is one axis of a binner with its flow policy.
type Dim struct {
	loc  Locator
	spec Spec
	kind string
}

// On adapts a typed axis. Coordinates of any numeric kind are converted to E.
func On[E axis.Edge](a axis.Axis[E], spec Spec) Dim {
	return Dim{loc: typed[E]{a: a}, spec: spec, kind: fmt.Sprintf("%T", a)}
}

// OnLocator wraps a locator such as *axis.Migration.
func OnLocator(l Locator, spec Spec) Dim {
	return Dim{loc: l, spec: spec, kind: fmt.Sprintf("%T", l)}
}

// Locator returns the wrapped locator.
func (d Dim) Locator() Locator { return d.loc }

// Spec returns the flow policy.
func (d Dim) Spec() Spec { return d.spec }

// NBins returns the number of regular bins of the axis.
func (d Dim) NBins() int { return d.loc.NBins() }

// Width returns the number of materialized bins, nbins plus flow bins.
func (d Dim) Width() int { return d.loc.NBins() + d.spec.NOver() }

// Kind returns the dynamic type name of the wrapped axis.
func (d Dim) Kind() string { return d.kind }

// Edges returns the axis edges as float64, or nil when the locator cannot
// report them.
func (d Dim) Edges() []float64 {
	if el, ok := d.loc.(EdgeLister); ok {
		return el.EdgeValues()
	}

	return nil
}

// local applies the flow policy to a raw bin of axis k.
// It returns NoBin for a silent drop.
func (d Dim) local(k, raw int) (int, error) {
	n := d.loc.NBins()

	switch {
	case raw <= 0 && !d.spec.Underflow:
		if d.spec.Strict {
			return NoBin, fmt.Errorf("%w: axis %d bin %d is underflow (nbins %d)", errs.ErrRangeViolation, k, raw, n)
		}

		return NoBin, nil
	case raw > n && !d.spec.Overflow:
		if d.spec.Strict {
			return NoBin, fmt.Errorf("%w: axis %d bin %d is overflow (nbins %d)", errs.ErrRangeViolation, k, raw, n)
		}

		return NoBin, nil
	}

	if !d.spec.Underflow {
		return raw - 1, nil
	}

	return raw, nil
}

type typed[E axis.Edge] struct {
	a axis.Axis[E]
}

func (t typed[E]) NBins() int { return t.a.NBins() }

func (t typed[E]) Locate(x any) (int, error) {
	v, ok := axis.Convert[E](x)
	if !ok {
		var zero E
		return 0, fmt.Errorf("%w: %T for %T axis", errs.ErrCoordinateType, x, zero)
	}

	return t.a.FindBin(v), nil
}

func (t typed[E]) EdgeValues() []float64 {
	edges := make([]float64, t.a.NEdges())
	for i := range edges {
		edges[i] = float64(t.a.Edge(i))
	}

	return edges
}
