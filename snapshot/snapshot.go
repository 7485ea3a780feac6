package snapshot

import (
	"fmt"

	"github.com/hepkit/hbin/binner"
	"github.com/hepkit/hbin/errs"
	"github.com/hepkit/hbin/internal/num"
)

// Axis is the stored description of one binner axis.
type Axis struct {
	NBins int
	Spec  binner.Spec
	// Edges is empty for axes that cannot list their edges, such as migration
	// axes.
	Edges []float64
	// Kind is the Go type of the axis, for display.
	Kind string
}

// Width returns the number of stored bins along the axis.
func (a Axis) Width() int { return a.NBins + a.Spec.NOver() }

// Snapshot is a decoded or about to be encoded histogram.
type Snapshot struct {
	Name   string
	Axes   []Axis
	Values []float64
}

// ValueFunc extracts the stored value of a bin.
type ValueFunc[B any] func(bin *B) float64

// FromBinner captures the layout and bin values of b.
//
// Parameters:
//   - b: The binner to capture
//   - value: Extracts one float64 per bin; nil works for numeric bin types
//
// Returns:
//   - *Snapshot: A snapshot owning its values
//   - error: ErrNoFillRule if value is nil and B is not numeric
func FromBinner[B any](b *binner.Binner[B], value ValueFunc[B]) (*Snapshot, error) {
	if value == nil {
		var zero B
		if _, ok := num.Convert[float64](zero); !ok {
			return nil, fmt.Errorf("%w: %T bins need a value function", errs.ErrNoFillRule, zero)
		}
		value = func(bin *B) float64 {
			v, _ := num.Convert[float64](*bin)
			return v
		}
	}

	s := &Snapshot{
		Name: b.Name(),
		Axes: make([]Axis, b.NAxes()),
	}
	for k := range s.Axes {
		d := b.Dim(k)
		s.Axes[k] = Axis{NBins: d.NBins(), Spec: d.Spec(), Edges: d.Edges(), Kind: d.Kind()}
	}

	s.Values = make([]float64, b.NBinsTotal())
	for i := range s.Values {
		s.Values[i] = value(b.At(i))
	}

	return s, nil
}

// FromRegistry captures every binner of r in registration order.
func FromRegistry[B any](r *binner.Registry[B], value ValueFunc[B]) ([]*Snapshot, error) {
	var out []*Snapshot
	for _, e := range r.All() {
		s, err := FromBinner(e.Binner, value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		if s.Name == "" {
			s.Name = e.Name
		}
		out = append(out, s)
	}

	return out, nil
}

// NBinsTotal returns the number of values the axes describe.
func (s *Snapshot) NBinsTotal() int {
	total := 1
	for _, a := range s.Axes {
		total *= a.Width()
	}

	return total
}

// Index returns the flat index of local bin indices using the binner
// convention, axis 0 fastest.
//
// Returns:
//   - int: The flat index
//   - error: ErrArity or ErrBinOutOfRange
func (s *Snapshot) Index(locals ...int) (int, error) {
	if len(locals) != len(s.Axes) {
		return 0, fmt.Errorf("%w: %d indices for %d axes", errs.ErrArity, len(locals), len(s.Axes))
	}

	flat, stride := 0, 1
	for k, a := range s.Axes {
		if locals[k] < 0 || locals[k] >= a.Width() {
			return 0, fmt.Errorf("%w: axis %d local index %d not in [0, %d)", errs.ErrBinOutOfRange, k, locals[k], a.Width())
		}
		flat += locals[k] * stride
		stride *= a.Width()
	}

	return flat, nil
}

// Locals is the inverse of Index.
func (s *Snapshot) Locals(flat int) []int {
	locals := make([]int, len(s.Axes))
	for k, a := range s.Axes {
		locals[k] = flat % a.Width()
		flat /= a.Width()
	}

	return locals
}

// Sum returns the sum of all values, flow bins included.
func (s *Snapshot) Sum() float64 {
	total := 0.0
	for _, v := range s.Values {
		total += v
	}

	return total
}

func (s *Snapshot) validate() error {
	if len(s.Axes) == 0 {
		return errs.ErrNoAxes
	}
	if len(s.Axes) > maxAxes {
		return fmt.Errorf("%w: %d axes, at most %d", errs.ErrInvalidSnapshot, len(s.Axes), maxAxes)
	}
	for k, a := range s.Axes {
		if a.NBins <= 0 {
			return fmt.Errorf("%w: axis %d has %d bins", errs.ErrInvalidAxis, k, a.NBins)
		}
		if len(a.Edges) != 0 && len(a.Edges) != a.NBins+1 {
			return fmt.Errorf("%w: axis %d has %d edges for %d bins", errs.ErrInvalidEdges, k, len(a.Edges), a.NBins)
		}
	}
	if n := s.NBinsTotal(); n != len(s.Values) {
		return fmt.Errorf("%w: %d values for %d bins", errs.ErrInvalidSnapshot, len(s.Values), n)
	}

	return nil
}
