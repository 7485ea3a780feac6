package event

import (
	"fmt"

	"github.com/hepkit/hbin/binner"
	"github.com/hepkit/hbin/errs"
)

// Binding fills one histogram from the current event of a source.
type Binding interface {
	// Name identifies the binding in errors and logs.
	Name() string
	// Fill returns the filled flat index or binner.NoBin for a dropped event.
	Fill(src Source) (int, error)
}

// PayloadFunc computes the fill payload for the current event.
type PayloadFunc func(src Source) ([]any, error)

// FieldBinding fills a binner with one source field per axis.
type FieldBinding[B any] struct {
	h       *binner.Binner[B]
	fields  []string
	payload PayloadFunc
	coords  []any
}

var _ Binding = (*FieldBinding[float64])(nil)

// Bind ties h to the given fields, one per axis in axis order. Without a
// payload every fill is a count.
func Bind[B any](h *binner.Binner[B], fields ...string) (*FieldBinding[B], error) {
	if len(fields) != h.NAxes() {
		return nil, fmt.Errorf("%w: binding %q has %d fields for %d axes", errs.ErrArity, h.Name(), len(fields), h.NAxes())
	}

	return &FieldBinding[B]{
		h:      h,
		fields: fields,
		coords: make([]any, len(fields)),
	}, nil
}

// Weighted fills the value of field as payload.
func (b *FieldBinding[B]) Weighted(field string) *FieldBinding[B] {
	return b.WithPayload(func(src Source) ([]any, error) {
		w, err := src.Float(field)
		if err != nil {
			return nil, err
		}

		return []any{w}, nil
	})
}

// WithPayload sets the payload function.
func (b *FieldBinding[B]) WithPayload(f PayloadFunc) *FieldBinding[B] {
	b.payload = f
	return b
}

// Name returns the binner name.
func (b *FieldBinding[B]) Name() string { return b.h.Name() }

// Fill reads the bound fields and fills the binner.
func (b *FieldBinding[B]) Fill(src Source) (int, error) {
	for i, f := range b.fields {
		v, err := src.Float(f)
		if err != nil {
			return binner.NoBin, err
		}
		b.coords[i] = v
	}

	bin, err := b.h.FindBin(b.coords...)
	if err != nil || bin == binner.NoBin {
		return bin, err
	}

	var payload []any
	if b.payload != nil {
		if payload, err = b.payload(src); err != nil {
			return binner.NoBin, err
		}
	}

	return b.h.FillBin(bin, payload...)
}

// FuncBinding adapts a closure to Binding, for fills that need derived
// quantities such as truthreco values.
type FuncBinding struct {
	name string
	fn   func(src Source) (int, error)
}

var _ Binding = FuncBinding{}

// BindFunc returns a Binding calling fn.
func BindFunc(name string, fn func(src Source) (int, error)) FuncBinding {
	return FuncBinding{name: name, fn: fn}
}

func (f FuncBinding) Name() string                 { return f.name }
func (f FuncBinding) Fill(src Source) (int, error) { return f.fn(src) }
