package binner

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/hepkit/hbin/errs"
	"github.com/hepkit/hbin/filler"
	"github.com/hepkit/hbin/internal/hash"
	"github.com/hepkit/hbin/internal/options"
)

// Binner is a histogram of bins of type B over N axes.
//
// Bins are zero values at construction and are only mutated through the
// filler table, by Fill, FillBin, FillLocal and the integration methods.
type Binner[B any] struct {
	dims   []Dim
	bins   []B
	filler *filler.Table[B]
	name   string
	shape  uint64
	log    zerolog.Logger

	registry *Registry[B]
	handle   Handle
}

// New creates a binner over dims with every bin zero valued.
//
// Parameters:
//   - dims: One Dim per axis, axis 0 first
//   - opts: WithName, WithRegistry, WithFiller, WithLogger, WithCounting
//
// Returns:
//   - *Binner[B]: The binner, registered if WithRegistry was given
//   - error: ErrNoAxes, ErrInvalidAxis for an axis without bins, or
//     ErrNoFillRule when WithCounting is set and B cannot count
func New[B any](dims []Dim, opts ...Option[B]) (*Binner[B], error) {
	if len(dims) == 0 {
		return nil, errs.ErrNoAxes
	}

	s := &settings[B]{logger: zerolog.Nop()}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}
	if s.filler == nil {
		s.filler = filler.For[B]()
	}
	if s.requireCount {
		if _, err := s.filler.Check(); err != nil {
			return nil, err
		}
	}

	total := 1
	for k, d := range dims {
		if d.loc == nil || d.NBins() <= 0 {
			return nil, fmt.Errorf("%w: axis %d has no bins", errs.ErrInvalidAxis, k)
		}
		total *= d.Width()
	}

	b := &Binner[B]{
		dims:   append([]Dim(nil), dims...),
		bins:   make([]B, total),
		filler: s.filler,
		name:   s.name,
		log:    s.logger,
	}
	b.shape = shapeKey[B](b.dims)

	if s.registry != nil {
		b.registry = s.registry
		b.handle = s.registry.Register(b.name, b)
	}

	b.log.Debug().
		Str("name", b.name).
		Int("axes", len(b.dims)).
		Int("bins", total).
		Str("zeroRule", b.filler.ZeroRule().String()).
		Msg("binner created")

	return b, nil
}

// shapeKey identifies the exact configuration of a binner: bin type, and per
// axis the axis type, bin count and spec.
func shapeKey[B any](dims []Dim) uint64 {
	k := hash.NewKey().String(reflect.TypeFor[B]().String()).Uint(uint64(len(dims)))
	for _, d := range dims {
		k.String(d.kind).
			Uint(uint64(d.NBins())).
			Bool(d.spec.Underflow).
			Bool(d.spec.Overflow).
			Bool(d.spec.Strict)
	}

	return k.Sum64()
}

// Name returns the display name.
func (b *Binner[B]) Name() string { return b.name }

// Shape returns the configuration key shared by binners with the same bin
// type, axis types, bin counts and specs.
func (b *Binner[B]) Shape() uint64 { return b.shape }

// NAxes returns the number of axes.
func (b *Binner[B]) NAxes() int { return len(b.dims) }

// Dim returns axis k.
func (b *Binner[B]) Dim(k int) Dim { return b.dims[k] }

// NBinsTotal returns the number of stored bins, the product of all Dim widths.
func (b *Binner[B]) NBinsTotal() int { return len(b.bins) }

// Bins returns the flat bin storage. Mutating bins directly bypasses the filler.
func (b *Binner[B]) Bins() []B { return b.bins }

// Filler returns the capability table used for fills.
func (b *Binner[B]) Filler() *filler.Table[B] { return b.filler }

// At returns the bin at flat index i.
func (b *Binner[B]) At(i int) *B { return &b.bins[i] }

// Index returns the flat index of local bin indices, one per axis.
// It performs no validation; see IndexErr.
func (b *Binner[B]) Index(locals ...int) int {
	flat, stride := 0, 1
	for k, d := range b.dims {
		flat += locals[k] * stride
		stride *= d.Width()
	}

	return flat
}

// IndexErr is Index with arity and range validation.
//
// Returns:
//   - int: The flat index
//   - error: ErrArity for a wrong number of indices, ErrBinOutOfRange for a
//     local index outside [0, Width)
func (b *Binner[B]) IndexErr(locals ...int) (int, error) {
	if len(locals) != len(b.dims) {
		return 0, fmt.Errorf("%w: %d indices for %d axes", errs.ErrArity, len(locals), len(b.dims))
	}
	for k, d := range b.dims {
		if locals[k] < 0 || locals[k] >= d.Width() {
			return 0, fmt.Errorf("%w: axis %d local index %d not in [0, %d)", errs.ErrBinOutOfRange, k, locals[k], d.Width())
		}
	}

	return b.Index(locals...), nil
}

// Bin returns the bin at the given local indices. See Index.
func (b *Binner[B]) Bin(locals ...int) *B {
	return &b.bins[b.Index(locals...)]
}

// FindBin resolves one coordinate per axis to a flat index.
//
// Each axis locates its raw bin and applies its Spec. The first axis that
// drops the coordinate short-circuits to NoBin.
//
// Returns:
//   - int: The flat index, or NoBin when the coordinates were dropped
//   - error: ErrArity, ErrCoordinateType, ErrCheckCount, or ErrRangeViolation
//     from a strict axis
func (b *Binner[B]) FindBin(coords ...any) (int, error) {
	if len(coords) != len(b.dims) {
		return NoBin, fmt.Errorf("%w: %d coordinates for %d axes", errs.ErrArity, len(coords), len(b.dims))
	}

	flat, stride := 0, 1
	for k, d := range b.dims {
		raw, err := d.loc.Locate(coords[k])
		if err != nil {
			return NoBin, fmt.Errorf("axis %d: %w", k, err)
		}

		i, err := d.local(k, raw)
		if err != nil || i == NoBin {
			return NoBin, err
		}

		flat += i * stride
		stride *= d.Width()
	}

	return flat, nil
}

// Fill resolves the first NAxes() arguments as coordinates and hands the rest
// to the filler as payload.
//
// A dropped coordinate returns NoBin and leaves every bin untouched. Errors are
// returned before any bin is mutated.
//
// Returns:
//   - int: The filled flat index, or NoBin
//   - error: Any FindBin error, or ErrNoFillRule for an unsupported payload
func (b *Binner[B]) Fill(args ...any) (int, error) {
	if len(args) < len(b.dims) {
		return NoBin, fmt.Errorf("%w: %d arguments for %d axes", errs.ErrArity, len(args), len(b.dims))
	}

	bin, err := b.FindBin(args[:len(b.dims)]...)
	if err != nil || bin == NoBin {
		return bin, err
	}

	return b.FillBin(bin, args[len(b.dims):]...)
}

// FillBin applies the filler to the bin at flat index i.
//
// The index is trusted: no bounds validation is done beyond the slice bounds
// check of the runtime, which panics.
func (b *Binner[B]) FillBin(i int, payload ...any) (int, error) {
	if err := b.filler.Fill(&b.bins[i], payload...); err != nil {
		return NoBin, err
	}

	return i, nil
}

// FillLocal fills the bin at the given local indices. See Index.
func (b *Binner[B]) FillLocal(locals []int, payload ...any) (int, error) {
	return b.FillBin(b.Index(locals...), payload...)
}

// Close removes the binner from its registry. It is safe to call more than
// once and on unregistered binners.
func (b *Binner[B]) Close() error {
	if b.registry == nil {
		return nil
	}

	err := b.registry.Remove(b.handle)
	b.registry = nil

	return err
}

func (b *Binner[B]) String() string {
	return fmt.Sprintf("binner(%q, %d axes, %d bins)", b.name, len(b.dims), len(b.bins))
}
