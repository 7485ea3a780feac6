package binner

import (
	"fmt"

	"github.com/hepkit/hbin/errs"
)

// IntegrateRight replaces every bin with the sum of itself and all bins before
// it in flat storage order, turning a differential histogram into a
// cumulative one.
//
// For more than one axis the sum runs across the flattened storage and mixes
// axes; it is a per-axis cumulative sum only for one-dimensional binners.
//
// Returns:
//   - error: ErrNoFillRule if bins of type B cannot be added together
func (b *Binner[B]) IntegrateRight() error {
	if err := b.checkIntegrate("right"); err != nil {
		return err
	}

	for i := 1; i < len(b.bins); i++ {
		_ = b.filler.Merge(&b.bins[i], &b.bins[i-1])
	}

	return nil
}

// IntegrateLeft replaces every bin with the sum of itself and all bins after
// it in flat storage order. The multi-axis caveat of IntegrateRight applies.
func (b *Binner[B]) IntegrateLeft() error {
	if err := b.checkIntegrate("left"); err != nil {
		return err
	}

	for i := len(b.bins) - 2; i >= 0; i-- {
		_ = b.filler.Merge(&b.bins[i], &b.bins[i+1])
	}

	return nil
}

func (b *Binner[B]) checkIntegrate(dir string) error {
	if !b.filler.CanMerge() {
		return fmt.Errorf("%w: %s cannot be integrated", errs.ErrNoFillRule, b.filler.BinType())
	}
	if len(b.dims) > 1 {
		b.log.Warn().
			Str("name", b.name).
			Str("direction", dir).
			Int("axes", len(b.dims)).
			Msg("integrating across flattened axes")
	}

	return nil
}
