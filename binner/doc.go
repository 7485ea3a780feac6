// Package binner composes any number of axes into one flat histogram.
//
// Each axis is wrapped in a Dim together with a Spec that decides whether
// its underflow and overflow bins are materialized and whether a coordinate
// landing in an excluded one aborts the fill (strict) or silently drops it.
//
// Bins are stored in a single slice. The flat index of local bin indices
// (i0, i1, ..., iN-1) is the mixed-radix number
//
//	flat = i0 + W0*(i1 + W1*(i2 + ...))
//
// where Wk = nbins_k + nover_k, so axis 0 varies fastest. Local indices are
// zero based and start at the underflow bin when it is materialized.
//
// # Basic Usage
//
//	h, _ := binner.New[float64]([]binner.Dim{
//	    binner.On[float64](axis.MustUniform(10, 0, 200), binner.DefaultSpec),
//	    binner.On[float64](axis.MustEdges(0.0, 1.2, 2.4), binner.NoFlow),
//	})
//	h.Fill(42.0, 0.7)       // count
//	h.Fill(42.0, 0.7, 0.5)  // add weight 0.5
//
// Fills run synchronously on the caller's goroutine and a Binner must not be
// filled concurrently.
package binner
