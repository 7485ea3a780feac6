// Package axis provides the bin lookup strategies shared by every hbin histogram.
//
// An axis partitions a coordinate domain into NBins() numbered bins following
// the ROOT TH1 convention:
//
//	bin = 0          underflow
//	bin = 1          first bin, lower edge included
//	bin = NBins()    last bin, upper edge excluded
//	bin = NBins()+1  overflow
//
// Edges are NBins()+1 ordered boundary values and every bin is the half-open
// interval [Lower(bin), Upper(bin)).
//
// # Variants
//
//   - Uniform: equal-width bins over [min, max), O(1) lookup
//   - Edges: explicit sorted edges, binary search lookup
//   - Index: integer ticks over [min, max), bin = x-min+1
//   - Fixed: literal edge table with a hand-rolled binary search
//   - Ref: forwards to a shared axis, so many histograms can use one
//     definition and the concrete type can be picked at run time
//   - Migration: decorates a base axis with reserved bins for events that fail
//     auxiliary boolean checks
//
// Axes are immutable once built and may be shared read-only between any
// number of histograms.
package axis
