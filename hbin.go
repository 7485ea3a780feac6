// Package hbin fills multi-dimensional histograms of arbitrary bin types.
//
// A histogram is a binner.Binner: one axis per dimension, each with its own
// underflow and overflow policy, over a flat slice of bins of any type. The
// bin type decides what a fill does through its methods (see package filler),
// so a float64 histogram counts and sums weights while a struct bin can keep
// a running mean or a list of events.
//
// # Basic Usage
//
//	h, _ := hbin.NewHist1D("pt_yy", axis.MustUniform(20, 0, 200))
//	h.Fill(42.5)      // count
//	h.Fill(42.5, 0.8) // weighted
//
// Axes shared between many histograms are usually kept in a pattern table
// and looked up by histogram name:
//
//	table, _ := reaxes.Load("binning.txt")
//	h, _ := hbin.NewHist1D("pt_yy", table.MustLookup("pt_yy"))
//
// Filled histograms are written with package snapshot.
//
// # Package Structure
//
// This package provides shortcuts for the common float64 histograms. Use
// package binner directly for other bin types, migration axes or per-axis
// flow policies.
package hbin

import (
	"github.com/hepkit/hbin/axis"
	"github.com/hepkit/hbin/binner"
	"github.com/hepkit/hbin/internal/hash"
)

// HistID returns the 64-bit identifier of a histogram name.
func HistID(name string) uint64 {
	return hash.ID(name)
}

// NewHist1D creates a float64 histogram over x with both flow bins.
func NewHist1D(name string, x axis.Axis[float64], opts ...binner.Option[float64]) (*binner.Binner[float64], error) {
	return NewHist(name, []axis.Axis[float64]{x}, opts...)
}

// NewHist2D creates a float64 histogram over x and y with both flow bins on
// each axis.
func NewHist2D(name string, x, y axis.Axis[float64], opts ...binner.Option[float64]) (*binner.Binner[float64], error) {
	return NewHist(name, []axis.Axis[float64]{x, y}, opts...)
}

// NewHist creates a float64 histogram with both flow bins on every axis.
//
// Parameters:
//   - name: Display name, also used by registries and snapshots
//   - axes: Axes in axis order
//   - opts: Extra binner options; a later WithName overrides name
//
// Returns:
//   - *binner.Binner[float64]: The histogram
//   - error: Any binner.New error
func NewHist(name string, axes []axis.Axis[float64], opts ...binner.Option[float64]) (*binner.Binner[float64], error) {
	dims := make([]binner.Dim, len(axes))
	for i, a := range axes {
		dims[i] = binner.On(a, binner.DefaultSpec)
	}

	all := append([]binner.Option[float64]{binner.WithName[float64](name)}, opts...)

	return binner.New[float64](dims, all...)
}

// NewCounter creates an integer counting histogram with both flow bins on
// every axis.
func NewCounter(name string, axes ...axis.Axis[float64]) (*binner.Binner[int], error) {
	dims := make([]binner.Dim, len(axes))
	for i, a := range axes {
		dims[i] = binner.On(a, binner.DefaultSpec)
	}

	return binner.New[int](dims, binner.WithName[int](name), binner.WithCounting[int]())
}
