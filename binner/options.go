package binner

import (
	"github.com/rs/zerolog"

	"github.com/hepkit/hbin/filler"
	"github.com/hepkit/hbin/internal/options"
)

type settings[B any] struct {
	name         string
	registry     *Registry[B]
	filler       *filler.Table[B]
	logger       zerolog.Logger
	requireCount bool
}

// Option configures a Binner at construction.
type Option[B any] = options.Option[*settings[B]]

// WithName sets the display name used by registries and snapshots.
func WithName[B any](name string) Option[B] {
	return options.NoError(func(s *settings[B]) {
		s.name = name
	})
}

// WithRegistry registers the binner in r. Close removes it again.
func WithRegistry[B any](r *Registry[B]) Option[B] {
	return options.NoError(func(s *settings[B]) {
		s.registry = r
	})
}

// WithFiller uses t instead of a table built by filler.For. Use it to share a
// table with registered Adder payload types between binners.
func WithFiller[B any](t *filler.Table[B]) Option[B] {
	return options.NoError(func(s *settings[B]) {
		s.filler = t
	})
}

// WithLogger sets the logger. The default discards everything.
func WithLogger[B any](l zerolog.Logger) Option[B] {
	return options.NoError(func(s *settings[B]) {
		s.logger = l
	})
}

// WithCounting requires the bin type to support fills without payload, so a
// counting histogram over a bin type that cannot count fails at construction
// instead of at the first fill.
func WithCounting[B any]() Option[B] {
	return options.NoError(func(s *settings[B]) {
		s.requireCount = true
	})
}
