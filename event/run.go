package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hepkit/hbin/binner"
	"github.com/hepkit/hbin/errs"
	"github.com/hepkit/hbin/internal/options"
)

// Stats summarizes an event loop.
type Stats struct {
	// Events is the number of events read from the source.
	Events int
	// Selected is the number of events that passed the cut.
	Selected int
	// Fills is the number of fills that reached a bin.
	Fills int
	// Dropped is the number of fills resolved to binner.NoBin.
	Dropped int
	// Violations is the number of skipped strict range violations.
	Violations int
	// Elapsed is the wall time of the loop.
	Elapsed time.Duration
}

// Cut selects events before any binding is filled.
type Cut func(src Source) (bool, error)

type runConfig struct {
	log      zerolog.Logger
	skip     bool
	interval time.Duration
	limit    int
	cut      Cut
	now      func() time.Time
}

// RunOption configures Run.
type RunOption = options.Option[*runConfig]

// WithLogger sets the progress logger. The default discards everything.
func WithLogger(l zerolog.Logger) RunOption {
	return options.NoError(func(c *runConfig) {
		c.log = l
	})
}

// WithSkipViolations counts strict range violations and moves on to the next
// binding instead of stopping the loop.
func WithSkipViolations() RunOption {
	return options.NoError(func(c *runConfig) {
		c.skip = true
	})
}

// WithProgressInterval sets the minimum time between progress records.
// The default is one second.
func WithProgressInterval(d time.Duration) RunOption {
	return options.New(func(c *runConfig) error {
		if d < 0 {
			return fmt.Errorf("negative progress interval %v", d)
		}
		c.interval = d

		return nil
	})
}

// WithLimit stops after n events. Zero means no limit.
func WithLimit(n int) RunOption {
	return options.NoError(func(c *runConfig) {
		c.limit = n
	})
}

// WithCut skips events for which cut reports false.
func WithCut(cut Cut) RunOption {
	return options.NoError(func(c *runConfig) {
		c.cut = cut
	})
}

// Run reads src to the end and fills every binding for each event.
//
// The context is checked before every event. Bindings are filled in order;
// a failing fill stops the loop unless it is a range violation and
// WithSkipViolations is set.
//
// Returns:
//   - Stats: Counters up to the point the loop ended
//   - error: The context error, the source error, or the first fill error
//     wrapped with the event number and binding name
func Run(ctx context.Context, src Source, bindings []Binding, opts ...RunOption) (Stats, error) {
	cfg := &runConfig{log: zerolog.Nop(), interval: time.Second, now: time.Now}
	if err := options.Apply(cfg, opts...); err != nil {
		return Stats{}, err
	}

	var st Stats
	start := cfg.now()
	last := start

	progress := func(msg string) {
		now := cfg.now()
		st.Elapsed = now.Sub(start)
		ev := cfg.log.Info().
			Int("events", st.Events).
			Int("selected", st.Selected).
			Int("fills", st.Fills).
			Int("dropped", st.Dropped).
			Dur("elapsed", st.Elapsed)
		if st.Violations > 0 {
			ev = ev.Int("violations", st.Violations)
		}
		ev.Msg(msg)
		last = now
	}

	err := loop(ctx, src, bindings, cfg, &st, func() {
		if cfg.now().Sub(last) >= cfg.interval {
			progress("event loop progress")
		}
	})
	progress("event loop finished")

	return st, err
}

func loop(ctx context.Context, src Source, bindings []Binding, cfg *runConfig, st *Stats, tick func()) error {
	for (cfg.limit == 0 || st.Events < cfg.limit) && src.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		st.Events++

		if cfg.cut != nil {
			ok, err := cfg.cut(src)
			if err != nil {
				return fmt.Errorf("event %d: cut: %w", st.Events, err)
			}
			if !ok {
				tick()
				continue
			}
		}
		st.Selected++

		for _, b := range bindings {
			bin, err := b.Fill(src)
			switch {
			case err == nil && bin == binner.NoBin:
				st.Dropped++
			case err == nil:
				st.Fills++
			case cfg.skip && errors.Is(err, errs.ErrRangeViolation):
				st.Violations++
				cfg.log.Debug().Err(err).Int("event", st.Events).Str("binding", b.Name()).Msg("range violation skipped")
			default:
				return fmt.Errorf("event %d: %s: %w", st.Events, b.Name(), err)
			}
		}
		tick()
	}

	return src.Err()
}
