package reaxes

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hepkit/hbin/axis"
	"github.com/hepkit/hbin/errs"
	"github.com/hepkit/hbin/internal/options"
)

// Entry is one compiled table row.
type Entry struct {
	// Pattern is the expression as written, without anchors.
	Pattern string
	// Line is the line of the closing brace, or the YAML list position.
	Line int
	// Axis is shared by every histogram whose name matches Pattern.
	Axis axis.Ref[float64]

	re *regexp.Regexp
}

// Match reports whether the whole name matches the entry pattern.
func (e Entry) Match(name string) bool { return e.re.MatchString(name) }

// Table is an ordered list of pattern to axis entries. It is read-only after
// parsing.
type Table struct {
	entries []Entry
	log     zerolog.Logger
}

type config struct {
	log zerolog.Logger
}

// Option configures parsing.
type Option = options.Option[*config]

// WithLogger logs one debug record per compiled entry.
func WithLogger(l zerolog.Logger) Option {
	return options.NoError(func(c *config) {
		c.log = l
	})
}

func newConfig(opts []Option) (*config, error) {
	c := &config{log: zerolog.Nop()}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Load reads a table from path. Files ending in .yaml or .yml are parsed with
// ParseYAML, everything else with Parse.
func Load(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		t, err = ParseYAML(f, opts...)
	default:
		t, err = Parse(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// compile anchors the expression so that it has to match the whole name.
func compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.CompilePOSIX("^(" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", errs.ErrSyntax, pattern, err)
	}

	return re, nil
}

func (t *Table) add(pattern string, line int, a axis.Axis[float64]) error {
	re, err := compile(pattern)
	if err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}

	e := Entry{Pattern: pattern, Line: line, Axis: axis.NewRef(a), re: re}
	t.entries = append(t.entries, e)

	t.log.Debug().
		Str("pattern", pattern).
		Int("line", line).
		Stringer("axis", e.Axis).
		Msg("axis entry compiled")

	return nil
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Lookup returns the axis of the first entry matching name.
//
// Returns:
//   - axis.Ref[float64]: The shared axis
//   - error: ErrNoBinning naming the identifier when nothing matches
func (t *Table) Lookup(name string) (axis.Ref[float64], error) {
	for _, e := range t.entries {
		if e.re.MatchString(name) {
			return e.Axis, nil
		}
	}

	return axis.Ref[float64]{}, fmt.Errorf("%w for %s", errs.ErrNoBinning, name)
}

// MustLookup is Lookup that panics on error.
func (t *Table) MustLookup(name string) axis.Ref[float64] {
	a, err := t.Lookup(name)
	if err != nil {
		panic(err)
	}

	return a
}
