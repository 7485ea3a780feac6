package reaxes

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hepkit/hbin/axis"
	"github.com/hepkit/hbin/errs"
)

type yamlUniform struct {
	NBins int     `yaml:"nbins"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

type yamlEntry struct {
	Pattern string       `yaml:"pattern"`
	Uniform *yamlUniform `yaml:"uniform,omitempty"`
	Edges   []float64    `yaml:"edges,omitempty"`
}

// ParseYAML reads a table written as a YAML list:
//
//	- pattern: "pt_.*"
//	  uniform: {nbins: 10, min: 0, max: 200}
//	- pattern: eta
//	  edges: [-2.5, -1.5, 0, 1.5, 2.5]
//
// Entries keep their list order. Each entry needs exactly one of uniform and
// edges.
func ParseYAML(r io.Reader, opts ...Option) (*Table, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	var doc []yamlEntry
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", errs.ErrSyntax, err)
	}

	t := &Table{log: c.log}
	for i, e := range doc {
		pos := i + 1
		if e.Pattern == "" {
			return nil, fmt.Errorf("%w: entry %d: empty pattern", errs.ErrSyntax, pos)
		}

		var a axis.Axis[float64]
		switch {
		case e.Uniform != nil && e.Edges != nil:
			return nil, fmt.Errorf("%w: entry %d: both uniform and edges given", errs.ErrSyntax, pos)
		case e.Uniform != nil:
			a, err = axis.NewUniform(e.Uniform.NBins, e.Uniform.Min, e.Uniform.Max)
		case e.Edges != nil:
			a, err = axis.NewEdges(e.Edges)
		default:
			return nil, fmt.Errorf("%w: entry %d: %q has no binning", errs.ErrSyntax, pos, e.Pattern)
		}
		if err != nil {
			return nil, fmt.Errorf("entry %d: %q: %w", pos, e.Pattern, err)
		}

		if err := t.add(e.Pattern, pos, a); err != nil {
			return nil, err
		}
	}

	return t, nil
}
