package reaxes

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/hepkit/hbin/axis"
	"github.com/hepkit/hbin/errs"
)

type state uint8

const (
	scanPattern state = iota // skipping blanks before a pattern
	readPattern              // inside a pattern, waiting for '{'
	readBinning              // inside braces
)

type scanner struct {
	t       *Table
	state   state
	line    int
	comment bool
	uniform bool
	pattern strings.Builder
	num     strings.Builder
	nums    []float64
}

// Parse reads a table in the brace format described in the package
// documentation.
//
// Returns:
//   - *Table: The compiled table
//   - error: ErrSyntax for malformed input, ErrInvalidAxis or ErrInvalidEdges
//     for binnings that do not describe an axis. Errors name the line.
func Parse(r io.Reader, opts ...Option) (*Table, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	s := &scanner{t: &Table{log: c.log}, line: 1}
	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := s.step(ch); err != nil {
			return nil, err
		}
	}

	switch s.state {
	case readPattern:
		return nil, s.errorf("pattern %q has no binning", strings.TrimSpace(s.pattern.String()))
	case readBinning:
		return nil, s.errorf("unterminated binning for %q", s.pattern.String())
	}

	return s.t, nil
}

func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", errs.ErrSyntax, s.line, fmt.Sprintf(format, args...))
}

func (s *scanner) step(ch rune) error {
	if ch == '\n' {
		defer func() { s.line++ }()
	}

	if s.comment {
		if ch == '\n' {
			s.comment = false
		}

		return nil
	}
	if ch == '#' {
		s.comment = true
		return nil
	}

	switch s.state {
	case scanPattern:
		if !unicode.IsSpace(ch) {
			s.state = readPattern
			s.pattern.WriteRune(ch)
		}
	case readPattern:
		if ch == '{' {
			s.state = readBinning
			pattern := strings.TrimRightFunc(s.pattern.String(), unicode.IsSpace)
			s.pattern.Reset()
			s.pattern.WriteString(pattern)
		} else {
			s.pattern.WriteRune(ch)
		}
	case readBinning:
		return s.binning(ch)
	}

	return nil
}

func (s *scanner) binning(ch rune) error {
	switch {
	case ch == '}':
		if err := s.pushNum(); err != nil {
			return err
		}

		return s.finish()
	case ch == ':':
		if s.uniform {
			return s.errorf("more than 1 ':'")
		}
		// the colon follows the bin count, with or without blanks before it
		if (s.num.Len() > 0 && len(s.nums) == 0) || (s.num.Len() == 0 && len(s.nums) == 1) {
			s.uniform = true
			return s.pushNum()
		}

		return s.errorf("out of place ':'")
	case unicode.IsSpace(ch):
		return s.pushNum()
	default:
		s.num.WriteRune(ch)
	}

	return nil
}

func (s *scanner) pushNum() error {
	if s.num.Len() == 0 {
		return nil
	}

	str := s.num.String()
	s.num.Reset()

	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return s.errorf("bad number %q", str)
	}
	s.nums = append(s.nums, v)

	return nil
}

func (s *scanner) finish() error {
	pattern := s.pattern.String()
	nums := s.nums

	s.pattern.Reset()
	s.nums = nil
	s.state = scanPattern

	var (
		a   axis.Axis[float64]
		err error
	)
	if s.uniform {
		s.uniform = false
		if len(nums) != 3 {
			return s.errorf("uniform axis for %q needs 3 arguments, got %d", pattern, len(nums))
		}
		a, err = uniform(nums[0], nums[1], nums[2])
	} else {
		a, err = axis.NewEdges(nums)
	}
	if err != nil {
		return fmt.Errorf("line %d: %q: %w", s.line, pattern, err)
	}

	return s.t.add(pattern, s.line, a)
}

// uniform builds a uniform axis from a float bin count as read from text.
func uniform(nbins, min, max float64) (*axis.Uniform, error) {
	if nbins != math.Trunc(nbins) || nbins < 1 || nbins > math.MaxInt32 {
		return nil, fmt.Errorf("%w: bin count %g is not a positive integer", errs.ErrInvalidAxis, nbins)
	}

	return axis.NewUniform(int(nbins), min, max)
}
