package axis

import (
	"fmt"
	"math"

	"github.com/hepkit/hbin/errs"
)

// Uniform is an axis of nbins equal-width bins over [min, max).
// Edges are computed, not stored, and FindBin is O(1).
type Uniform struct {
	nbins    int
	min, max float64
}

var _ Axis[float64] = (*Uniform)(nil)

// NewUniform creates a uniform axis. Reversed limits are swapped.
//
// Parameters:
//   - nbins: Number of regular bins, must be positive
//   - min, max: Axis limits, must be finite and distinct
//
// Returns:
//   - *Uniform: The axis
//   - error: ErrInvalidAxis for a non-positive bin count or degenerate limits
func NewUniform(nbins int, min, max float64) (*Uniform, error) {
	if nbins <= 0 {
		return nil, fmt.Errorf("%w: uniform axis needs nbins > 0, got %d", errs.ErrInvalidAxis, nbins)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: uniform axis limits must be finite, got [%g, %g)", errs.ErrInvalidAxis, min, max)
	}
	if min == max {
		return nil, fmt.Errorf("%w: uniform axis limits are equal (%g)", errs.ErrInvalidAxis, min)
	}
	if min > max {
		min, max = max, min
	}

	return &Uniform{nbins: nbins, min: min, max: max}, nil
}

// MustUniform is like NewUniform but panics on error.
func MustUniform(nbins int, min, max float64) *Uniform {
	u, err := NewUniform(nbins, min, max)
	if err != nil {
		panic(err)
	}

	return u
}

func (u *Uniform) NBins() int   { return u.nbins }
func (u *Uniform) NEdges() int  { return u.nbins + 1 }
func (u *Uniform) Min() float64 { return u.min }
func (u *Uniform) Max() float64 { return u.max }

// Edge returns min + i*(max-min)/nbins. The last edge is max exactly.
func (u *Uniform) Edge(i int) float64 {
	if i == u.nbins {
		return u.max
	}

	return u.min + float64(i)*(u.max-u.min)/float64(u.nbins)
}

func (u *Uniform) Lower(bin int) float64 { return u.Edge(bin - 1) }
func (u *Uniform) Upper(bin int) float64 { return u.Edge(bin) }

// FindBin returns the bin containing x. NaN lands in overflow.
func (u *Uniform) FindBin(x float64) int {
	if x < u.min {
		return 0
	}
	if !(x < u.max) {
		return u.nbins + 1
	}

	bin := int(float64(u.nbins)*(x-u.min)/(u.max-u.min)) + 1
	// rounding can push x just below max onto nbins+1
	if bin > u.nbins {
		bin = u.nbins
	}

	return bin
}

// ExactEdge returns the smallest float64 that FindBin places in bin i+1.
//
// Edge(i) is the nominal value and may disagree with FindBin by a few ulps.
// ExactEdge walks with math.Nextafter until both agree, which costs one
// FindBin per ulp of error. It is meant for reporting, not for the fill path.
// It panics if i is not in [0, NEdges()).
func (u *Uniform) ExactEdge(i int) float64 {
	if err := CheckEdgeErr(u, i); err != nil {
		panic(err)
	}

	x := u.Edge(i)
	want := i + 1

	if u.FindBin(x) < want {
		for u.FindBin(x) < want {
			x = math.Nextafter(x, math.Inf(1))
		}

		return x
	}

	for {
		below := math.Nextafter(x, math.Inf(-1))
		if u.FindBin(below) != want {
			return x
		}
		x = below
	}
}

// ExactLower returns ExactEdge(bin-1).
func (u *Uniform) ExactLower(bin int) float64 { return u.ExactEdge(bin - 1) }

// ExactUpper returns ExactEdge(bin).
func (u *Uniform) ExactUpper(bin int) float64 { return u.ExactEdge(bin) }

func (u *Uniform) String() string {
	return fmt.Sprintf("uniform(%d:%g:%g)", u.nbins, u.min, u.max)
}
