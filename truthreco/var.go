// Package truthreco pairs a detector-level value with its generator-level
// (truth) counterpart.
//
// Whether truth is available travels with the value itself, so derived
// quantities computed on data carry no truth and quantities computed on
// simulation carry both, without any process-wide switch.
package truthreco

import (
	"fmt"

	"github.com/hepkit/hbin/internal/num"
)

// Var is a detector value with an optional truth value.
// Truth is the zero value whenever HasTruth is false.
type Var[T any] struct {
	Det      T
	Truth    T
	HasTruth bool
}

// Reco returns a Var without truth.
func Reco[T any](det T) Var[T] {
	return Var[T]{Det: det}
}

// Pair returns a Var with both values.
func Pair[T any](det, truth T) Var[T] {
	return Var[T]{Det: det, Truth: truth, HasTruth: true}
}

// Map applies f to the detector value, and to the truth value when present.
func Map[T, U any](v Var[T], f func(T) U) Var[U] {
	return MapPair(v, f, f)
}

// MapPair applies det to the detector value and truth to the truth value when
// present.
func MapPair[T, U any](v Var[T], det func(T) U, truth func(T) U) Var[U] {
	out := Var[U]{Det: det(v.Det), HasTruth: v.HasTruth}
	if v.HasTruth {
		out.Truth = truth(v.Truth)
	}

	return out
}

// Combine applies f pairwise. The result has truth only if both inputs have.
func Combine[T, U, R any](a Var[T], b Var[U], f func(T, U) R) Var[R] {
	out := Var[R]{Det: f(a.Det, b.Det), HasTruth: a.HasTruth && b.HasTruth}
	if out.HasTruth {
		out.Truth = f(a.Truth, b.Truth)
	}

	return out
}

// With applies f with a plain operand on both sides.
func With[T, U, R any](a Var[T], x U, f func(T, U) R) Var[R] {
	return Map(a, func(v T) R { return f(v, x) })
}

// Values returns the values to fill for this Var: the detector value alone,
// or both when truth is present.
func (v Var[T]) Values() []T {
	if !v.HasTruth {
		return []T{v.Det}
	}

	return []T{v.Det, v.Truth}
}

func (v Var[T]) String() string {
	if !v.HasTruth {
		return fmt.Sprintf("{det: %v}", v.Det)
	}

	return fmt.Sprintf("{det: %v, truth: %v}", v.Det, v.Truth)
}

// Add returns a+b.
func Add[T num.Number](a, b Var[T]) Var[T] { return Combine(a, b, func(x, y T) T { return x + y }) }

// Sub returns a-b.
func Sub[T num.Number](a, b Var[T]) Var[T] { return Combine(a, b, func(x, y T) T { return x - y }) }

// Mul returns a*b.
func Mul[T num.Number](a, b Var[T]) Var[T] { return Combine(a, b, func(x, y T) T { return x * y }) }

// Div returns a/b.
func Div[T num.Number](a, b Var[T]) Var[T] { return Combine(a, b, func(x, y T) T { return x / y }) }

// Less returns the pairwise a<b.
func Less[T num.Number](a, b Var[T]) Var[bool] {
	return Combine(a, b, func(x, y T) bool { return x < y })
}

// Abs returns |v| on both sides.
func Abs[T num.Number](v Var[T]) Var[T] {
	return Map(v, func(x T) T {
		if x < 0 {
			return -x
		}

		return x
	})
}

// Scale multiplies both sides by k.
func Scale[T num.Number](v Var[T], k T) Var[T] {
	return With(v, k, func(x, y T) T { return x * y })
}

// Pass reports whether the detector value of a boolean Var is true.
func (v Var[T]) Pass() bool {
	b, ok := any(v.Det).(bool)
	return ok && b
}
