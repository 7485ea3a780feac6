package filler

import "github.com/hepkit/hbin/internal/num"

type numOps[B any] struct {
	inc   func(*B)
	add   func(*B, any) bool
	merge func(dst, src *B)
}

func numeric[B any, N num.Number]() numOps[B] {
	return numOps[B]{
		inc: func(b *B) { *any(b).(*N)++ },
		add: func(b *B, v any) bool {
			x, ok := num.Convert[N](v)
			if ok {
				*any(b).(*N) += x
			}

			return ok
		},
		merge: func(dst, src *B) { *any(dst).(*N) += *any(src).(*N) },
	}
}

// numericOps returns built-in arithmetic when B is an unnamed numeric type.
func numericOps[B any]() (numOps[B], bool) {
	switch any((*B)(nil)).(type) {
	case *int:
		return numeric[B, int](), true
	case *int8:
		return numeric[B, int8](), true
	case *int16:
		return numeric[B, int16](), true
	case *int32:
		return numeric[B, int32](), true
	case *int64:
		return numeric[B, int64](), true
	case *uint:
		return numeric[B, uint](), true
	case *uint8:
		return numeric[B, uint8](), true
	case *uint16:
		return numeric[B, uint16](), true
	case *uint32:
		return numeric[B, uint32](), true
	case *uint64:
		return numeric[B, uint64](), true
	case *float32:
		return numeric[B, float32](), true
	case *float64:
		return numeric[B, float64](), true
	}

	return numOps[B]{}, false
}
