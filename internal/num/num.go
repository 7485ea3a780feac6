// Package num holds the numeric constraint and the dynamic conversion shared by
// axis coordinates and numeric bin payloads.
package num

// Number is the set of Go integer and floating-point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Convert converts a value of any built-in numeric kind to N.
// It reports false for anything else, including bool and nil.
func Convert[N Number](x any) (N, bool) {
	switch v := x.(type) {
	case N:
		return v, true
	case float64:
		return N(v), true
	case float32:
		return N(v), true
	case int:
		return N(v), true
	case int8:
		return N(v), true
	case int16:
		return N(v), true
	case int32:
		return N(v), true
	case int64:
		return N(v), true
	case uint:
		return N(v), true
	case uint8:
		return N(v), true
	case uint16:
		return N(v), true
	case uint32:
		return N(v), true
	case uint64:
		return N(v), true
	case uintptr:
		return N(v), true
	}

	var zero N

	return zero, false
}
