package filler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hepkit/hbin/errs"
)

// Incrementer is a bin that counts entries.
type Incrementer interface{ Inc() }

// PostIncrementer is a bin that counts entries but only offers a post-increment.
type PostIncrementer interface{ PostInc() }

// Caller is a bin invoked with no arguments on every fill.
type Caller interface{ Call() }

// Adder is a bin that accumulates payload values of type T.
type Adder[T any] interface{ Add(T) }

// ArgCaller is a bin invoked with the whole payload.
type ArgCaller interface{ CallArgs(args ...any) }

// Rule identifies the update applied to a bin.
type Rule uint8

const (
	RuleNone Rule = iota
	RulePreIncrement
	RulePostIncrement
	RuleCall
	RuleAddAssign
	RuleCallArgs
)

func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "None"
	case RulePreIncrement:
		return "PreIncrement"
	case RulePostIncrement:
		return "PostIncrement"
	case RuleCall:
		return "Call"
	case RuleAddAssign:
		return "AddAssign"
	case RuleCallArgs:
		return "CallArgs"
	default:
		return "Unknown"
	}
}

// Table is the capability table of bin type B.
//
// A Table is not safe for concurrent use: resolved payload types are cached
// on first use.
type Table[B any] struct {
	binType  reflect.Type
	zero     Rule
	zeroFn   func(*B)
	adders   map[reflect.Type]func(*B, any)
	numAdd   func(*B, any) bool
	merge    func(dst, src *B)
	callArgs bool
	resolved map[reflect.Type]Rule
}

// For builds the capability table of B.
func For[B any]() *Table[B] {
	t := &Table[B]{
		binType:  reflect.TypeFor[B](),
		adders:   make(map[reflect.Type]func(*B, any)),
		resolved: make(map[reflect.Type]Rule),
	}

	p := any(new(B))
	ops, isNum := numericOps[B]()

	switch {
	case isNum:
		t.zero, t.zeroFn = RulePreIncrement, ops.inc
	case implements[Incrementer](p):
		t.zero, t.zeroFn = RulePreIncrement, func(b *B) { any(b).(Incrementer).Inc() }
	case implements[PostIncrementer](p):
		t.zero, t.zeroFn = RulePostIncrement, func(b *B) { any(b).(PostIncrementer).PostInc() }
	case implements[Caller](p):
		t.zero, t.zeroFn = RuleCall, func(b *B) { any(b).(Caller).Call() }
	default:
		if _, ok := p.(*func()); ok {
			t.zero, t.zeroFn = RuleCall, func(b *B) { (*any(b).(*func()))() }
		}
	}

	if isNum {
		t.numAdd = ops.add
		t.merge = ops.merge
	}

	_ = RegisterAdd[B, float64](t)
	_ = RegisterAdd[B, int](t)
	if RegisterAdd[B, B](t) == nil && t.merge == nil {
		t.merge = func(dst, src *B) { any(dst).(Adder[B]).Add(*src) }
	}

	t.callArgs = implements[ArgCaller](p)

	return t
}

func implements[I any](p any) bool {
	_, ok := p.(I)
	return ok
}

// RegisterAdd records that *B implements Adder[T], enabling rule 4 for
// payloads of type T.
//
// Returns:
//   - error: ErrNoFillRule if *B does not implement Adder[T]
func RegisterAdd[B, T any](t *Table[B]) error {
	if !implements[Adder[T]](any(new(B))) {
		return fmt.Errorf("%w: %s has no Add(%s)", errs.ErrNoFillRule, t.binType, reflect.TypeFor[T]())
	}

	t.adders[reflect.TypeFor[T]()] = func(b *B, v any) {
		any(b).(Adder[T]).Add(v.(T))
	}
	clear(t.resolved)

	return nil
}

// BinType returns the reflected bin type.
func (t *Table[B]) BinType() reflect.Type { return t.binType }

// ZeroRule returns the rule used for fills without payload.
func (t *Table[B]) ZeroRule() Rule { return t.zero }

// CanMerge reports whether two bins can be added together, which integration
// requires: B is a built-in number or *B implements Adder[B].
func (t *Table[B]) CanMerge() bool { return t.merge != nil }

// Merge adds src into dst.
//
// Returns:
//   - error: ErrNoFillRule when CanMerge is false
func (t *Table[B]) Merge(dst, src *B) error {
	if t.merge == nil {
		return fmt.Errorf("%w: %s cannot be added to itself", errs.ErrNoFillRule, t.binType)
	}
	t.merge(dst, src)

	return nil
}

// Check returns the rule a fill with the given payload would use.
//
// Returns:
//   - Rule: The selected rule
//   - error: ErrNoFillRule naming the bin and payload types when no rule applies
func (t *Table[B]) Check(args ...any) (Rule, error) {
	var rule Rule

	switch len(args) {
	case 0:
		rule = t.zero
	case 1:
		rule = t.resolve(args[0])
	default:
		if t.callArgs {
			rule = RuleCallArgs
		}
	}

	if rule == RuleNone {
		return RuleNone, t.noRule(args)
	}

	return rule, nil
}

func (t *Table[B]) resolve(arg any) Rule {
	typ := reflect.TypeOf(arg)
	if rule, ok := t.resolved[typ]; ok {
		return rule
	}

	rule := RuleNone
	if _, ok := t.adders[typ]; ok {
		rule = RuleAddAssign
	} else if t.numAdd != nil && isNumeric(typ) {
		rule = RuleAddAssign
	} else if t.callArgs {
		rule = RuleCallArgs
	}
	t.resolved[typ] = rule

	return rule
}

// Fill applies the selected rule to bin.
//
// Returns:
//   - error: ErrNoFillRule when no rule applies; bin is left untouched
func (t *Table[B]) Fill(bin *B, args ...any) error {
	switch len(args) {
	case 0:
		if t.zeroFn == nil {
			return t.noRule(args)
		}
		t.zeroFn(bin)

		return nil
	case 1:
		switch t.resolve(args[0]) {
		case RuleAddAssign:
			if add, ok := t.adders[reflect.TypeOf(args[0])]; ok {
				add(bin, args[0])
			} else {
				t.numAdd(bin, args[0])
			}

			return nil
		case RuleCallArgs:
			any(bin).(ArgCaller).CallArgs(args...)
			return nil
		}

		return t.noRule(args)
	}

	if !t.callArgs {
		return t.noRule(args)
	}
	any(bin).(ArgCaller).CallArgs(args...)

	return nil
}

func (t *Table[B]) noRule(args []any) error {
	types := make([]string, len(args))
	for i, a := range args {
		types[i] = fmt.Sprintf("%T", a)
	}

	return fmt.Errorf("%w: %s with payload (%s)", errs.ErrNoFillRule, t.binType, strings.Join(types, ", "))
}

// isNumeric reports whether typ is an unnamed built-in number, which is what
// num.Convert accepts.
func isNumeric(typ reflect.Type) bool {
	if typ == nil || typ.PkgPath() != "" {
		return false
	}

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}
