package interp

import (
	"math"
	"strconv"
)

// Value is a runtime value. Every concrete type carries its own Type name
// and display form, mirroring the teacher's runtime.Value: a small closed
// interface over concrete structs rather than interface{}.
type Value interface {
	Type() string
	String() string
}

// NilValue is the single nil value; all instances compare equal.
type NilValue struct{}

func (NilValue) Type() string   { return "NIL" }
func (NilValue) String() string { return "nil" }

// Nil is the canonical Lox nil value.
var Nil = NilValue{}

// BoolValue is a boolean.
type BoolValue struct{ Value bool }

func (b BoolValue) Type() string { return "BOOL" }
func (b BoolValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NumberValue is a double-precision float, the only numeric type Lox has.
type NumberValue struct{ Value float64 }

func (n NumberValue) Type() string { return "NUMBER" }

// String formats the number per spec §4.3 Display: integral values print
// without a trailing ".0", matching RustyLox's lox_type.rs fract()==0.0
// check.
func (n NumberValue) String() string {
	if !math.IsInf(n.Value, 0) && !math.IsNaN(n.Value) && n.Value == math.Trunc(n.Value) {
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringValue is a Lox string.
type StringValue struct{ Value string }

func (s StringValue) Type() string   { return "STRING" }
func (s StringValue) String() string { return s.Value }

// Truthy implements Lox's truthiness rule: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return t.Value
	default:
		return true
	}
}

// Equal implements Lox's "==" per spec §4.3: nil==nil is true, differing
// kinds are never equal, and numeric equality follows IEEE 754 (so
// NaN != NaN).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Value == bv.Value
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.Value == bv.Value
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}
