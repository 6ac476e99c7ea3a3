package interp

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/token"
)

// ordinalCollator orders strings by Unicode collation under the root
// (undetermined) locale, with collate.Force breaking ties between
// strings that collate as equivalent but are not identical. This is the
// same golang.org/x/text/collate comparator the teacher's
// builtins.AnsiCompareStr uses, rather than Go's raw byte-wise "<".
var ordinalCollator = collate.New(language.Und, collate.Force)

// evalBinary implements spec §4.3's value-model table: arithmetic and
// comparison are defined only for specific operand-type pairs. Any other
// combination raises TypeError for arithmetic operators and
// IllegalComparison for relational ones (see compare).
func (i *Interpreter) evalBinary(n *ast.Binary) (Value, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Kind {
	case token.PLUS:
		if ln, ok := left.(NumberValue); ok {
			if rn, ok := right.(NumberValue); ok {
				return NumberValue{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(StringValue); ok {
			if rs, ok := right.(StringValue); ok {
				return StringValue{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, typeError(n.Operator, "operands must be two numbers or two strings")

	case token.MINUS:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, typeError(n.Operator, "operands must be numbers")
		}
		return NumberValue{Value: ln - rn}, nil

	case token.STAR:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, typeError(n.Operator, "operands must be numbers")
		}
		return NumberValue{Value: ln * rn}, nil

	case token.SLASH:
		ln, rn, ok := numberPair(left, right)
		if !ok {
			return nil, typeError(n.Operator, "operands must be numbers")
		}
		return NumberValue{Value: ln / rn}, nil

	case token.GREATER:
		return compare(left, right, n.Operator, func(c int) bool { return c > 0 })
	case token.GREATER_EQUAL:
		return compare(left, right, n.Operator, func(c int) bool { return c >= 0 })
	case token.LESS:
		return compare(left, right, n.Operator, func(c int) bool { return c < 0 })
	case token.LESS_EQUAL:
		return compare(left, right, n.Operator, func(c int) bool { return c <= 0 })

	case token.EQUAL_EQUAL:
		return BoolValue{Value: Equal(left, right)}, nil
	case token.BANG_EQUAL:
		return BoolValue{Value: !Equal(left, right)}, nil
	}
	panic("interp: unhandled binary operator " + n.Operator.Kind.String())
}

func numberPair(left, right Value) (float64, float64, bool) {
	ln, ok := left.(NumberValue)
	if !ok {
		return 0, 0, false
	}
	rn, ok := right.(NumberValue)
	if !ok {
		return 0, 0, false
	}
	return ln.Value, rn.Value, true
}

func typeError(op token.Token, message string) *RuntimeError {
	return runtimeErrorf(errors.TypeError, op.Line, "%s", message)
}

// compare implements relational ordering for spec §4.3's three ordered
// pairings (Num/Num, String/String, Bool/Bool, the last with false <
// true) per RustyLox's lox_type.rs PartialOrd; any other pairing is a
// runtime IllegalComparison.
func compare(left, right Value, op token.Token, ok func(int) bool) (Value, error) {
	switch lv := left.(type) {
	case NumberValue:
		rv, isNum := right.(NumberValue)
		if !isNum {
			return nil, illegalComparison(op, left, right)
		}
		return BoolValue{Value: ok(floatCompare(lv.Value, rv.Value))}, nil

	case StringValue:
		rv, isStr := right.(StringValue)
		if !isStr {
			return nil, illegalComparison(op, left, right)
		}
		return BoolValue{Value: ok(ordinalCollator.CompareString(lv.Value, rv.Value))}, nil

	case BoolValue:
		rv, isBool := right.(BoolValue)
		if !isBool {
			return nil, illegalComparison(op, left, right)
		}
		return BoolValue{Value: ok(boolCompare(lv.Value, rv.Value))}, nil

	default:
		return nil, illegalComparison(op, left, right)
	}
}

func floatCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// boolCompare orders false < true, per RustyLox's PartialOrd for Bool.
func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func illegalComparison(op token.Token, left, right Value) *RuntimeError {
	return runtimeErrorf(errors.IllegalComparison, op.Line,
		"cannot compare %s to %s", left.Type(), right.Type())
}
