package expr

import (
	"math"

	"github.com/tphakala/go-fourier/internal/symbolic"
)

// toSymbolic converts a pure-math AST into a symbolic expression. It
// fails on conditionals, comparisons, and modulo, which have no
// closed-form counterpart in the symbolic kernel.
func toSymbolic(n node) (symbolic.Expr, bool) {
	switch v := n.(type) {
	case numNode:
		return symbolic.N(v.v), true
	case varNode:
		switch v.name {
		case "x":
			return symbolic.S("x"), true
		case "pi":
			return symbolic.N(math.Pi), true
		case "e":
			return symbolic.N(math.E), true
		}
		return nil, false
	case callNode:
		arg, ok := toSymbolic(v.arg)
		if !ok {
			return nil, false
		}
		return symbolic.CallOf(v.fn, arg), true
	case negNode:
		operand, ok := toSymbolic(v.operand)
		if !ok {
			return nil, false
		}
		return symbolic.Neg(operand), true
	case binNode:
		lhs, ok := toSymbolic(v.lhs)
		if !ok {
			return nil, false
		}
		rhs, ok := toSymbolic(v.rhs)
		if !ok {
			return nil, false
		}
		switch v.op {
		case tokPlus:
			return symbolic.AddOf(lhs, rhs), true
		case tokMinus:
			return symbolic.AddOf(lhs, symbolic.Neg(rhs)), true
		case tokStar:
			return symbolic.MulOf(lhs, rhs), true
		case tokSlash:
			return symbolic.MulOf(lhs, symbolic.PowOf(rhs, symbolic.N(-1))), true
		case tokPower:
			return symbolic.PowOf(lhs, rhs), true
		}
		return nil, false
	}
	return nil, false
}
