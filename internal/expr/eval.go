package expr

import "math"

// evalNum evaluates a numeric node at x. Domain violations (log of a
// negative number, division by zero) surface as NaN or Inf rather than
// errors; callers decide how to treat non-finite samples.
func evalNum(n node, x float64) float64 {
	switch v := n.(type) {
	case numNode:
		return v.v
	case varNode:
		switch v.name {
		case "x":
			return x
		case "pi":
			return math.Pi
		case "e":
			return math.E
		}
		return math.NaN()
	case callNode:
		return applyFunc(v.fn, evalNum(v.arg, x))
	case negNode:
		return -evalNum(v.operand, x)
	case binNode:
		lhs := evalNum(v.lhs, x)
		rhs := evalNum(v.rhs, x)
		switch v.op {
		case tokPlus:
			return lhs + rhs
		case tokMinus:
			return lhs - rhs
		case tokStar:
			return lhs * rhs
		case tokSlash:
			return lhs / rhs
		case tokPercent:
			return pythonMod(lhs, rhs)
		case tokPower:
			return math.Pow(lhs, rhs)
		}
		return math.NaN()
	case condNode:
		if evalBool(v.cond, x) {
			return evalNum(v.then, x)
		}
		return evalNum(v.els, x)
	}
	return math.NaN()
}

func evalBool(n node, x float64) bool {
	switch v := n.(type) {
	case cmpNode:
		lhs := evalNum(v.lhs, x)
		rhs := evalNum(v.rhs, x)
		switch v.op {
		case tokLess:
			return lhs < rhs
		case tokGreater:
			return lhs > rhs
		case tokLessEq:
			return lhs <= rhs
		case tokGreaterEq:
			return lhs >= rhs
		case tokEq:
			return lhs == rhs
		case tokNotEq:
			return lhs != rhs
		}
		return false
	case logicNode:
		if v.op == tokAnd {
			return evalBool(v.lhs, x) && evalBool(v.rhs, x)
		}
		return evalBool(v.lhs, x) || evalBool(v.rhs, x)
	case notNode:
		return !evalBool(v.operand, x)
	}
	return false
}

// pythonMod matches Python's % semantics: the result takes the sign of
// the divisor. Periodic wrap expressions like "x % (2*pi)" rely on this.
func pythonMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func applyFunc(name string, arg float64) float64 {
	switch name {
	case "sin":
		return math.Sin(arg)
	case "cos":
		return math.Cos(arg)
	case "tan":
		return math.Tan(arg)
	case "asin":
		return math.Asin(arg)
	case "acos":
		return math.Acos(arg)
	case "atan":
		return math.Atan(arg)
	case "sinh":
		return math.Sinh(arg)
	case "cosh":
		return math.Cosh(arg)
	case "tanh":
		return math.Tanh(arg)
	case "exp":
		return math.Exp(arg)
	case "log":
		return math.Log(arg)
	case "log10":
		return math.Log10(arg)
	case "sqrt":
		return math.Sqrt(arg)
	case "abs":
		return math.Abs(arg)
	case "floor":
		return math.Floor(arg)
	case "ceil":
		return math.Ceil(arg)
	case "sign":
		switch {
		case arg > 0:
			return 1
		case arg < 0:
			return -1
		}
		return 0
	}
	return math.NaN()
}
