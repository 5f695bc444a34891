package symbolic

import "math"

// harmonicEpsilon bounds the float comparison when matching multiples of pi.
const harmonicEpsilon = 1e-9

// SimplifyHarmonic simplifies an expression under the assumption that the
// named variable is a positive integer (a harmonic index). It rewrites
// sin(k*pi*n) to 0 and cos(k*pi*n) to 1 or (-1)**n depending on the parity
// of the integer k. Coefficient formulas produced by evaluating a Fourier
// integral at the interval endpoints are full of such terms.
func SimplifyHarmonic(e Expr, name string) Expr {
	return rewriteHarmonic(e, name).Simplify()
}

func rewriteHarmonic(e Expr, name string) Expr {
	switch v := e.(type) {
	case Add:
		terms := make([]Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = rewriteHarmonic(t, name)
		}
		return AddOf(terms...)
	case Mul:
		factors := make([]Expr, len(v.Factors))
		for i, f := range v.Factors {
			factors[i] = rewriteHarmonic(f, name)
		}
		return MulOf(factors...)
	case Pow:
		return PowOf(rewriteHarmonic(v.Base, name), rewriteHarmonic(v.Exp, name))
	case Call:
		arg := rewriteHarmonic(v.Arg, name)
		if k, ok := piMultiple(arg, name); ok {
			switch v.Name {
			case "sin":
				return N(0)
			case "cos":
				if k%2 == 0 {
					return N(1)
				}
				return PowOf(N(-1), S(name))
			}
		}
		return CallOf(v.Name, arg)
	}
	return e
}

// piMultiple matches arg against k*pi*n for integer k, returning |k|.
func piMultiple(arg Expr, name string) (int, bool) {
	c, ok := linearCoeff(arg, name)
	if !ok {
		return 0, false
	}
	v, ok := c.Eval(nil)
	if !ok {
		return 0, false
	}
	ratio := v / math.Pi
	k := math.Round(ratio)
	if math.Abs(ratio-k) > harmonicEpsilon {
		return 0, false
	}
	ki := int(k)
	if ki < 0 {
		ki = -ki
	}
	return ki, true
}
