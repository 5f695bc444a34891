package symbolic

import "math"

// Integrate returns an antiderivative of e with respect to the named
// variable. The second return is false when no rule applies; callers are
// expected to fall back to numeric quadrature in that case.
//
// Supported forms:
//   - constants and expressions free of the variable
//   - x**m for constant m (including m = -1)
//   - sums and constant multiples of integrable expressions
//   - sin(a*x), cos(a*x), exp(a*x) with a free of x
//   - x**m * sin(a*x), x**m * cos(a*x), x**m * exp(a*x) for integer m >= 0,
//     reduced by repeated integration by parts
//
// The coefficient a may itself be symbolic (for example n*pi/L with n a
// free harmonic index), which is what makes general-term coefficient
// formulas possible.
func Integrate(e Expr, name string) (Expr, bool) {
	e = e.Simplify()

	if FreeOf(e, name) {
		return MulOf(e, S(name)), true
	}

	switch v := e.(type) {
	case Sym:
		// v.Name == name, otherwise FreeOf would have matched.
		return MulOf(N(0.5), PowOf(S(name), N(2))), true

	case Pow:
		if b, ok := v.Base.(Sym); ok && b.Name == name {
			if m, ok := v.Exp.(Num); ok && FreeOf(v.Exp, name) {
				if m.V == -1 {
					return CallOf("log", CallOf("abs", S(name))), true
				}
				return MulOf(N(1/(m.V+1)), PowOf(S(name), N(m.V+1))), true
			}
		}
		return nil, false

	case Add:
		terms := make([]Expr, len(v.Terms))
		for i, t := range v.Terms {
			it, ok := Integrate(t, name)
			if !ok {
				return nil, false
			}
			terms[i] = it
		}
		return AddOf(terms...), true

	case Mul:
		return integrateProduct(v, name)

	case Call:
		if a, ok := linearCoeff(v.Arg, name); ok {
			return integratePolyCall(0, a, v.Name, name)
		}
		return nil, false
	}

	return nil, false
}

// integrateProduct handles products: it peels off factors free of the
// variable, then matches the remainder against x**m * f(a*x).
func integrateProduct(m Mul, name string) (Expr, bool) {
	var free, dep []Expr
	for _, f := range m.Factors {
		if FreeOf(f, name) {
			free = append(free, f)
		} else {
			dep = append(dep, f)
		}
	}
	if len(dep) == 0 {
		return MulOf(MulOf(free...), S(name)), true
	}

	var inner Expr
	if len(dep) == 1 {
		inner = dep[0]
	} else {
		inner = Mul{Factors: dep}.Simplify()
	}

	var integral Expr
	var ok bool
	if len(dep) == 1 {
		integral, ok = Integrate(inner, name)
		if !ok {
			integral, ok = integratePolyProduct(dep, name)
		}
	} else {
		integral, ok = integratePolyProduct(dep, name)
	}
	if !ok {
		return nil, false
	}
	if len(free) == 0 {
		return integral, true
	}
	return MulOf(append(free, integral)...), true
}

// integratePolyProduct matches dep against x**m * f(a*x) with f one of
// sin, cos, exp and applies the by-parts reduction.
func integratePolyProduct(dep []Expr, name string) (Expr, bool) {
	if len(dep) != 2 {
		return nil, false
	}
	for i := range 2 {
		power, call := dep[i], dep[1-i]
		m, ok := monomialDegree(power, name)
		if !ok {
			continue
		}
		c, ok := call.(Call)
		if !ok {
			continue
		}
		a, ok := linearCoeff(c.Arg, name)
		if !ok {
			continue
		}
		return integratePolyCall(m, a, c.Name, name)
	}
	return nil, false
}

// monomialDegree reports the degree of e when e is x or x**m for a
// non-negative integer m.
func monomialDegree(e Expr, name string) (int, bool) {
	if s, ok := e.(Sym); ok && s.Name == name {
		return 1, true
	}
	if p, ok := e.(Pow); ok {
		b, okB := p.Base.(Sym)
		ex, okE := p.Exp.(Num)
		if okB && okE && b.Name == name && ex.V >= 0 && ex.V == math.Trunc(ex.V) {
			return int(ex.V), true
		}
	}
	return 0, false
}

// linearCoeff matches arg against a*x with a free of x, returning a.
// A bare x yields a = 1.
func linearCoeff(arg Expr, name string) (Expr, bool) {
	if s, ok := arg.(Sym); ok && s.Name == name {
		return N(1), true
	}
	m, ok := arg.(Mul)
	if !ok {
		return nil, false
	}
	var coeff []Expr
	varSeen := false
	for _, f := range m.Factors {
		if s, ok := f.(Sym); ok && s.Name == name {
			if varSeen {
				return nil, false
			}
			varSeen = true
			continue
		}
		if !FreeOf(f, name) {
			return nil, false
		}
		coeff = append(coeff, f)
	}
	if !varSeen {
		return nil, false
	}
	return MulOf(coeff...), true
}

// integratePolyCall computes the antiderivative of x**m * fn(a*x) by
// recursive integration by parts. invA is built symbolically so that a
// may contain free variables such as the harmonic index.
func integratePolyCall(m int, a Expr, fn, name string) (Expr, bool) {
	x := S(name)
	arg := MulOf(a, x)
	invA := PowOf(a, N(-1))

	xm := func(k int) Expr {
		switch k {
		case 0:
			return N(1)
		case 1:
			return x
		default:
			return PowOf(x, N(float64(k)))
		}
	}

	switch fn {
	case "sin":
		// ∫ x^m sin(ax) dx = -x^m cos(ax)/a + (m/a) ∫ x^(m-1) cos(ax) dx
		head := MulOf(N(-1), xm(m), CallOf("cos", arg), invA)
		if m == 0 {
			return head, true
		}
		rest, ok := integratePolyCall(m-1, a, "cos", name)
		if !ok {
			return nil, false
		}
		return AddOf(head, MulOf(N(float64(m)), invA, rest)), true

	case "cos":
		// ∫ x^m cos(ax) dx = x^m sin(ax)/a - (m/a) ∫ x^(m-1) sin(ax) dx
		head := MulOf(xm(m), CallOf("sin", arg), invA)
		if m == 0 {
			return head, true
		}
		rest, ok := integratePolyCall(m-1, a, "sin", name)
		if !ok {
			return nil, false
		}
		return AddOf(head, MulOf(N(float64(-m)), invA, rest)), true

	case "exp":
		// ∫ x^m exp(ax) dx = x^m exp(ax)/a - (m/a) ∫ x^(m-1) exp(ax) dx
		head := MulOf(xm(m), CallOf("exp", arg), invA)
		if m == 0 {
			return head, true
		}
		rest, ok := integratePolyCall(m-1, a, "exp", name)
		if !ok {
			return nil, false
		}
		return AddOf(head, MulOf(N(float64(-m)), invA, rest)), true
	}

	return nil, false
}

// DefiniteIntegral evaluates the integral of e over [a, b] using a
// closed-form antiderivative. The second return is false when no
// antiderivative is found or its evaluation is not finite.
func DefiniteIntegral(e Expr, name string, a, b float64) (float64, bool) {
	antideriv, ok := Integrate(e, name)
	if !ok {
		return 0, false
	}
	upper, ok := antideriv.Sub(name, N(b)).Eval(nil)
	if !ok {
		return 0, false
	}
	lower, ok := antideriv.Sub(name, N(a)).Eval(nil)
	if !ok {
		return 0, false
	}
	v := upper - lower
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
