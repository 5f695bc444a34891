// Package symbolic implements a small rule-based symbolic math kernel used
// for closed-form integration of Fourier coefficient integrands.
//
// The kernel is deliberately minimal: expressions are built from numbers,
// variables, sums, products, powers, and a fixed set of elementary
// functions. Simplification is rule-based, not canonical, and integration
// is pattern-based. Anything the integrator cannot handle is reported via
// the ok return value so callers can fall back to numeric quadrature.
package symbolic

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Expr is a symbolic expression node. Implementations are immutable;
// all operations return new expressions.
type Expr interface {
	// Simplify returns a simplified form of the expression.
	Simplify() Expr

	// String renders the expression in the library's input syntax.
	String() string

	// Sub substitutes value for every occurrence of the named variable.
	Sub(name string, value Expr) Expr

	// Eval evaluates the expression with the given variable bindings.
	// The second return is false if a free variable remains unbound.
	Eval(vars map[string]float64) (float64, bool)
}

// Num is a floating-point constant.
type Num struct{ V float64 }

// Sym is a free variable.
type Sym struct{ Name string }

// Add is a sum of terms.
type Add struct{ Terms []Expr }

// Mul is a product of factors.
type Mul struct{ Factors []Expr }

// Pow is Base raised to Exp.
type Pow struct{ Base, Exp Expr }

// Call applies a named elementary function to its argument.
type Call struct {
	Name string
	Arg  Expr
}

// Constructors. Each folds constants and normalizes trivial cases so that
// built expressions are already partially simplified.

func N(v float64) Expr   { return Num{V: v} }
func S(name string) Expr { return Sym{Name: name} }

func AddOf(terms ...Expr) Expr {
	return Add{Terms: terms}.Simplify()
}
func MulOf(factors ...Expr) Expr {
	return Mul{Factors: factors}.Simplify()
}
func PowOf(base, exp Expr) Expr {
	return Pow{Base: base, Exp: exp}.Simplify()
}
func CallOf(name string, arg Expr) Expr {
	return Call{Name: name, Arg: arg}.Simplify()
}

// Neg returns -e.
func Neg(e Expr) Expr { return MulOf(N(-1), e) }

// callTable maps function names to their float implementations.
var callTable = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"log":   math.Log,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"sign": func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	},
}

// KnownFunc reports whether name is one of the supported elementary functions.
func KnownFunc(name string) bool {
	_, ok := callTable[name]
	return ok
}

// ---------- Num ----------

func (n Num) Simplify() Expr        { return n }
func (n Num) Sub(string, Expr) Expr { return n }
func (n Num) Eval(map[string]float64) (float64, bool) {
	return n.V, true
}

func (n Num) String() string {
	if n.V < 0 {
		return "(" + strconv.FormatFloat(n.V, 'g', 10, 64) + ")"
	}
	return strconv.FormatFloat(n.V, 'g', 10, 64)
}

// ---------- Sym ----------

func (s Sym) Simplify() Expr { return s }
func (s Sym) String() string { return s.Name }

func (s Sym) Sub(name string, value Expr) Expr {
	if s.Name == name {
		return value
	}
	return s
}

func (s Sym) Eval(vars map[string]float64) (float64, bool) {
	v, ok := vars[s.Name]
	return v, ok
}

// ---------- Add ----------

func (a Add) Simplify() Expr {
	var flat []Expr
	sum := 0.0
	for _, t := range a.Terms {
		t = t.Simplify()
		switch v := t.(type) {
		case Add:
			flat = append(flat, v.Terms...)
		case Num:
			sum += v.V
		default:
			flat = append(flat, t)
		}
	}
	if sum != 0 {
		flat = append(flat, Num{V: sum})
	}
	switch len(flat) {
	case 0:
		return Num{V: 0}
	case 1:
		return flat[0]
	}
	// Stable ordering keeps output deterministic.
	sort.SliceStable(flat, func(i, j int) bool {
		return exprOrder(flat[i]) < exprOrder(flat[j])
	})
	return Add{Terms: flat}
}

func (a Add) String() string {
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func (a Add) Sub(name string, value Expr) Expr {
	terms := make([]Expr, len(a.Terms))
	for i, t := range a.Terms {
		terms[i] = t.Sub(name, value)
	}
	return AddOf(terms...)
}

func (a Add) Eval(vars map[string]float64) (float64, bool) {
	sum := 0.0
	for _, t := range a.Terms {
		v, ok := t.Eval(vars)
		if !ok {
			return 0, false
		}
		sum += v
	}
	return sum, true
}

// ---------- Mul ----------

func (m Mul) Simplify() Expr {
	var flat []Expr
	coeff := 1.0
	for _, f := range m.Factors {
		f = f.Simplify()
		switch v := f.(type) {
		case Mul:
			for _, inner := range v.Factors {
				if n, ok := inner.(Num); ok {
					coeff *= n.V
				} else {
					flat = append(flat, inner)
				}
			}
		case Num:
			coeff *= v.V
		default:
			flat = append(flat, f)
		}
	}
	if coeff == 0 {
		return Num{V: 0}
	}
	if coeff != 1 {
		flat = append([]Expr{Num{V: coeff}}, flat...)
	}
	switch len(flat) {
	case 0:
		return Num{V: 1}
	case 1:
		return flat[0]
	}
	return Mul{Factors: flat}
}

func (m Mul) String() string {
	parts := make([]string, len(m.Factors))
	for i, f := range m.Factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, "*")
}

func (m Mul) Sub(name string, value Expr) Expr {
	factors := make([]Expr, len(m.Factors))
	for i, f := range m.Factors {
		factors[i] = f.Sub(name, value)
	}
	return MulOf(factors...)
}

func (m Mul) Eval(vars map[string]float64) (float64, bool) {
	prod := 1.0
	for _, f := range m.Factors {
		v, ok := f.Eval(vars)
		if !ok {
			return 0, false
		}
		prod *= v
	}
	return prod, true
}

// ---------- Pow ----------

func (p Pow) Simplify() Expr {
	base := p.Base.Simplify()
	exp := p.Exp.Simplify()
	if e, ok := exp.(Num); ok {
		if e.V == 0 {
			return Num{V: 1}
		}
		if e.V == 1 {
			return base
		}
		if b, ok2 := base.(Num); ok2 {
			return Num{V: math.Pow(b.V, e.V)}
		}
	}
	return Pow{Base: base, Exp: exp}
}

func (p Pow) String() string {
	return p.Base.String() + "**" + p.Exp.String()
}

func (p Pow) Sub(name string, value Expr) Expr {
	return PowOf(p.Base.Sub(name, value), p.Exp.Sub(name, value))
}

func (p Pow) Eval(vars map[string]float64) (float64, bool) {
	b, ok := p.Base.Eval(vars)
	if !ok {
		return 0, false
	}
	e, ok := p.Exp.Eval(vars)
	if !ok {
		return 0, false
	}
	return math.Pow(b, e), true
}

// ---------- Call ----------

func (c Call) Simplify() Expr {
	arg := c.Arg.Simplify()
	if n, ok := arg.(Num); ok {
		if fn, known := callTable[c.Name]; known {
			return Num{V: fn(n.V)}
		}
	}
	return Call{Name: c.Name, Arg: arg}
}

func (c Call) String() string {
	return c.Name + "(" + c.Arg.String() + ")"
}

func (c Call) Sub(name string, value Expr) Expr {
	return CallOf(c.Name, c.Arg.Sub(name, value))
}

func (c Call) Eval(vars map[string]float64) (float64, bool) {
	v, ok := c.Arg.Eval(vars)
	if !ok {
		return 0, false
	}
	fn, known := callTable[c.Name]
	if !known {
		return 0, false
	}
	return fn(v), true
}

// FreeOf reports whether e contains no occurrence of the named variable.
func FreeOf(e Expr, name string) bool {
	switch v := e.(type) {
	case Num:
		return true
	case Sym:
		return v.Name != name
	case Add:
		for _, t := range v.Terms {
			if !FreeOf(t, name) {
				return false
			}
		}
		return true
	case Mul:
		for _, f := range v.Factors {
			if !FreeOf(f, name) {
				return false
			}
		}
		return true
	case Pow:
		return FreeOf(v.Base, name) && FreeOf(v.Exp, name)
	case Call:
		return FreeOf(v.Arg, name)
	}
	return false
}

// exprOrder assigns a sort key: numbers first, then by rendered form.
func exprOrder(e Expr) string {
	if _, ok := e.(Num); ok {
		return "\x00"
	}
	return e.String()
}
