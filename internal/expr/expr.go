// Package expr parses user-supplied function expressions into a dual
// representation: a compiled numeric evaluator (always available) and a
// symbolic form (present only when the expression stays inside the
// pure-math subset of the grammar).
//
// The grammar is a fixed whitelist: arithmetic, exponentiation, modulo,
// a closed set of math functions, the constants pi and e, the variable x,
// comparisons, boolean connectives, and the Python-style conditional
// "<value> if <cond> else <value>". No other names or constructs parse,
// so evaluation is sandboxed ahead of time rather than at runtime.
package expr

import (
	"math"
	"strings"

	"github.com/tphakala/go-fourier/internal/symbolic"
)

// Representation tags how a Function can be used by downstream code.
type Representation int

const (
	// Symbolic means a symbolic form is available for closed-form
	// integration in addition to the numeric evaluator.
	Symbolic Representation = iota

	// NumericOnly means only the numeric evaluator is available and all
	// integration must use quadrature.
	NumericOnly
)

// Function is an immutable parsed expression. The numeric evaluator is
// always usable; the symbolic form may be absent.
type Function struct {
	text string
	repr Representation
	sym  symbolic.Expr // nil when repr == NumericOnly
	root node
}

// idioms maps whitespace-normalized conditional expressions onto
// equivalent closed forms. An idiom match replaces the expression
// entirely, restoring the symbolic route for common step functions.
var idioms = map[string]string{
	"1ifx>0else-1": "sign(x)",
}

// Normalize strips all whitespace from an expression, the form used for
// idiom and known-series lookups.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), "")
}

// Parse builds a Function from expression text. The returned error is a
// *SyntaxError when neither the symbolic route nor the sandboxed
// conditional grammar can interpret the text.
func Parse(text string) (*Function, error) {
	source := text
	if repl, ok := idioms[Normalize(text)]; ok {
		source = repl
	}

	root, err := parse(source)
	if err != nil {
		return nil, err
	}

	f := &Function{text: text, root: root}
	if sym, ok := toSymbolic(root); ok {
		f.repr = Symbolic
		f.sym = sym
	} else {
		f.repr = NumericOnly
	}
	return f, nil
}

// Text returns the original expression text.
func (f *Function) Text() string { return f.text }

// Kind returns the representation tag.
func (f *Function) Kind() Representation { return f.repr }

// Symbolic returns the symbolic form when available.
func (f *Function) Symbolic() (symbolic.Expr, bool) {
	if f.repr != Symbolic {
		return nil, false
	}
	return f.sym, true
}

// Evaluate computes f at a single point. The result may be NaN or Inf
// for domain violations; it never panics.
func (f *Function) Evaluate(x float64) float64 {
	return evalNum(f.root, x)
}

// EvaluateVector computes f element-wise over xs. Non-finite samples are
// replaced with 0 and counted, so one bad point never aborts a bulk
// evaluation. The returned count is the number of replaced samples.
func (f *Function) EvaluateVector(xs []float64) ([]float64, int) {
	out := make([]float64, len(xs))
	failed := 0
	for i, x := range xs {
		v := evalNum(f.root, x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = 0
			failed++
			continue
		}
		out[i] = v
	}
	return out, failed
}
