package fourier

import (
	"math"

	"github.com/tphakala/go-fourier/internal/expr"
	"github.com/tphakala/go-fourier/internal/symbolic"
)

// knownSeries is one closed-form entry in the catalog. When an entry
// matches, all coefficients come from direct formulas with no
// integration at all, which also makes the catalog a correctness oracle
// for the general computation path.
type knownSeries struct {
	name string

	// unitHalfPeriod restricts the entry to L = pi. sin(x) and cos(x)
	// are harmonics of the basis only at that half-period; matching them
	// for other periods would return wrong coefficients.
	unitHalfPeriod bool

	a0 func(L float64) float64
	an func(n int, L float64) float64
	bn func(n int, L float64) float64

	// anFormula/bnFormula build the general-term formula in the
	// variable n, when one exists.
	anFormula func(L float64) symbolic.Expr
	bnFormula func(L float64) symbolic.Expr
}

func zeroCoeff(int, float64) float64 { return 0 }

func zeroFormula(float64) symbolic.Expr { return symbolic.N(0) }

// catalog maps whitespace-normalized expression text to closed-form
// series. Matching is deliberately literal: "1*sin(x)" does not match
// "sin(x)". Broadening this to semantic equivalence would change which
// inputs take the shortcut, so the narrow behavior is kept.
var catalog = map[string]knownSeries{
	"sin(x)": {
		name:           "sine",
		unitHalfPeriod: true,
		a0:             func(float64) float64 { return 0 },
		an:             zeroCoeff,
		bn: func(n int, _ float64) float64 {
			if n == 1 {
				return 1
			}
			return 0
		},
		anFormula: zeroFormula,
	},
	"cos(x)": {
		name:           "cosine",
		unitHalfPeriod: true,
		a0:             func(float64) float64 { return 0 },
		an: func(n int, _ float64) float64 {
			if n == 1 {
				return 1
			}
			return 0
		},
		bn:        zeroCoeff,
		bnFormula: zeroFormula,
	},
	"abs(x)": {
		name: "absolute value",
		a0:   func(L float64) float64 { return L },
		an: func(n int, L float64) float64 {
			if n%2 == 0 {
				return 0
			}
			return -4 * L / (math.Pi * math.Pi * float64(n) * float64(n))
		},
		bn: zeroCoeff,
		anFormula: func(L float64) symbolic.Expr {
			// 2L((-1)^n - 1) / (pi^2 n^2): zero for even n, -4L/(pi n)^2
			// for odd n.
			n := symbolic.S("n")
			return symbolic.MulOf(
				symbolic.N(2*L/(math.Pi*math.Pi)),
				symbolic.AddOf(symbolic.PowOf(symbolic.N(-1), n), symbolic.N(-1)),
				symbolic.PowOf(n, symbolic.N(-2)),
			)
		},
		bnFormula: zeroFormula,
	},
	"x**2": {
		name: "parabola",
		a0:   func(L float64) float64 { return 2 * L * L / 3 },
		an: func(n int, L float64) float64 {
			sign := 1.0
			if n%2 == 1 {
				sign = -1
			}
			return 4 * L * L * sign / (math.Pi * math.Pi * float64(n) * float64(n))
		},
		bn: zeroCoeff,
		anFormula: func(L float64) symbolic.Expr {
			n := symbolic.S("n")
			return symbolic.MulOf(
				symbolic.N(4*L*L/(math.Pi*math.Pi)),
				symbolic.PowOf(symbolic.N(-1), n),
				symbolic.PowOf(n, symbolic.N(-2)),
			)
		},
		bnFormula: zeroFormula,
	},
}

// lookupKnownSeries returns the catalog entry matching the normalized
// expression text at the given half-period, if any.
func lookupKnownSeries(text string, L float64) (knownSeries, bool) {
	entry, ok := catalog[expr.Normalize(text)]
	if !ok {
		return knownSeries{}, false
	}
	if entry.unitHalfPeriod && math.Abs(L-math.Pi) > 1e-12 {
		return knownSeries{}, false
	}
	return entry, true
}
