// Package fourier computes trigonometric series expansions of periodic
// functions given as text expressions, in pure Go.
//
// A function such as "x**2", "sin(x) + 0.5*sin(3*x)", or the conditional
// "1 if x > 0 else -1" is parsed into a sandboxed evaluator, classified
// for symmetry, and expanded into cosine and sine coefficients over one
// period. Coefficients come from a lookup table of known expansions, from
// closed-form symbolic integration where the expression allows it, or
// from trapezoidal quadrature as the universal fallback.
//
// # Features
//
//   - Expression grammar with arithmetic, elementary functions, and
//     Python-style conditionals (no names beyond x, pi, and e)
//   - Symmetry detection (even, odd, half-wave) that prunes half of the
//     coefficient integrals
//   - Symbolic general-term formulas a_n, b_n for integrable expressions
//   - Parallel coefficient computation above a configurable term count,
//     bit-identical to the serial path
//   - Vectorized partial-sum evaluation with optional Hann or Hamming
//     tapers for Gibbs suppression
//   - Complexity analysis (discontinuities, spectral content, smoothness)
//     and parameter recommendation for visualization
//
// # Quick Start
//
// For one-shot computation:
//
//	cs, err := fourier.ComputeAll("x**2", 2*math.Pi, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ys := cs.Evaluate(xs, 10)
//
// For a reusable solver with explicit configuration:
//
//	s, err := fourier.New(&fourier.Config{
//	    Expression: "1 if x > 0 else -1",
//	    Period:     2 * math.Pi,
//	    Terms:      50,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cs := s.Compute()
//	metrics := s.ComputeError(cs, xs)
//
// # Failure Model
//
// Construction is the only fallible step: [New] returns an error wrapping
// [ErrParse] for a malformed or disallowed expression and [ErrInvalidConfig]
// for bad parameters. Everything downstream degrades instead of failing.
// Samples where the function is undefined evaluate to zero, symbolic
// integration falls back to quadrature, and a function that cannot be
// evaluated anywhere yields a degenerate extreme-complexity analysis.
//
// # Thread Safety
//
// A [Solver] is immutable after construction and safe for concurrent use.
// [CoefficientSet], [ComplexityAnalysis], and [Recommendation] values are
// never mutated after being returned.
package fourier
