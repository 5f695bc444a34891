package fourier

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SymmetryClass is the structural symmetry of a function over one
// period, used to prune coefficient computation.
type SymmetryClass int

const (
	// SymmetryNone means no symmetry was detected; all coefficients are
	// computed.
	SymmetryNone SymmetryClass = iota

	// SymmetryEven means f(-x) = f(x); all sine coefficients vanish.
	SymmetryEven

	// SymmetryOdd means f(-x) = -f(x); a0 and all cosine coefficients
	// vanish.
	SymmetryOdd

	// SymmetryHalfWave means f(x + L) = -f(x); even-harmonic
	// coefficients vanish.
	SymmetryHalfWave
)

func (s SymmetryClass) String() string {
	switch s {
	case SymmetryEven:
		return "even"
	case SymmetryOdd:
		return "odd"
	case SymmetryHalfWave:
		return "half-wave"
	default:
		return "none"
	}
}

// classifySymmetry samples the function at non-zero test points and
// compares mirrored evaluations within the configured tolerances. It is
// an optimization hint only: any evaluation failure degrades the result
// to SymmetryNone instead of propagating.
func (s *Solver) classifySymmetry() SymmetryClass {
	L := s.HalfPeriod()

	// Avoid x = 0 so division singularities at the origin cannot mask a
	// genuine symmetry.
	hi := L * symmetrySpanFactor
	lo := symmetrySpanStart
	if hi <= lo {
		lo = hi / float64(s.cfg.SymmetrySamples)
	}
	pts := floats.Span(make([]float64, s.cfg.SymmetrySamples), lo, hi)

	even, odd := true, true
	for _, t := range pts {
		yPos := s.fn.Evaluate(t)
		yNeg := s.fn.Evaluate(-t)
		if !isFinite(yPos) || !isFinite(yNeg) {
			return SymmetryNone
		}
		if !s.approxEqual(yNeg, yPos) {
			even = false
		}
		if !s.approxEqual(yNeg, -yPos) {
			odd = false
		}
		if !even && !odd {
			break
		}
	}
	if even {
		return SymmetryEven
	}
	if odd {
		return SymmetryOdd
	}

	// Half-wave: f(t + L) = -f(t) over the first half of the period.
	half := floats.Span(make([]float64, halfWaveSamples), -L/2, 0)
	for _, t := range half {
		y1 := s.fn.Evaluate(t)
		y2 := s.fn.Evaluate(t + L)
		if !isFinite(y1) || !isFinite(y2) {
			return SymmetryNone
		}
		if !s.approxEqual(y2, -y1) {
			return SymmetryNone
		}
	}
	return SymmetryHalfWave
}

// approxEqual implements the numpy allclose criterion:
// |a - b| <= atol + rtol*|b|.
func (s *Solver) approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= s.cfg.SymmetryAbsTol+s.cfg.SymmetryRelTol*math.Abs(b)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
