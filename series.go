package fourier

import (
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
)

// Evaluate computes the partial sum
//
//	a0/2 + Σ_{k=1}^{nTerms} [a_k cos(k*pi*x/L) + b_k sin(k*pi*x/L)]
//
// for every x in xs. nTerms is clamped to the available coefficients;
// nTerms = 0 returns the constant a0/2 everywhere. The angular argument
// for each (k, x) pair is computed exactly once from a shared base row.
func (cs *CoefficientSet) Evaluate(xs []float64, nTerms int) []float64 {
	return cs.evaluate(xs, nTerms, nil)
}

// EvaluateWindowed is Evaluate with the coefficients tapered by the
// given window, which trades sharpness for reduced Gibbs ringing near
// discontinuities. WindowRectangular leaves the coefficients unchanged.
func (cs *CoefficientSet) EvaluateWindowed(xs []float64, nTerms int, w WindowType) []float64 {
	nTerms = cs.clampTerms(nTerms)
	return cs.evaluate(xs, nTerms, taperWeights(w, nTerms))
}

func (cs *CoefficientSet) clampTerms(nTerms int) int {
	if nTerms > len(cs.An) {
		nTerms = len(cs.An)
	}
	if nTerms < 0 {
		nTerms = 0
	}
	return nTerms
}

func (cs *CoefficientSet) evaluate(xs []float64, nTerms int, taper []float64) []float64 {
	nTerms = cs.clampTerms(nTerms)

	result := make([]float64, len(xs))
	dc := cs.A0 / 2
	for i := range result {
		result[i] = dc
	}
	if nTerms == 0 || len(xs) == 0 {
		return result
	}

	// base[i] = pi*x_i/L; the argument row for harmonic k is k*base.
	base := make([]float64, len(xs))
	f64.Scale(base, xs, math.Pi/cs.L)

	arg := make([]float64, len(xs))
	for k := 1; k <= nTerms; k++ {
		ak, bk := cs.An[k-1], cs.Bn[k-1]
		if taper != nil {
			ak *= taper[k-1]
			bk *= taper[k-1]
		}
		if ak == 0 && bk == 0 {
			continue
		}
		f64.Scale(arg, base, float64(k))
		for i, a := range arg {
			result[i] += ak*math.Cos(a) + bk*math.Sin(a)
		}
	}
	return result
}

// taperWeights returns the per-harmonic coefficient weights for a
// window, or nil for the rectangular window. Weight k is the window
// value at offset k from the center of a symmetric window of length
// 2*nTerms + 1, so weights fall from 1 at k=1 toward the band edge.
func taperWeights(w WindowType, nTerms int) []float64 {
	if w == WindowRectangular || nTerms == 0 {
		return nil
	}
	full := make([]float64, 2*nTerms+1)
	for i := range full {
		full[i] = 1
	}
	switch w {
	case WindowHann:
		window.Hann(full)
	case WindowHamming:
		window.Hamming(full)
	default:
		return nil
	}
	weights := make([]float64, nTerms)
	copy(weights, full[nTerms+1:])
	return weights
}

// ErrorMetrics reports how far the partial sum deviates from the
// original function over a sample grid.
type ErrorMetrics struct {
	// Pointwise is f(x) - series(x) for every sample.
	Pointwise []float64

	// MSE, MAE, and MaxAbs are the mean squared, mean absolute, and
	// maximum absolute pointwise errors.
	MSE    float64
	MAE    float64
	MaxAbs float64
}

// ComputeError evaluates the full partial sum and the original function
// over xs and returns pointwise and aggregate error metrics.
func (s *Solver) ComputeError(cs *CoefficientSet, xs []float64) *ErrorMetrics {
	approx := cs.Evaluate(xs, cs.Terms())
	orig := s.EvaluateFunction(xs)

	diff := make([]float64, len(xs))
	floats.SubTo(diff, orig, approx)

	m := &ErrorMetrics{Pointwise: diff}
	if len(diff) == 0 {
		return m
	}
	m.MSE = f64.DotProduct(diff, diff) / float64(len(diff))
	for _, d := range diff {
		ad := math.Abs(d)
		m.MAE += ad
		if ad > m.MaxAbs {
			m.MaxAbs = ad
		}
	}
	m.MAE /= float64(len(diff))
	return m
}

// CoefficientRow is one row of the coefficient table, with Harmonic 0
// holding a0.
type CoefficientRow struct {
	Harmonic int
	An       float64
	Bn       float64
}

// Table returns the coefficients as ordered rows for display or export.
func (cs *CoefficientSet) Table() []CoefficientRow {
	rows := make([]CoefficientRow, 0, len(cs.An)+1)
	rows = append(rows, CoefficientRow{Harmonic: 0, An: cs.A0})
	for i := range cs.An {
		rows = append(rows, CoefficientRow{Harmonic: i + 1, An: cs.An[i], Bn: cs.Bn[i]})
	}
	return rows
}

// Expression renders the partial sum as human-readable text, skipping
// negligible terms.
func (cs *CoefficientSet) Expression(nTerms int) string {
	nTerms = cs.clampTerms(nTerms)
	var b strings.Builder
	fmt.Fprintf(&b, "%.4f", cs.A0/2)
	for k := 1; k <= nTerms; k++ {
		if a := cs.An[k-1]; math.Abs(a) > coefficientEpsilon {
			fmt.Fprintf(&b, " + %.4f*cos(%d*pi*x/%.2f)", a, k, cs.L)
		}
		if v := cs.Bn[k-1]; math.Abs(v) > coefficientEpsilon {
			fmt.Fprintf(&b, " + %.4f*sin(%d*pi*x/%.2f)", v, k, cs.L)
		}
	}
	return b.String()
}
