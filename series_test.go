package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-fourier/internal/testutil"
)

func periodGrid(n int, L float64) []float64 {
	return floats.Span(make([]float64, n), -L, L)
}

// TestEvaluateZeroTerms tests that nTerms = 0 yields the constant a0/2.
func TestEvaluateZeroTerms(t *testing.T) {
	s, err := New(&Config{Expression: "x**2", Period: 2 * math.Pi, Terms: 10})
	require.NoError(t, err)
	cs := s.Compute()

	xs := periodGrid(64, math.Pi)
	ys := cs.Evaluate(xs, 0)
	require.Len(t, ys, len(xs))
	for i, y := range ys {
		assert.Equal(t, cs.A0/2, y, "ys[%d]", i)
	}
}

// TestEvaluateExactReconstruction tests that a pure harmonic is
// reconstructed to machine precision.
func TestEvaluateExactReconstruction(t *testing.T) {
	s := newTestSolver(t, "sin(x)", 2*math.Pi)
	cs := s.Compute()

	xs := periodGrid(200, math.Pi)
	ys := cs.Evaluate(xs, cs.Terms())
	for i, x := range xs {
		assert.InDelta(t, math.Sin(x), ys[i], 1e-12, "x=%v", x)
	}
	testutil.AssertOddSamples(t, ys, 1e-12)
}

// TestEvaluateConvergence tests that more terms mean less error.
func TestEvaluateConvergence(t *testing.T) {
	s, err := New(&Config{Expression: "x**2", Period: 2 * math.Pi, Terms: 30})
	require.NoError(t, err)
	cs := s.Compute()

	xs := periodGrid(256, math.Pi)
	maxErr := func(nTerms int) float64 {
		ys := cs.Evaluate(xs, nTerms)
		worst := 0.0
		for i, x := range xs {
			if d := math.Abs(x*x - ys[i]); d > worst {
				worst = d
			}
		}
		return worst
	}

	few := maxErr(2)
	many := maxErr(30)
	assert.Less(t, many, few)
	assert.Less(t, many, 0.05)

	ys := cs.Evaluate(xs, 30)
	testutil.AssertNoNaNOrInf(t, ys)
	testutil.AssertEvenSamples(t, ys, 1e-9)
}

// TestEvaluateClamping tests term-count clamping on both ends.
func TestEvaluateClamping(t *testing.T) {
	s, err := New(&Config{Expression: "x", Period: 2 * math.Pi, Terms: 5})
	require.NoError(t, err)
	cs := s.Compute()

	xs := periodGrid(32, math.Pi)
	assert.Equal(t, cs.Evaluate(xs, 5), cs.Evaluate(xs, 100))
	assert.Equal(t, cs.Evaluate(xs, 0), cs.Evaluate(xs, -3))
}

// TestEvaluateWindowedRectangular tests that the rectangular window is
// a no-op.
func TestEvaluateWindowedRectangular(t *testing.T) {
	s, err := New(&Config{Expression: "x", Period: 2 * math.Pi, Terms: 8})
	require.NoError(t, err)
	cs := s.Compute()

	xs := periodGrid(64, math.Pi)
	assert.Equal(t, cs.Evaluate(xs, 8), cs.EvaluateWindowed(xs, 8, WindowRectangular))
}

// TestTaperWeights tests the shape of the Hann and Hamming tapers.
func TestTaperWeights(t *testing.T) {
	assert.Nil(t, taperWeights(WindowRectangular, 10))
	assert.Nil(t, taperWeights(WindowHann, 0))

	for _, w := range []WindowType{WindowHann, WindowHamming} {
		weights := taperWeights(w, 10)
		require.Len(t, weights, 10, "%s", w)

		// Weights decay monotonically from near 1 toward the band edge.
		assert.Greater(t, weights[0], 0.9, "%s first weight", w)
		for i := 1; i < len(weights); i++ {
			assert.LessOrEqual(t, weights[i], weights[i-1], "%s weight %d", w, i)
		}
	}

	// Hann reaches zero at the edge, Hamming keeps a pedestal.
	hann := taperWeights(WindowHann, 10)
	hamming := taperWeights(WindowHamming, 10)
	assert.InDelta(t, 0.0, hann[9], 1e-12)
	assert.Greater(t, hamming[9], 0.05)
}

// TestEvaluateWindowedReducesRinging tests Gibbs suppression: the Hann
// taper must lower the worst-case overshoot of a square wave near its
// jump.
func TestEvaluateWindowedReducesRinging(t *testing.T) {
	s, err := New(&Config{Expression: "1 if x > 0 else -1", Period: 2 * math.Pi, Terms: 50})
	require.NoError(t, err)
	cs := s.Compute()

	// Sample close to the discontinuity where the overshoot lives.
	xs := floats.Span(make([]float64, 400), 0.001, 0.5)
	peak := func(ys []float64) float64 {
		worst := 0.0
		for _, y := range ys {
			if a := math.Abs(y); a > worst {
				worst = a
			}
		}
		return worst
	}

	plain := peak(cs.Evaluate(xs, 50))
	tapered := peak(cs.EvaluateWindowed(xs, 50, WindowHann))
	assert.Greater(t, plain, 1.08, "expected Gibbs overshoot without taper")
	assert.Less(t, tapered, plain)
}

// TestComputeError tests the error metrics on exact and truncated
// reconstructions.
func TestComputeError(t *testing.T) {
	t.Run("ExactHarmonic", func(t *testing.T) {
		s := newTestSolver(t, "sin(x)", 2*math.Pi)
		cs := s.Compute()

		m := s.ComputeError(cs, periodGrid(128, math.Pi))
		require.Len(t, m.Pointwise, 128)
		assert.Less(t, m.MSE, 1e-20)
		assert.Less(t, m.MAE, 1e-10)
		assert.Less(t, m.MaxAbs, 1e-10)
	})

	t.Run("TruncatedSeries", func(t *testing.T) {
		s, err := New(&Config{Expression: "x", Period: 2 * math.Pi, Terms: 5})
		require.NoError(t, err)
		cs := s.Compute()

		m := s.ComputeError(cs, periodGrid(128, math.Pi))
		assert.Greater(t, m.MSE, 0.0)
		assert.GreaterOrEqual(t, m.MaxAbs, m.MAE)
	})

	t.Run("EmptyGrid", func(t *testing.T) {
		s := newTestSolver(t, "sin(x)", 2*math.Pi)
		cs := s.Compute()

		m := s.ComputeError(cs, nil)
		assert.Empty(t, m.Pointwise)
		assert.Equal(t, 0.0, m.MSE)
	})
}

// TestTable tests the display table layout.
func TestTable(t *testing.T) {
	s, err := New(&Config{Expression: "x**2", Period: 2 * math.Pi, Terms: 3})
	require.NoError(t, err)
	cs := s.Compute()

	rows := cs.Table()
	require.Len(t, rows, 4)
	assert.Equal(t, 0, rows[0].Harmonic)
	assert.Equal(t, cs.A0, rows[0].An)
	for i := 1; i < len(rows); i++ {
		assert.Equal(t, i, rows[i].Harmonic)
		assert.Equal(t, cs.An[i-1], rows[i].An)
		assert.Equal(t, cs.Bn[i-1], rows[i].Bn)
	}
}

// TestSeriesExpression tests the rendered partial-sum text.
func TestSeriesExpression(t *testing.T) {
	s, err := New(&Config{Expression: "x", Period: 2 * math.Pi, Terms: 3})
	require.NoError(t, err)
	cs := s.Compute()

	text := cs.Expression(3)
	assert.Contains(t, text, "sin(1*pi*x/3.14)")
	assert.NotContains(t, text, "cos(", "cosine terms of an odd function should be skipped")
}
