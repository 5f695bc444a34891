package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSolver(t *testing.T, expression string, period float64) *Solver {
	t.Helper()
	s, err := New(&Config{Expression: expression, Period: period})
	require.NoError(t, err)
	return s
}

// TestClassifySymmetry tests sampling-based symmetry detection.
func TestClassifySymmetry(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		period     float64
		expected   SymmetryClass
	}{
		{"EvenParabola", "x**2", 2 * math.Pi, SymmetryEven},
		{"EvenCosine", "cos(x)", 2 * math.Pi, SymmetryEven},
		{"EvenAbs", "abs(x)", 2 * math.Pi, SymmetryEven},
		{"OddLinear", "x", 2 * math.Pi, SymmetryOdd},
		{"OddSine", "sin(x)", 2 * math.Pi, SymmetryOdd},
		{"OddCubic", "x**3", 4, SymmetryOdd},
		{"OddConditional", "1 if x > 0 else -1", 2 * math.Pi, SymmetryOdd},
		{"HalfWave", "sin(x) + cos(x)", 2 * math.Pi, SymmetryHalfWave},
		{"NoneShifted", "x + 1", 2 * math.Pi, SymmetryNone},
		{"NoneGaussianShifted", "exp(-(x-1)**2)", 2 * math.Pi, SymmetryNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSolver(t, tt.expression, tt.period)
			assert.Equal(t, tt.expected, s.classifySymmetry())
		})
	}
}

// TestClassifySymmetryEvaluationFailure tests that unevaluable points
// degrade to SymmetryNone rather than a wrong class.
func TestClassifySymmetryEvaluationFailure(t *testing.T) {
	// log(x) is NaN for every negative test point.
	s := newTestSolver(t, "log(x)", 2*math.Pi)
	assert.Equal(t, SymmetryNone, s.classifySymmetry())
}

// TestSymmetryClassString tests the display names.
func TestSymmetryClassString(t *testing.T) {
	assert.Equal(t, "none", SymmetryNone.String())
	assert.Equal(t, "even", SymmetryEven.String())
	assert.Equal(t, "odd", SymmetryOdd.String())
	assert.Equal(t, "half-wave", SymmetryHalfWave.String())
}

// TestApproxEqual tests the allclose-style tolerance criterion.
func TestApproxEqual(t *testing.T) {
	s := newTestSolver(t, "x", 2)
	assert.True(t, s.approxEqual(1.0, 1.0))
	assert.True(t, s.approxEqual(1.0, 1.0+5e-7))
	assert.True(t, s.approxEqual(1000.0, 1000.05))
	assert.False(t, s.approxEqual(1.0, 1.01))
	assert.False(t, s.approxEqual(0.0, 1e-3))
}
