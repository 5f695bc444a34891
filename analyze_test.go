package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeSmooth tests that a gaussian bump scores as simple: no
// discontinuities, negligible high-frequency power, high smoothness.
func TestAnalyzeSmooth(t *testing.T) {
	s := newTestSolver(t, "exp(-x**2)", 2*math.Pi)
	a := s.Analyze()

	assert.False(t, a.Degenerate)
	assert.Equal(t, LevelSimple, a.Level)
	assert.Equal(t, 0, a.DiscontinuityCount())
	assert.Less(t, a.HighFrequencyRatio, 0.1)
	assert.Greater(t, a.Smoothness, 0.8)
}

// TestAnalyzeSquareWave tests jump detection on the canonical square
// wave: exactly one discontinuity, located at the sign change.
func TestAnalyzeSquareWave(t *testing.T) {
	s := newTestSolver(t, "1 if x > 0 else -1", 2*math.Pi)
	a := s.Analyze()

	assert.False(t, a.Degenerate)
	require.Equal(t, 1, a.DiscontinuityCount())
	assert.InDelta(t, 0.0, a.DiscontinuityPositions[0], 0.1)
	assert.GreaterOrEqual(t, a.HighFrequencyRatio, 0.0)
	assert.LessOrEqual(t, a.HighFrequencyRatio, 1.0)
}

// TestAnalyzeDiscontinuityMerging tests that flags within period/100 of
// each other collapse into a single discontinuity.
func TestAnalyzeDiscontinuityMerging(t *testing.T) {
	// Two jumps well apart: a pulse of width 1.
	s := newTestSolver(t, "1 if abs(x) < 0.5 else 0", 2*math.Pi)
	a := s.Analyze()

	require.False(t, a.Degenerate)
	assert.Equal(t, 2, a.DiscontinuityCount())
}

// TestAnalyzeHighFrequency tests that a rapidly oscillating function
// puts its spectral power in the upper half of the band.
func TestAnalyzeHighFrequency(t *testing.T) {
	s := newTestSolver(t, "sin(600*x)", 2*math.Pi)
	a := s.Analyze()

	require.False(t, a.Degenerate)
	assert.Greater(t, a.HighFrequencyRatio, 0.5)
	assert.GreaterOrEqual(t, a.Level, LevelMedium)
}

// TestAnalyzeConstantSignal tests the zero-power guard: a flat signal
// has ratio zero, not NaN.
func TestAnalyzeConstantSignal(t *testing.T) {
	s := newTestSolver(t, "0*x", 2*math.Pi)
	a := s.Analyze()

	require.False(t, a.Degenerate)
	assert.Equal(t, LevelSimple, a.Level)
	assert.Equal(t, 0, a.DiscontinuityCount())
	assert.Equal(t, 0.0, a.HighFrequencyRatio)
	assert.InDelta(t, 1.0, a.Smoothness, 1e-12)
}

// TestAnalyzeDegenerate tests that a function with no evaluable samples
// yields the conservative extreme classification instead of failing.
func TestAnalyzeDegenerate(t *testing.T) {
	// Negative for every x, so the square root is NaN everywhere.
	s := newTestSolver(t, "sqrt(-1 - x**2)", 2*math.Pi)
	a := s.Analyze()

	assert.True(t, a.Degenerate)
	assert.Equal(t, LevelExtreme, a.Level)
	assert.Equal(t, -1, a.DiscontinuityCount())
	assert.Nil(t, a.DiscontinuityPositions)
	assert.Equal(t, 1.0, a.HighFrequencyRatio)
	assert.Equal(t, 0.0, a.Smoothness)
}

// TestClassifyScoring tests the additive score buckets directly.
func TestClassifyScoring(t *testing.T) {
	tests := []struct {
		name            string
		discontinuities int
		highFreq        float64
		smooth          float64
		expected        ComplexityLevel
	}{
		{"AllQuiet", 0, 0.0, 1.0, LevelSimple},
		{"OneJump", 1, 0.0, 1.0, LevelSimple},
		{"JumpsAndRoughness", 2, 0.2, 0.6, LevelMedium},
		{"ManyJumps", 6, 0.0, 1.0, LevelHigh},
		{"Everything", 6, 0.6, 0.1, LevelExtreme},
		{"SpectralOnly", 0, 0.6, 0.4, LevelMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.discontinuities, tt.highFreq, tt.smooth))
		})
	}
}

// TestComplexityLevelString tests the display names.
func TestComplexityLevelString(t *testing.T) {
	assert.Equal(t, "simple", LevelSimple.String())
	assert.Equal(t, "medium", LevelMedium.String())
	assert.Equal(t, "high", LevelHigh.String())
	assert.Equal(t, "extreme", LevelExtreme.String())
}
