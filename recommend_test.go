package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecommend tests the parameter mapping for representative analyses.
func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		analysis ComplexityAnalysis
		terms    int
		speed    AnimationSpeed
		window   WindowType
	}{
		{
			name:     "SimpleSmooth",
			analysis: ComplexityAnalysis{Level: LevelSimple, Smoothness: 1},
			terms:    20,
			speed:    SpeedNormal,
			window:   WindowRectangular,
		},
		{
			name: "MediumOneJump",
			analysis: ComplexityAnalysis{
				Level:                  LevelMedium,
				DiscontinuityPositions: []float64{0},
			},
			terms:  65,
			speed:  SpeedFast,
			window: WindowHann,
		},
		{
			name: "HighWithSpectralContent",
			analysis: ComplexityAnalysis{
				Level:              LevelHigh,
				HighFrequencyRatio: 0.4,
			},
			terms:  115,
			speed:  SpeedVeryFast,
			window: WindowRectangular,
		},
		{
			name: "ExtremeClamped",
			analysis: ComplexityAnalysis{
				Level:                  LevelExtreme,
				DiscontinuityPositions: []float64{-2, -1, 0, 1, 2, 3},
				HighFrequencyRatio:     0.6,
			},
			terms:  300,
			speed:  SpeedVeryFast,
			window: WindowHamming,
		},
		{
			name: "DegenerateSentinelAdjusts",
			analysis: ComplexityAnalysis{
				Level:              LevelExtreme,
				HighFrequencyRatio: 1,
				Degenerate:         true,
			},
			terms:  215,
			speed:  SpeedVeryFast,
			window: WindowHann,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Recommend(&tt.analysis)
			assert.Equal(t, tt.terms, r.Terms)
			assert.Equal(t, tt.speed, r.Speed)
			assert.Equal(t, tt.window, r.Window)
			assert.NotEmpty(t, r.Rationale)
		})
	}
}

// TestRecommendClampBounds tests that the term count never leaves
// [MinRecommendedTerms, MaxRecommendedTerms].
func TestRecommendClampBounds(t *testing.T) {
	worst := ComplexityAnalysis{
		Level:                  LevelExtreme,
		DiscontinuityPositions: make([]float64, 50),
		HighFrequencyRatio:     1,
	}
	r := Recommend(&worst)
	assert.Equal(t, MaxRecommendedTerms, r.Terms)

	best := ComplexityAnalysis{Level: LevelSimple}
	r = Recommend(&best)
	assert.GreaterOrEqual(t, r.Terms, MinRecommendedTerms)
}

// TestRecommendDegenerateRationale tests that degenerate input is named
// in the rationale.
func TestRecommendDegenerateRationale(t *testing.T) {
	r := Recommend(&ComplexityAnalysis{Level: LevelExtreme, Degenerate: true})
	assert.Contains(t, r.Rationale, "could not be evaluated")
}

// TestSpeedBuckets tests the exclusive bucket boundaries at 20, 50, 100:
// a term count equal to a threshold belongs to the faster bucket.
func TestSpeedBuckets(t *testing.T) {
	assert.Equal(t, SpeedSlow, speedFor(19))
	assert.Equal(t, SpeedNormal, speedFor(20))
	assert.Equal(t, SpeedNormal, speedFor(49))
	assert.Equal(t, SpeedFast, speedFor(50))
	assert.Equal(t, SpeedFast, speedFor(99))
	assert.Equal(t, SpeedVeryFast, speedFor(100))
}

// TestRecommendEndToEnd tests the one-call analysis-to-parameters path.
func TestRecommendEndToEnd(t *testing.T) {
	r, err := RecommendParameters("exp(-x**2)", 2*math.Pi)
	require.NoError(t, err)
	assert.Equal(t, 20, r.Terms)
	assert.Equal(t, SpeedNormal, r.Speed)
	assert.Equal(t, WindowRectangular, r.Window)

	_, err = RecommendParameters("nope(x)", 2*math.Pi)
	assert.ErrorIs(t, err, ErrParse)
}

// TestEnumStrings tests the display names of the recommendation enums.
func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "slow", SpeedSlow.String())
	assert.Equal(t, "normal", SpeedNormal.String())
	assert.Equal(t, "fast", SpeedFast.String())
	assert.Equal(t, "very_fast", SpeedVeryFast.String())

	assert.Equal(t, "rectangular", WindowRectangular.String())
	assert.Equal(t, "hann", WindowHann.String())
	assert.Equal(t, "hamming", WindowHamming.String())
}
