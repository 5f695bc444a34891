package fourier

import "fmt"

// AnimationSpeed is a coarse playback-rate suggestion for visualizing a
// partial-sum animation, derived from the recommended term count.
type AnimationSpeed int

const (
	SpeedSlow AnimationSpeed = iota
	SpeedNormal
	SpeedFast
	SpeedVeryFast
)

func (s AnimationSpeed) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedNormal:
		return "normal"
	case SpeedFast:
		return "fast"
	default:
		return "very_fast"
	}
}

// WindowType selects the taper applied to partial sums to suppress the
// Gibbs phenomenon near jumps.
type WindowType int

const (
	WindowRectangular WindowType = iota
	WindowHann
	WindowHamming
)

func (w WindowType) String() string {
	switch w {
	case WindowHann:
		return "hann"
	case WindowHamming:
		return "hamming"
	default:
		return "rectangular"
	}
}

// Recommendation suggests visualization parameters for a function based
// on its complexity analysis.
type Recommendation struct {
	Terms     int
	Speed     AnimationSpeed
	Window    WindowType
	Rationale string
}

// Recommend maps a complexity analysis onto concrete parameters: a term
// count in [MinRecommendedTerms, MaxRecommendedTerms], an animation
// speed bucket, and a Gibbs-suppression window.
func Recommend(a *ComplexityAnalysis) Recommendation {
	terms := baseTerms(a.Level)

	// A degenerate analysis reports -1, which subtracts one adjustment
	// here and selects the Hann window below.
	disc := a.DiscontinuityCount()
	terms += disc * termsPerDiscontinuity

	switch {
	case a.HighFrequencyRatio > highFreqStrongRatio:
		terms += highFreqStrongBonus
	case a.HighFrequencyRatio > highFreqMediumRatio:
		terms += highFreqMediumBonus
	}

	terms = min(max(terms, MinRecommendedTerms), MaxRecommendedTerms)

	return Recommendation{
		Terms:     terms,
		Speed:     speedFor(terms),
		Window:    windowFor(disc),
		Rationale: rationale(a, terms),
	}
}

func baseTerms(l ComplexityLevel) int {
	switch l {
	case LevelSimple:
		return baseTermsSimple
	case LevelMedium:
		return baseTermsMedium
	case LevelHigh:
		return baseTermsHigh
	default:
		return baseTermsExtreme
	}
}

func speedFor(terms int) AnimationSpeed {
	switch {
	case terms < speedNormalMin:
		return SpeedSlow
	case terms < speedFastMin:
		return SpeedNormal
	case terms < speedVeryFastMin:
		return SpeedFast
	default:
		return SpeedVeryFast
	}
}

// windowFor picks a taper by discontinuity count: rectangular for a
// continuous function, Hann for a few jumps, Hamming for many. The
// degenerate sentinel (-1) lands in the Hann bucket.
func windowFor(discontinuities int) WindowType {
	switch {
	case discontinuities == 0:
		return WindowRectangular
	case discontinuities <= hannDiscontinuityMax:
		return WindowHann
	default:
		return WindowHamming
	}
}

func rationale(a *ComplexityAnalysis, terms int) string {
	if a.Degenerate {
		return fmt.Sprintf("function could not be evaluated, assuming extreme complexity: %d terms", terms)
	}
	return fmt.Sprintf("%s complexity, %d discontinuities, %.0f%% high-frequency power: %d terms",
		a.Level, len(a.DiscontinuityPositions), a.HighFrequencyRatio*100, terms)
}
