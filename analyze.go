package fourier

import (
	"math"
	"math/cmplx"

	dspfourier "gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ComplexityLevel classifies how hard a function is to approximate with
// a truncated trigonometric series.
type ComplexityLevel int

const (
	LevelSimple ComplexityLevel = iota
	LevelMedium
	LevelHigh
	LevelExtreme
)

func (l ComplexityLevel) String() string {
	switch l {
	case LevelSimple:
		return "simple"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "extreme"
	}
}

// ComplexityAnalysis is the result of sampling-based structural analysis
// of a function over one period. It is produced fresh per call and never
// mutated.
type ComplexityAnalysis struct {
	// Level is the overall difficulty classification.
	Level ComplexityLevel

	// DiscontinuityPositions are the x positions of detected jumps,
	// merged so that jumps closer than period/100 count once. Nil when
	// the input is degenerate.
	DiscontinuityPositions []float64

	// HighFrequencyRatio is the share of spectral power in the upper
	// half of the analyzed band, in [0, 1].
	HighFrequencyRatio float64

	// Smoothness is 1 for a perfectly smooth function and approaches 0
	// as curvature variance grows.
	Smoothness float64

	// Degenerate is set when the evaluator failed for every sample. The
	// remaining fields then hold conservative sentinel values.
	Degenerate bool
}

// DiscontinuityCount returns the number of detected discontinuities, or
// -1 for degenerate input.
func (a *ComplexityAnalysis) DiscontinuityCount() int {
	if a.Degenerate {
		return -1
	}
	return len(a.DiscontinuityPositions)
}

// Analyze samples the function over [-L, L] and scores discontinuities,
// spectral content, and smoothness. It never fails: a function whose
// evaluator produces no finite sample at all yields a degenerate
// Extreme-complexity analysis instead of an error.
func (s *Solver) Analyze() *ComplexityAnalysis {
	samples := DefaultAnalysisSamples
	L := s.HalfPeriod()

	xs := floats.Span(make([]float64, samples), -L, L)
	ys, failed := s.sampleForAnalysis(xs)
	if failed >= samples {
		s.log.Debug().Msg("all samples non-finite, degenerate analysis")
		return &ComplexityAnalysis{
			Level:              LevelExtreme,
			HighFrequencyRatio: 1.0,
			Smoothness:         0.0,
			Degenerate:         true,
		}
	}

	a := &ComplexityAnalysis{
		DiscontinuityPositions: s.detectDiscontinuities(xs, ys),
		HighFrequencyRatio:     highFrequencyRatio(ys),
		Smoothness:             smoothness(ys),
	}
	a.Level = classify(len(a.DiscontinuityPositions), a.HighFrequencyRatio, a.Smoothness)
	return a
}

func (s *Solver) sampleForAnalysis(xs []float64) ([]float64, int) {
	ys, failed := s.fn.EvaluateVector(xs)
	if failed > 0 {
		s.log.Debug().Int("failed_samples", failed).Msg("analysis sampling")
	}
	return ys, failed
}

// detectDiscontinuities flags forward differences more than
// discontinuitySigma standard deviations above the mean, then merges
// flags closer than period/100.
func (s *Solver) detectDiscontinuities(xs, ys []float64) []float64 {
	if len(ys) < 2 {
		return nil
	}
	ratios := make([]float64, len(ys)-1)
	for i := range ratios {
		dx := xs[i+1] - xs[i]
		ratios[i] = math.Abs((ys[i+1] - ys[i]) / (dx + derivativeEpsilon))
	}
	mean, std := stat.MeanStdDev(ratios, nil)
	threshold := mean + discontinuitySigma*std

	var found []float64
	minGap := s.cfg.Period / discontinuityMergeDivisor
	for i, r := range ratios {
		if r <= threshold {
			continue
		}
		if len(found) > 0 && math.Abs(xs[i]-found[len(found)-1]) <= minGap {
			continue
		}
		found = append(found, xs[i])
	}
	return found
}

// highFrequencyRatio splits the one-sided power spectrum of ys into low
// and high halves and returns highPower / totalPower, or 0 when the
// signal carries no power.
func highFrequencyRatio(ys []float64) float64 {
	fft := dspfourier.NewFFT(len(ys))
	coeffs := fft.Coefficients(nil, ys)

	power := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mag := cmplx.Abs(c)
		power[i] = mag * mag
	}

	mid := len(power) / 2
	low := floats.Sum(power[:mid])
	high := floats.Sum(power[mid:])
	total := low + high
	if total < powerEpsilon {
		return 0
	}
	return high / total
}

// smoothness maps the standard deviation of second differences into
// (0, 1]: 1 is perfectly smooth, approaching 0 as curvature variance
// grows.
func smoothness(ys []float64) float64 {
	if len(ys) < 3 {
		return 1
	}
	second := make([]float64, len(ys)-2)
	for i := range second {
		second[i] = ys[i+2] - 2*ys[i+1] + ys[i]
	}
	return 1 / (1 + stat.StdDev(second, nil)/smoothnessScale)
}

// classify maps the three metrics onto an additive score and buckets it
// into the four complexity levels.
func classify(discontinuities int, highFreq, smooth float64) ComplexityLevel {
	score := 0

	switch {
	case discontinuities == 0:
	case discontinuities <= 2:
		score += 2
	case discontinuities <= 5:
		score += 4
	default:
		score += 6
	}

	switch {
	case highFreq < 0.1:
	case highFreq < 0.3:
		score++
	case highFreq < 0.5:
		score += 2
	default:
		score += 3
	}

	switch {
	case smooth > 0.8:
	case smooth > 0.5:
		score++
	case smooth > 0.3:
		score += 2
	default:
		score += 3
	}

	switch {
	case score <= scoreSimpleMax:
		return LevelSimple
	case score <= scoreMediumMax:
		return LevelMedium
	case score <= scoreHighMax:
		return LevelHigh
	default:
		return LevelExtreme
	}
}
