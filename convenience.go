package fourier

import (
	"fmt"
	"math"
)

// ComputeAll parses the expression and computes its series coefficients
// with default settings. It is the one-call path for callers that do
// not need to reuse the solver.
func ComputeAll(expression string, period float64, terms int) (*CoefficientSet, error) {
	s, err := New(&Config{Expression: expression, Period: period, Terms: terms})
	if err != nil {
		return nil, err
	}
	return s.Compute(), nil
}

// AnalyzeComplexity parses the expression and runs the complexity
// analysis with default settings.
func AnalyzeComplexity(expression string, period float64) (*ComplexityAnalysis, error) {
	s, err := New(&Config{Expression: expression, Period: period})
	if err != nil {
		return nil, err
	}
	return s.Analyze(), nil
}

// RecommendParameters analyzes the expression and returns suggested
// visualization parameters in one call.
func RecommendParameters(expression string, period float64) (Recommendation, error) {
	a, err := AnalyzeComplexity(expression, period)
	if err != nil {
		return Recommendation{}, err
	}
	return Recommend(a), nil
}

// ApproximationError computes the series for the expression and measures
// its reconstruction error over one period at the given resolution. At
// least two samples are required to span the period.
func ApproximationError(expression string, period float64, terms, samples int) (*ErrorMetrics, error) {
	if samples < 2 {
		return nil, fmt.Errorf("%w: samples must be at least 2", ErrInvalidConfig)
	}
	s, err := New(&Config{Expression: expression, Period: period, Terms: terms})
	if err != nil {
		return nil, err
	}
	cs := s.Compute()
	L := s.HalfPeriod()
	xs := make([]float64, samples)
	for i := range xs {
		xs[i] = -L + float64(i)*(2*L)/float64(samples-1)
	}
	return s.ComputeError(cs, xs), nil
}

// Preset is a ready-made classic waveform for demos and tests.
type Preset struct {
	Name        string
	Expression  string
	Period      float64
	Description string
}

// Presets returns the built-in classic waveforms. The slice is freshly
// allocated on each call.
func Presets() []Preset {
	return []Preset{
		{
			Name:        "square",
			Expression:  "1 if x > 0 else -1",
			Period:      2 * math.Pi,
			Description: "square wave, odd, converges as 4/pi * sum sin(nx)/n over odd n",
		},
		{
			Name:        "sawtooth",
			Expression:  "x",
			Period:      2 * math.Pi,
			Description: "sawtooth wave, odd, slow 1/n convergence",
		},
		{
			Name:        "triangle",
			Expression:  "(2/pi)*arcsin(sin(x))",
			Period:      2 * math.Pi,
			Description: "triangle wave, odd, fast 1/n^2 convergence",
		},
		{
			Name:        "pulse",
			Expression:  "1 if abs(x) < pi/4 else 0",
			Period:      2 * math.Pi,
			Description: "pulse train, sinc-shaped spectrum",
		},
		{
			Name:        "parabola",
			Expression:  "x**2",
			Period:      2 * math.Pi,
			Description: "periodic parabola, even and continuous",
		},
		{
			Name:        "gaussian",
			Expression:  "exp(-x**2/4)",
			Period:      2 * math.Pi,
			Description: "gaussian bump, smooth with rapidly decaying spectrum",
		},
		{
			Name:        "am",
			Expression:  "(1 + 0.5*cos(x))*cos(5*x)",
			Period:      2 * math.Pi,
			Description: "amplitude-modulated carrier, three spectral peaks",
		},
		{
			Name:        "beat",
			Expression:  "cos(9*x) + cos(11*x)",
			Period:      2 * math.Pi,
			Description: "beat between two nearby harmonics",
		},
		{
			Name:        "rectified",
			Expression:  "abs(sin(x))",
			Period:      math.Pi,
			Description: "full-wave rectified sine, even cosine terms only",
		},
		{
			Name:        "chirp",
			Expression:  "sin(x**2/2)",
			Period:      2 * math.Pi,
			Description: "linear chirp, frequency rising across the period",
		},
		{
			Name:        "absolute",
			Expression:  "abs(x)",
			Period:      2 * math.Pi,
			Description: "periodic absolute value, even, 1/n^2 convergence",
		},
		{
			Name:        "cubic",
			Expression:  "x**3",
			Period:      2 * math.Pi,
			Description: "periodic cubic, odd, slow convergence",
		},
	}
}

// PresetByName returns the named preset, or false when no preset with
// that name exists.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
