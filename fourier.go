package fourier

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tphakala/go-fourier/internal/expr"
)

// Common errors returned by the solver.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid solver configuration")

	// ErrParse indicates the expression could not be interpreted by
	// either the symbolic parser or the sandboxed conditional grammar.
	ErrParse = errors.New("expression parse error")
)

// Config holds the solver configuration. Only Expression and Period are
// required; zero values elsewhere select the documented defaults.
type Config struct {
	// Expression is the function text, e.g. "sin(x)", "x**2", or a
	// conditional such as "1 if x > 0 else -1".
	Expression string

	// Period is the function period. Must be positive.
	Period float64

	// Terms is the number of harmonics N to compute. Defaults to
	// DefaultTerms.
	Terms int

	// Workers is the worker pool size for parallel coefficient
	// computation. Defaults to DefaultWorkers.
	Workers int

	// ParallelThreshold is the term count above which coefficients are
	// computed in parallel. Defaults to DefaultParallelThreshold.
	// Parallel and serial paths produce identical coefficients.
	ParallelThreshold int

	// QuadratureSamples is the trapezoidal grid size for numeric
	// integration fallback. Defaults to DefaultQuadratureSamples.
	QuadratureSamples int

	// SymmetrySamples is the test point count for symmetry detection.
	// Defaults to DefaultSymmetrySamples.
	SymmetrySamples int

	// SymmetryRelTol and SymmetryAbsTol are the approximate-equality
	// tolerances for symmetry detection. Defaults to
	// DefaultSymmetryRelTol and DefaultSymmetryAbsTol.
	SymmetryRelTol float64
	SymmetryAbsTol float64

	// FormulaTermLimit bounds the term count up to which symbolic
	// general-term formulas are attempted. Defaults to
	// DefaultFormulaTermLimit.
	FormulaTermLimit int

	// Logger receives diagnostic events (integration fallbacks, failed
	// samples). Defaults to a no-op logger; nothing in the solver
	// surfaces these as errors.
	Logger *zerolog.Logger
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Expression == "" {
		return fmt.Errorf("%w: expression is empty", ErrInvalidConfig)
	}
	if c.Period <= 0 {
		return fmt.Errorf("%w: period must be positive", ErrInvalidConfig)
	}
	if c.Terms < 0 {
		return fmt.Errorf("%w: terms must be non-negative", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// applyDefaults fills zero-valued fields with the documented defaults.
func (c *Config) applyDefaults() {
	if c.Terms == 0 {
		c.Terms = DefaultTerms
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.ParallelThreshold == 0 {
		c.ParallelThreshold = DefaultParallelThreshold
	}
	if c.QuadratureSamples == 0 {
		c.QuadratureSamples = DefaultQuadratureSamples
	}
	if c.SymmetrySamples == 0 {
		c.SymmetrySamples = DefaultSymmetrySamples
	}
	if c.SymmetryRelTol == 0 {
		c.SymmetryRelTol = DefaultSymmetryRelTol
	}
	if c.SymmetryAbsTol == 0 {
		c.SymmetryAbsTol = DefaultSymmetryAbsTol
	}
	if c.FormulaTermLimit == 0 {
		c.FormulaTermLimit = DefaultFormulaTermLimit
	}
}

// Solver computes trigonometric series approximations of a periodic
// function. A Solver is immutable after construction and safe for
// concurrent use.
type Solver struct {
	cfg Config
	fn  *expr.Function
	log zerolog.Logger
}

// New creates a solver for the configured expression. It returns an
// error wrapping ErrParse when the expression cannot be interpreted, or
// ErrInvalidConfig for bad parameters. No other construction failure
// modes exist; everything downstream degrades to numeric fallbacks.
func New(config *Config) (*Solver, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := *config
	cfg.applyDefaults()

	fn, err := expr.Parse(cfg.Expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Solver{cfg: cfg, fn: fn, log: log}, nil
}

// HalfPeriod returns L, half of the configured period. Integration
// bounds are [-L, L] and harmonic n has angular frequency n*pi/L.
func (s *Solver) HalfPeriod() float64 { return s.cfg.Period / 2 }

// Period returns the configured period.
func (s *Solver) Period() float64 { return s.cfg.Period }

// Terms returns the configured harmonic count.
func (s *Solver) Terms() int { return s.cfg.Terms }

// Expression returns the original expression text.
func (s *Solver) Expression() string { return s.fn.Text() }

// IsSymbolic reports whether a symbolic form of the function is
// available for closed-form integration.
func (s *Solver) IsSymbolic() bool { return s.fn.Kind() == expr.Symbolic }

// EvaluateFunction evaluates the parsed function element-wise over xs.
// Non-finite samples are replaced with 0 and logged, never raised.
func (s *Solver) EvaluateFunction(xs []float64) []float64 {
	ys, failed := s.fn.EvaluateVector(xs)
	if failed > 0 {
		s.log.Debug().Int("failed_samples", failed).Str("expression", s.fn.Text()).
			Msg("replaced non-finite samples with zero")
	}
	return ys
}
