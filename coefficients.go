package fourier

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/tphakala/go-fourier/internal/symbolic"
)

// CoefficientSet holds the computed series coefficients. Index i holds
// the coefficients of harmonic n = i+1; the DC term of the series is
// A0/2. A CoefficientSet is read-only to all consumers.
type CoefficientSet struct {
	// A0 is the constant-term coefficient (the series starts at A0/2).
	A0 float64

	// An and Bn are the cosine and sine coefficients for harmonics
	// 1..N, in ascending harmonic order. Both always have length N.
	An []float64
	Bn []float64

	// AnFormula and BnFormula are optional closed-form general-term
	// formulas in the harmonic index n. Nil when no closed form was
	// found or the term count exceeded the formula limit.
	AnFormula *TermFormula
	BnFormula *TermFormula

	// Period and L record the period and half-period the coefficients
	// were computed for.
	Period float64
	L      float64

	// Symmetry is the symmetry class used to prune computation.
	Symmetry SymmetryClass

	// KnownSeries names the catalog entry used, or is empty when the
	// coefficients were computed by integration.
	KnownSeries string
}

// Terms returns the number of harmonics N.
func (cs *CoefficientSet) Terms() int { return len(cs.An) }

// TermFormula is a closed-form coefficient formula parameterized by the
// harmonic index n.
type TermFormula struct {
	expr symbolic.Expr
}

// At evaluates the formula at harmonic n.
func (f *TermFormula) At(n int) float64 {
	v, ok := f.expr.Eval(map[string]float64{"n": float64(n)})
	if !ok {
		return math.NaN()
	}
	return v
}

// String renders the formula in the library's input syntax.
func (f *TermFormula) String() string { return f.expr.String() }

// Compute calculates all coefficients up to the configured term count.
//
// The fast paths are tried in order: a known-series catalog match
// computes every coefficient from direct formulas; otherwise the
// detected symmetry class prunes which integrals are evaluated. Each
// remaining integral is solved in closed form when the symbolic
// representation allows it, falling back to composite trapezoidal
// quadrature transparently. Above the parallel threshold, independent
// per-harmonic integrals run on a bounded worker pool; results land in
// pre-allocated slots indexed by harmonic, so the output order is
// independent of completion order and identical to the serial path.
func (s *Solver) Compute() *CoefficientSet {
	n := s.cfg.Terms
	L := s.HalfPeriod()
	cs := &CoefficientSet{
		An:     make([]float64, n),
		Bn:     make([]float64, n),
		Period: s.cfg.Period,
		L:      L,
	}

	if entry, ok := lookupKnownSeries(s.fn.Text(), L); ok {
		s.log.Debug().Str("series", entry.name).Msg("known series shortcut")
		cs.KnownSeries = entry.name
		cs.A0 = entry.a0(L)
		for i := range n {
			cs.An[i] = entry.an(i+1, L)
			cs.Bn[i] = entry.bn(i+1, L)
		}
		if n <= s.cfg.FormulaTermLimit {
			if entry.anFormula != nil {
				cs.AnFormula = &TermFormula{expr: entry.anFormula(L)}
			}
			if entry.bnFormula != nil {
				cs.BnFormula = &TermFormula{expr: entry.bnFormula(L)}
			}
		}
		return cs
	}

	cs.Symmetry = s.classifySymmetry()
	s.log.Debug().Stringer("symmetry", cs.Symmetry).Msg("symmetry detected")

	switch cs.Symmetry {
	case SymmetryEven:
		cs.A0 = s.coefficientA0()
		s.computeColumn(cs.An, s.coefficientA, allHarmonics)
	case SymmetryOdd:
		s.computeColumn(cs.Bn, s.coefficientB, allHarmonics)
	case SymmetryHalfWave:
		cs.A0 = s.coefficientA0()
		s.computeColumn(cs.An, s.coefficientA, oddHarmonics)
		s.computeColumn(cs.Bn, s.coefficientB, oddHarmonics)
	default:
		cs.A0 = s.coefficientA0()
		s.computeColumn(cs.An, s.coefficientA, allHarmonics)
		s.computeColumn(cs.Bn, s.coefficientB, allHarmonics)
	}

	if n <= s.cfg.FormulaTermLimit {
		cs.AnFormula, cs.BnFormula = s.generalTermFormulas()
	}
	return cs
}

// harmonicFilter selects which harmonics of a column are computed;
// the rest stay zero.
type harmonicFilter func(n int) bool

func allHarmonics(int) bool { return true }

func oddHarmonics(n int) bool { return n%2 == 1 }

// computeColumn fills dst[i] with coeff(i+1) for every selected
// harmonic. Above the parallel threshold the integrals are dispatched to
// a bounded worker pool; each task writes only its own slot, so no
// locking is needed and gather order is irrelevant.
func (s *Solver) computeColumn(dst []float64, coeff func(n int) float64, selected harmonicFilter) {
	if len(dst) <= s.cfg.ParallelThreshold {
		for i := range dst {
			if selected(i + 1) {
				dst[i] = coeff(i + 1)
			}
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for i := range dst {
		if !selected(i + 1) {
			continue
		}
		g.Go(func() error {
			dst[i] = coeff(i + 1)
			return nil
		})
	}
	// Tasks never return errors; integration failures are recovered
	// inside coeff via the quadrature fallback.
	_ = g.Wait()
}

// coefficientA0 computes a0 = (1/L) ∫ f(x) dx over [-L, L].
func (s *Solver) coefficientA0() float64 {
	L := s.HalfPeriod()
	if sym, ok := s.fn.Symbolic(); ok {
		if v, ok := symbolic.DefiniteIntegral(sym, "x", -L, L); ok {
			return v / L
		}
		s.log.Debug().Msg("symbolic a0 integral failed, using quadrature")
	}
	return s.quadrature(func(x float64) float64 { return 1 }) / L
}

// coefficientA computes an = (1/L) ∫ f(x) cos(n*pi*x/L) dx over [-L, L].
func (s *Solver) coefficientA(n int) float64 {
	L := s.HalfPeriod()
	omega := float64(n) * math.Pi / L
	if sym, ok := s.fn.Symbolic(); ok {
		integrand := symbolic.MulOf(sym, symbolic.CallOf("cos", symbolic.MulOf(symbolic.N(omega), symbolic.S("x"))))
		if v, ok := symbolic.DefiniteIntegral(integrand, "x", -L, L); ok {
			return v / L
		}
		s.log.Debug().Int("n", n).Msg("symbolic an integral failed, using quadrature")
	}
	return s.quadrature(func(x float64) float64 { return math.Cos(omega * x) }) / L
}

// coefficientB computes bn = (1/L) ∫ f(x) sin(n*pi*x/L) dx over [-L, L].
func (s *Solver) coefficientB(n int) float64 {
	L := s.HalfPeriod()
	omega := float64(n) * math.Pi / L
	if sym, ok := s.fn.Symbolic(); ok {
		integrand := symbolic.MulOf(sym, symbolic.CallOf("sin", symbolic.MulOf(symbolic.N(omega), symbolic.S("x"))))
		if v, ok := symbolic.DefiniteIntegral(integrand, "x", -L, L); ok {
			return v / L
		}
		s.log.Debug().Int("n", n).Msg("symbolic bn integral failed, using quadrature")
	}
	return s.quadrature(func(x float64) float64 { return math.Sin(omega * x) }) / L
}

// quadrature integrates f(x)*weight(x) over [-L, L] with the composite
// trapezoidal rule. The integrand is periodic over the interval, which
// makes the trapezoidal rule spectrally accurate here.
func (s *Solver) quadrature(weight func(x float64) float64) float64 {
	L := s.HalfPeriod()
	xs := floats.Span(make([]float64, s.cfg.QuadratureSamples), -L, L)
	ys := s.EvaluateFunction(xs)
	for i, x := range xs {
		ys[i] *= weight(x)
	}
	return integrate.Trapezoidal(xs, ys)
}

// generalTermFormulas attempts closed-form an(n), bn(n) expressions by
// integrating with a symbolic harmonic index. This succeeds for
// polynomial functions; anything else returns nil formulas, which is
// not an error.
func (s *Solver) generalTermFormulas() (an, bn *TermFormula) {
	sym, ok := s.fn.Symbolic()
	if !ok {
		return nil, nil
	}
	L := s.HalfPeriod()
	omega := symbolic.MulOf(symbolic.S("n"), symbolic.N(math.Pi/L))
	x := symbolic.S("x")

	if f, ok := s.symbolicCoefficient(symbolic.MulOf(sym, symbolic.CallOf("cos", symbolic.MulOf(omega, x))), L); ok {
		an = f
	}
	if f, ok := s.symbolicCoefficient(symbolic.MulOf(sym, symbolic.CallOf("sin", symbolic.MulOf(omega, x))), L); ok {
		bn = f
	}
	return an, bn
}

func (s *Solver) symbolicCoefficient(integrand symbolic.Expr, L float64) (*TermFormula, bool) {
	antideriv, ok := symbolic.Integrate(integrand, "x")
	if !ok {
		return nil, false
	}
	diff := symbolic.AddOf(
		antideriv.Sub("x", symbolic.N(L)),
		symbolic.Neg(antideriv.Sub("x", symbolic.N(-L))),
	)
	formula := symbolic.SimplifyHarmonic(symbolic.MulOf(symbolic.N(1/L), diff), "n")
	// A formula that cannot be evaluated at a concrete harmonic is
	// useless; probe it once.
	if _, ok := formula.Eval(map[string]float64{"n": 1}); !ok {
		return nil, false
	}
	return &TermFormula{expr: formula}, true
}
