package fourier

// Engine defaults
const (
	// DefaultTerms is the number of harmonics computed when Config.Terms
	// is left at zero.
	DefaultTerms = 10

	// DefaultQuadratureSamples is the trapezoidal grid size used when a
	// coefficient integral falls back to numeric quadrature.
	DefaultQuadratureSamples = 2000

	// DefaultParallelThreshold is the term count above which coefficient
	// integrals are dispatched to the worker pool.
	DefaultParallelThreshold = 20

	// DefaultWorkers is the worker pool size for parallel computation.
	DefaultWorkers = 4

	// DefaultFormulaTermLimit bounds the term count up to which symbolic
	// general-term formulas are attempted.
	DefaultFormulaTermLimit = 50
)

// Symmetry detection parameters
const (
	// DefaultSymmetrySamples is the number of test points for the
	// even/odd checks.
	DefaultSymmetrySamples = 25

	// DefaultSymmetryRelTol and DefaultSymmetryAbsTol are the tolerances
	// for the sampled approximate-equality tests.
	DefaultSymmetryRelTol = 1e-4
	DefaultSymmetryAbsTol = 1e-6

	// halfWaveSamples is the number of test points for the half-wave
	// check, sampled over [-L/2, 0].
	halfWaveSamples = 15

	// symmetrySpanFactor caps the even/odd sampling span at 0.95*L.
	symmetrySpanFactor = 0.95

	// symmetrySpanStart is the preferred first non-zero test point.
	symmetrySpanStart = 0.1
)

// Complexity analysis parameters
const (
	// DefaultAnalysisSamples is the sampling resolution for complexity
	// analysis.
	DefaultAnalysisSamples = 2000

	// discontinuitySigma is the number of standard deviations above the
	// mean forward difference that flags a jump.
	discontinuitySigma = 5.0

	// discontinuityMergeDivisor merges flagged jumps closer than
	// period/discontinuityMergeDivisor into one discontinuity.
	discontinuityMergeDivisor = 100.0

	// derivativeEpsilon guards forward-difference division.
	derivativeEpsilon = 1e-10

	// powerEpsilon is the total spectral power below which the
	// high-frequency ratio is defined as zero.
	powerEpsilon = 1e-10

	// smoothnessScale normalizes second-difference deviation into the
	// (0, 1] smoothness metric: 1 / (1 + sigma/smoothnessScale).
	smoothnessScale = 10.0
)

// Complexity score buckets (additive, see classify)
const (
	scoreSimpleMax = 2
	scoreMediumMax = 5
	scoreHighMax   = 8
)

// Recommendation parameters
const (
	baseTermsSimple  = 20
	baseTermsMedium  = 50
	baseTermsHigh    = 100
	baseTermsExtreme = 200

	termsPerDiscontinuity = 15

	highFreqStrongRatio = 0.5
	highFreqMediumRatio = 0.3
	highFreqStrongBonus = 30
	highFreqMediumBonus = 15

	// MinRecommendedTerms and MaxRecommendedTerms clamp the suggestion.
	MinRecommendedTerms = 10
	MaxRecommendedTerms = 300

	// Animation speed thresholds: below 20 terms slow, below 50 normal,
	// below 100 fast, otherwise very fast.
	speedNormalMin   = 20
	speedFastMin     = 50
	speedVeryFastMin = 100

	// Window choice by discontinuity count.
	hannDiscontinuityMax = 2
)

// coefficientEpsilon is the magnitude below which a coefficient is
// treated as zero when rendering the series expression.
const coefficientEpsilon = 1e-10
