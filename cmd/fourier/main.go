// Command fourier computes trigonometric series expansions from the
// command line.
//
// Usage:
//
//	fourier compute -expr "x**2" -period 6.2832 -terms 10
//	fourier analyze -expr "1 if x > 0 else -1"
//	fourier recommend -expr "sin(10*x)"
//	fourier presets
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	fourier "github.com/tphakala/go-fourier"
)

var (
	flagExpr    string
	flagPeriod  float64
	flagTerms   int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "fourier",
	Short:         "Trigonometric series computation for text expressions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute series coefficients for an expression",
	RunE:  runCompute,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the structural complexity of an expression",
	RunE:  runAnalyze,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest visualization parameters for an expression",
	RunE:  runRecommend,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in classic waveforms",
	RunE:  runPresets,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagExpr, "expr", "e", "", "Function expression, e.g. \"sin(x)\" or \"1 if x > 0 else -1\"")
	rootCmd.PersistentFlags().Float64VarP(&flagPeriod, "period", "p", 2*math.Pi, "Function period")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable diagnostic logging")
	computeCmd.Flags().IntVarP(&flagTerms, "terms", "n", fourier.DefaultTerms, "Number of harmonics")
	rootCmd.AddCommand(computeCmd, analyzeCmd, recommendCmd, presetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newSolver builds a solver from the shared flags, resolving -expr
// against the preset names first.
func newSolver(terms int) (*fourier.Solver, error) {
	if flagExpr == "" {
		return nil, fmt.Errorf("missing required flag: -expr")
	}
	expression, period := flagExpr, flagPeriod
	if p, ok := fourier.PresetByName(flagExpr); ok {
		expression, period = p.Expression, p.Period
	}

	cfg := &fourier.Config{
		Expression: expression,
		Period:     period,
		Terms:      terms,
	}
	if flagVerbose {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
		cfg.Logger = &log
	}
	return fourier.New(cfg)
}

func runCompute(cmd *cobra.Command, args []string) error {
	s, err := newSolver(flagTerms)
	if err != nil {
		return err
	}
	cs := s.Compute()

	fmt.Printf("f(x) = %s, period %.4f, symmetry %s\n", s.Expression(), s.Period(), cs.Symmetry)
	if cs.KnownSeries != "" {
		fmt.Printf("matched known series %q\n", cs.KnownSeries)
	}
	for _, row := range cs.Table() {
		fmt.Printf("n=%3d  a=%12.6f  b=%12.6f\n", row.Harmonic, row.An, row.Bn)
	}
	if cs.AnFormula != nil {
		fmt.Printf("a_n = %s\n", cs.AnFormula)
	}
	if cs.BnFormula != nil {
		fmt.Printf("b_n = %s\n", cs.BnFormula)
	}
	fmt.Printf("series: %s\n", cs.Expression(cs.Terms()))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := newSolver(0)
	if err != nil {
		return err
	}
	a := s.Analyze()

	fmt.Printf("complexity: %s\n", a.Level)
	if a.Degenerate {
		fmt.Println("function could not be evaluated anywhere in the period")
		return nil
	}
	fmt.Printf("discontinuities: %d", len(a.DiscontinuityPositions))
	for _, x := range a.DiscontinuityPositions {
		fmt.Printf(" %.4f", x)
	}
	fmt.Println()
	fmt.Printf("high-frequency power: %.1f%%\n", a.HighFrequencyRatio*100)
	fmt.Printf("smoothness: %.3f\n", a.Smoothness)
	return nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	s, err := newSolver(0)
	if err != nil {
		return err
	}
	r := fourier.Recommend(s.Analyze())

	fmt.Printf("terms:  %d\n", r.Terms)
	fmt.Printf("speed:  %s\n", r.Speed)
	fmt.Printf("window: %s\n", r.Window)
	fmt.Printf("why:    %s\n", r.Rationale)
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	for _, p := range fourier.Presets() {
		fmt.Printf("%-10s %-24s period %.4f  %s\n", p.Name, p.Expression, p.Period, p.Description)
	}
	return nil
}
