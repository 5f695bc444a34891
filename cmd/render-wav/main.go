// Command render-wav synthesizes the partial-sum waveform of an
// expression as 16-bit mono PCM audio. The expression defines one cycle
// of the waveform, rendered at the given pitch.
//
// Usage:
//
//	render-wav -expr "1 if x > 0 else -1" -freq 220 out.wav
//	render-wav -expr square -terms 50 -window hann out.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	fourier "github.com/tphakala/go-fourier"
)

const (
	defaultSampleRate = 44100
	defaultFrequency  = 220.0
	defaultDuration   = 2.0

	bitDepth16 = 16
	maxInt16   = 32767.0
	pcmFormat  = 1

	// Headroom below full scale to avoid clipping on Gibbs overshoot.
	amplitudeScale = 0.8
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	expr := flag.String("expr", "", "Expression or preset name defining one cycle of the waveform")
	period := flag.Float64("period", 2*math.Pi, "Expression period (ignored for presets)")
	terms := flag.Int("terms", fourier.DefaultTerms, "Number of harmonics in the partial sum")
	window := flag.String("window", "rectangular", "Taper: rectangular, hann, hamming")
	freq := flag.Float64("freq", defaultFrequency, "Pitch in Hz")
	duration := flag.Float64("duration", defaultDuration, "Length in seconds")
	rate := flag.Int("rate", defaultSampleRate, "Sample rate in Hz")
	flag.Parse()

	if *expr == "" || flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s -expr EXPR [options] output.wav\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("missing expression or output path")
	}
	outputPath := flag.Arg(0)

	expression, exprPeriod := *expr, *period
	if p, ok := fourier.PresetByName(*expr); ok {
		expression, exprPeriod = p.Expression, p.Period
	}

	s, err := fourier.New(&fourier.Config{
		Expression: expression,
		Period:     exprPeriod,
		Terms:      *terms,
	})
	if err != nil {
		return err
	}
	cs := s.Compute()

	samples := synthesize(cs, parseWindow(*window), *terms, *freq, *duration, *rate)
	if err := writeWAV(outputPath, samples, *rate); err != nil {
		return err
	}

	fmt.Printf("Rendered %s -> %s\n", expression, outputPath)
	fmt.Printf("  %d terms, %s window, %.1f Hz, %.1fs at %d Hz\n",
		*terms, parseWindow(*window), *freq, *duration, *rate)
	return nil
}

func parseWindow(name string) fourier.WindowType {
	switch name {
	case "hann":
		return fourier.WindowHann
	case "hamming":
		return fourier.WindowHamming
	default:
		return fourier.WindowRectangular
	}
}

// synthesize evaluates the partial sum over phase positions mapped into
// one expression period and normalizes the result to amplitudeScale.
func synthesize(cs *fourier.CoefficientSet, w fourier.WindowType, terms int, freq, duration float64, rate int) []float64 {
	n := int(duration * float64(rate))
	xs := make([]float64, n)
	for i := range xs {
		phase := math.Mod(freq*float64(i)/float64(rate), 1.0)
		xs[i] = (phase - 0.5) * cs.Period
	}

	ys := cs.EvaluateWindowed(xs, terms, w)

	peak := 0.0
	for _, y := range ys {
		if a := math.Abs(y); a > peak {
			peak = a
		}
	}
	if peak > 0 {
		scale := amplitudeScale / peak
		for i := range ys {
			ys[i] *= scale
		}
	}
	return ys
}

func writeWAV(path string, samples []float64, rate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, rate, bitDepth16, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: bitDepth16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s * maxInt16)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	return enc.Close()
}
