// Command analyze-trajectory prints statistics of a recorded trace before
// and after humanizing, together with the processing plan.
//
// Usage:
//
//	analyze-trajectory rec.json
//	analyze-trajectory -config snappy.yaml -kernel rec.json
//	analyze-trajectory -scope scope.wav
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	humanizer "github.com/tphakala/go-cursor-humanizer"
	"github.com/tphakala/go-cursor-humanizer/internal/config"
	"github.com/tphakala/go-cursor-humanizer/internal/filter"
	"github.com/tphakala/go-cursor-humanizer/internal/report"
	"github.com/tphakala/go-cursor-humanizer/internal/scope"
	"github.com/tphakala/go-cursor-humanizer/internal/simdops"
	"github.com/tphakala/go-cursor-humanizer/internal/trace"
	"gonum.org/v1/gonum/floats"
)

// Display limits
const (
	maxSegmentsToShow = 10
	kernelTapsPerLine = 8
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("analyze-trajectory", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	showKernel := fs.Bool("kernel", false, "Print the smoothing kernel")
	scopePath := fs.String("scope", "", "Inspect a scope WAV file written by humanize -wav")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *scopePath != "" {
		return analyzeScope(w, *scopePath)
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: %s [options] trace.json", fs.Name())
	}

	cfg := humanizer.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	raw, err := trace.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	if err := trace.Check(raw); err != nil {
		fmt.Fprintf(w, "Warning: %v\n\n", err)
	}

	h, err := humanizer.New(&cfg)
	if err != nil {
		return fmt.Errorf("failed to create humanizer: %w", err)
	}

	fmt.Fprintln(w, "=== Processing Plan ===")
	writePlan(w, h.Plan(), cfg)

	if *showKernel {
		if err := writeKernel(w); err != nil {
			return err
		}
	}

	segments, err := h.ProcessSegments(raw)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}
	var out humanizer.Sequence
	for _, s := range segments {
		out = append(out, s...)
	}

	fmt.Fprintln(w, "\n=== Raw ===")
	if err := report.Summarize(raw, cfg.GapThresholdMs).WriteText(w); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Humanized ===")
	if err := report.Summarize(out, cfg.GapThresholdMs).WriteText(w); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Segments ===")
	writeSegments(w, segments)
	return nil
}

func writePlan(w io.Writer, info humanizer.Info, cfg humanizer.Config) {
	fmt.Fprintf(w, "  Stages:           %v\n", info.Stages)
	fmt.Fprintf(w, "  Kernel:           %d taps, sigma %.1f\n", info.KernelTaps, info.Sigma)
	fmt.Fprintf(w, "  Backend:          %s (SIMD %v)\n", info.Backend, info.SIMDEnabled)
	fmt.Fprintf(w, "  Gap threshold:    %.0f ms\n", info.GapThresholdMs)
	if info.Remapping {
		fmt.Fprintf(w, "  Acceleration:     %.0f%% %s\n", cfg.AccelerationFraction*100, cfg.AccelerationCurve)
		fmt.Fprintf(w, "  Deceleration:     %.0f%% %s\n", cfg.DecelerationFraction*100, cfg.DecelerationCurve)
	} else {
		fmt.Fprintf(w, "  Easing:           off\n")
	}
}

// writeKernel prints the smoothing taps and their DC gain.
func writeKernel(w io.Writer) error {
	kernel, err := filter.GaussianKernel(filter.KernelParams{
		Sigma:  humanizer.SmoothingSigma,
		Radius: humanizer.SmoothingRadius,
	}, simdops.Scalar())
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Kernel ===")
	for i, k := range kernel {
		fmt.Fprintf(w, " %.5f", k)
		if (i+1)%kernelTapsPerLine == 0 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "\n  DC gain:          %.12f\n", floats.Sum(kernel))
	fmt.Fprintf(w, "  Centre tap:       %.5f\n", floats.Max(kernel))
	return nil
}

func writeSegments(w io.Writer, segments []humanizer.Sequence) {
	for i, s := range segments {
		if i == maxSegmentsToShow {
			fmt.Fprintf(w, "  ... %d more\n", len(segments)-i)
			return
		}
		fmt.Fprintf(w, "  #%-3d %5d points  %8.1f ms  %8.1f px\n",
			i, len(s), s.Duration(), s.PathLength())
	}
}

func analyzeScope(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	xs, ys, info, err := scope.ReadXY(f)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Scope ===")
	fmt.Fprintf(w, "  Sample rate:      %d Hz\n", info.SampleRate)
	fmt.Fprintf(w, "  Frames:           %d (%.3f s)\n", info.Frames, info.Duration)
	if info.Frames > 0 {
		fmt.Fprintf(w, "  X range:          [%.3f, %.3f]\n", floats.Min(xs), floats.Max(xs))
		fmt.Fprintf(w, "  Y range:          [%.3f, %.3f]\n", floats.Min(ys), floats.Max(ys))
	}
	return nil
}
