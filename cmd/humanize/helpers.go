package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	humanizer "github.com/tphakala/go-cursor-humanizer"
	"github.com/tphakala/go-cursor-humanizer/internal/config"
	"github.com/tphakala/go-cursor-humanizer/internal/report"
	"github.com/tphakala/go-cursor-humanizer/internal/scope"
	"github.com/tphakala/go-cursor-humanizer/internal/trace"
	"golang.org/x/sync/errgroup"
)

const outDirMode = 0o755

// curveProbes are the progress values printed by -list-curves.
var curveProbes = []float64{0.25, 0.5, 0.75}

// artifacts holds the optional output files of a single-file run.
type artifacts struct {
	plot       string
	timingPlot string
	html       string
	wav        string
	wavRate    int
}

// options holds the parsed command line.
type options struct {
	flags *flag.FlagSet

	configPath  string
	gap         float64
	accel       float64
	decel       float64
	accelCurve  string
	decelCurve  string
	simd        bool
	set         map[string]bool
	artifacts   artifacts
	listCurves  bool
	writeConfig string
	verbose     bool
	outDir      string
	jobs        int
	inputs      []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	def := humanizer.DefaultConfig()
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("humanize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file (flags override its values)")
	fs.Float64Var(&opts.gap, "gap", def.GapThresholdMs, "Segment gap threshold in ms")
	fs.Float64Var(&opts.accel, "accel", def.AccelerationFraction, "Acceleration window as a fraction of path length")
	fs.Float64Var(&opts.decel, "decel", def.DecelerationFraction, "Deceleration window as a fraction of path length")
	fs.StringVar(&opts.accelCurve, "accel-curve", def.AccelerationCurve.String(), "Acceleration easing curve")
	fs.StringVar(&opts.decelCurve, "decel-curve", def.DecelerationCurve.String(), "Deceleration easing curve")
	fs.BoolVar(&opts.simd, "simd", def.EnableSIMD, "Use SIMD kernels when available")
	fs.StringVar(&opts.artifacts.plot, "plot", "", "Write a raw vs humanized path plot (PNG, SVG or PDF)")
	fs.StringVar(&opts.artifacts.timingPlot, "timing-plot", "", "Write a sample timing plot (PNG, SVG or PDF)")
	fs.StringVar(&opts.artifacts.html, "html", "", "Write an interactive HTML chart page")
	fs.StringVar(&opts.artifacts.wav, "wav", "", "Write the humanized path as XY-oscilloscope audio")
	fs.IntVar(&opts.artifacts.wavRate, "wav-rate", scope.DefaultSampleRate, "Sample rate for -wav in Hz")
	fs.BoolVar(&opts.listCurves, "list-curves", false, "List easing curves and exit")
	fs.StringVar(&opts.writeConfig, "write-config", "", "Write the effective config as YAML")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	fs.StringVar(&opts.outDir, "out-dir", "", "Batch mode: write <name>.humanized.json files here")
	fs.IntVar(&opts.jobs, "jobs", defaultJobs, "Batch mode: files processed concurrently")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	opts.flags = fs
	opts.inputs = fs.Args()
	return opts, nil
}

// resolveConfig starts from the config file (or the defaults) and applies
// the flags given explicitly on the command line.
func (o *options) resolveConfig() (humanizer.Config, error) {
	cfg := humanizer.DefaultConfig()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return humanizer.Config{}, err
		}
		cfg = loaded
	}

	if o.set["gap"] {
		cfg.GapThresholdMs = o.gap
	}
	if o.set["accel"] {
		cfg.AccelerationFraction = o.accel
	}
	if o.set["decel"] {
		cfg.DecelerationFraction = o.decel
	}
	if o.set["simd"] {
		cfg.EnableSIMD = o.simd
	}
	if o.set["accel-curve"] {
		c, err := humanizer.ParseCurve(o.accelCurve)
		if err != nil {
			return humanizer.Config{}, fmt.Errorf("-accel-curve: %w", err)
		}
		cfg.AccelerationCurve = c
	}
	if o.set["decel-curve"] {
		c, err := humanizer.ParseCurve(o.decelCurve)
		if err != nil {
			return humanizer.Config{}, fmt.Errorf("-decel-curve: %w", err)
		}
		cfg.DecelerationCurve = c
	}

	if err := cfg.Validate(); err != nil {
		return humanizer.Config{}, err
	}
	return cfg, nil
}

func (o *options) hasArtifacts() bool {
	a := o.artifacts
	return a.plot != "" || a.timingPlot != "" || a.html != "" || a.wav != ""
}

// listCurves prints every easing curve with a few sample values.
func listCurves(w io.Writer) error {
	header := fmt.Sprintf("%-15s", "curve")
	for _, p := range curveProbes {
		header += fmt.Sprintf("  f(%.2f)", p)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, c := range humanizer.Curves() {
		line := fmt.Sprintf("%-15s", c)
		for _, p := range curveProbes {
			line += fmt.Sprintf("  %7.4f", c.Apply(p))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// processFile humanizes one trace file and writes the result.
func processFile(h *humanizer.Humanizer, inputPath, outputPath string) (raw, out humanizer.Sequence, err error) {
	raw, err = trace.LoadFile(inputPath)
	if err != nil {
		return nil, nil, err
	}

	out, err = h.Process(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("processing failed: %w", err)
	}

	if err := trace.SaveFile(outputPath, out); err != nil {
		return nil, nil, err
	}
	return raw, out, nil
}

// writeArtifacts renders the optional plots, chart page and scope audio.
func writeArtifacts(a artifacts, raw, out humanizer.Sequence) error {
	series := []report.Series{
		{Name: rawSeriesName, Sequence: raw, Points: true},
		{Name: humanizedSeriesName, Sequence: out},
	}

	if a.plot != "" {
		if err := report.SavePathPlot(a.plot, pathPlotTitle, series...); err != nil {
			return fmt.Errorf("failed to write path plot: %w", err)
		}
	}

	if a.timingPlot != "" {
		if err := report.SaveTimingPlot(a.timingPlot, timingPlotTitle, series...); err != nil {
			return fmt.Errorf("failed to write timing plot: %w", err)
		}
	}

	if a.html != "" {
		if err := saveHTML(a.html, series); err != nil {
			return err
		}
	}

	if a.wav != "" && len(out) > 0 {
		if err := scope.SaveWAV(a.wav, out, scope.Options{SampleRate: a.wavRate}); err != nil {
			return err
		}
	}
	return nil
}

func saveHTML(path string, series []report.Series) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := report.WriteHTML(f, htmlTitle, series...); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	return nil
}

// batchOutputPath returns the output file for input inside outDir.
func batchOutputPath(outDir, input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+humanizedSuffix+traceExt)
}

// batchResult records the outcome of one file in batch mode.
type batchResult struct {
	input     string
	output    string
	rawPoints int
	points    int
	err       error
}

// runBatch humanizes inputs into outDir with at most jobs files in flight.
// Results are returned in input order; files skipped after the first
// failure carry the cancellation error.
func runBatch(ctx context.Context, h *humanizer.Humanizer, inputs []string, outDir string, jobs int) ([]batchResult, error) {
	results := make([]batchResult, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := batchOutputPath(outDir, in)
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s and %s both map to %s", prev, in, out)
		}
		seen[out] = in
		results[i] = batchResult{input: in, output: out, err: context.Canceled}
	}

	if err := os.MkdirAll(outDir, outDirMode); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i := range results {
		r := &results[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				r.err = err
				return err
			}

			raw, out, err := processFile(h, r.input, r.output)
			r.err = err
			if err != nil {
				return fmt.Errorf("%s: %w", r.input, err)
			}
			r.rawPoints, r.points = len(raw), len(out)
			return nil
		})
	}

	return results, g.Wait()
}
