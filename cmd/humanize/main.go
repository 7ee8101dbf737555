// Command humanize turns recorded cursor traces into smooth, evenly timed
// trajectories.
//
// Usage:
//
//	humanize input.json output.json
//	humanize -accel 0.3 -decel-curve easeOutCubic input.json output.json
//	humanize -plot path.png -wav scope.wav input.json output.json
//	humanize -out-dir out/ -jobs 8 a.json b.json c.json
//
// A trace is a JSON array of [time_ms, x, y, cursor_type] records. Settings
// come from the optional -config YAML file; flags given on the command line
// override it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	humanizer "github.com/tphakala/go-cursor-humanizer"
	"github.com/tphakala/go-cursor-humanizer/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		humanizer.SetLogger(logger)
		defer humanizer.SetLogger(nil)
	}

	if opts.listCurves {
		return listCurves(stdout)
	}

	cfg, err := opts.resolveConfig()
	if err != nil {
		return err
	}

	if opts.writeConfig != "" {
		if err := config.Save(opts.writeConfig, cfg); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("Wrote config: %s", opts.writeConfig)
		}
		if len(opts.inputs) == 0 {
			return nil
		}
	}

	if len(opts.inputs) < minRequiredArgs {
		printUsage(stderr, opts.flags)
		return fmt.Errorf("insufficient arguments")
	}

	h, err := humanizer.New(&cfg)
	if err != nil {
		return fmt.Errorf("failed to create humanizer: %w", err)
	}

	if opts.verbose {
		info := h.Plan()
		log.Printf("Stages: %v", info.Stages)
		log.Printf("Kernel: %d taps, sigma %.1f (%s)", info.KernelTaps, info.Sigma, info.Backend)
		log.Printf("Gap threshold: %.0f ms", info.GapThresholdMs)
	}

	if opts.outDir != "" {
		if opts.hasArtifacts() {
			return fmt.Errorf("-plot, -timing-plot, -html and -wav need a single input, not -out-dir")
		}
		results, err := runBatch(context.Background(), h, opts.inputs, opts.outDir, opts.jobs)
		for _, r := range results {
			if r.err == nil {
				fmt.Fprintf(stdout, "%s -> %s (%d -> %d points)\n", r.input, r.output, r.rawPoints, r.points)
			}
		}
		return err
	}

	if len(opts.inputs) != singleFileArgs {
		printUsage(stderr, opts.flags)
		return fmt.Errorf("expected input and output paths, got %d arguments", len(opts.inputs))
	}

	raw, out, err := processFile(h, opts.inputs[0], opts.inputs[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s -> %s (%d -> %d points)\n", opts.inputs[0], opts.inputs[1], len(raw), len(out))

	return writeArtifacts(opts.artifacts, raw, out)
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	name := fs.Name()
	fmt.Fprintf(w, "Usage: %s [options] input.json output.json\n", name)
	fmt.Fprintf(w, "       %s [options] -out-dir DIR input.json...\n\n", name)
	fmt.Fprintf(w, "Options:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s rec.json smooth.json                     # Default settings\n", name)
	fmt.Fprintf(w, "  %s -config snappy.yaml rec.json smooth.json # Settings from file\n", name)
	fmt.Fprintf(w, "  %s -accel 0 -decel 0 rec.json smooth.json   # Smoothing and even timing only\n", name)
}
