package humanizer

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-cursor-humanizer/internal/filter"
	"github.com/tphakala/go-cursor-humanizer/internal/pipeline"
)

// Config holds humanizer configuration.
type Config struct {
	// GapThresholdMs is the idle time in milliseconds that separates two
	// movement segments. A gap strictly greater than this splits.
	GapThresholdMs float64

	// AccelerationFraction is the share of each segment's path length, in
	// [0, 1], over which the cursor eases in.
	AccelerationFraction float64

	// DecelerationFraction is the share of each segment's path length, in
	// [0, 1], over which the cursor eases out. The two fractions must not
	// sum to more than 1.
	DecelerationFraction float64

	// AccelerationCurve shapes the acceleration window.
	AccelerationCurve Curve

	// DecelerationCurve shapes the deceleration window.
	DecelerationCurve Curve

	// EnableSIMD allows SIMD kernels for smoothing.
	// Set to false to force the pure Go implementation.
	EnableSIMD bool
}

// Common errors returned by the humanizer.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid humanizer configuration")

	// ErrEmptyPipeline indicates a pipeline was built without stages.
	ErrEmptyPipeline = errors.New("empty processing pipeline")
)

// Validate checks if the configuration is valid. Nothing is clamped:
// out-of-range values are reported, never corrected.
func (c *Config) Validate() error {
	if math.IsNaN(c.GapThresholdMs) || math.IsInf(c.GapThresholdMs, 0) || c.GapThresholdMs <= 0 {
		return fmt.Errorf("%w: gap threshold must be positive, got %v", ErrInvalidConfig, c.GapThresholdMs)
	}

	if !validFraction(c.AccelerationFraction) {
		return fmt.Errorf("%w: acceleration fraction must be in [0, 1], got %v", ErrInvalidConfig, c.AccelerationFraction)
	}

	if !validFraction(c.DecelerationFraction) {
		return fmt.Errorf("%w: deceleration fraction must be in [0, 1], got %v", ErrInvalidConfig, c.DecelerationFraction)
	}

	if sum := c.AccelerationFraction + c.DecelerationFraction; sum > 1 {
		return fmt.Errorf("%w: acceleration and deceleration fractions sum to %v (max 1)", ErrInvalidConfig, sum)
	}

	if !c.AccelerationCurve.Valid() {
		return fmt.Errorf("%w: acceleration curve: %w (%d)", ErrInvalidConfig, ErrUnknownCurve, int(c.AccelerationCurve))
	}

	if !c.DecelerationCurve.Valid() {
		return fmt.Errorf("%w: deceleration curve: %w (%d)", ErrInvalidConfig, ErrUnknownCurve, int(c.DecelerationCurve))
	}

	return nil
}

func validFraction(f float64) bool {
	return f >= 0 && f <= 1
}

// Humanizer processes recordings with a fixed configuration.
// It holds only immutable state and is safe for concurrent use.
type Humanizer struct {
	config   Config
	smoother *filter.Smoother
	plan     *pipeline.Plan
	pipe     *pipeline.Pipeline[Sequence]
}

// New creates a Humanizer after validating config.
// The config is copied; later changes to it have no effect.
func New(config *Config) (*Humanizer, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	h := &Humanizer{config: *config}
	if err := h.build(); err != nil {
		return nil, err
	}

	Logger().Debug("humanizer created",
		"stages", h.pipe.Names(),
		"backend", h.smoother.Backend(),
		"gap_ms", h.config.GapThresholdMs)

	return h, nil
}

// Config returns a copy of the configuration in use.
func (h *Humanizer) Config() Config {
	return h.config
}

// Process humanizes seq. The input is split into segments, each segment is
// run through the stage pipeline on its own, and the results are
// concatenated in order. Degenerate input produces an empty sequence.
func (h *Humanizer) Process(seq Sequence) (Sequence, error) {
	segments, err := h.ProcessSegments(seq)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, s := range segments {
		total += len(s)
	}

	out := make(Sequence, 0, total)
	for _, s := range segments {
		out = append(out, s...)
	}
	return out, nil
}

// ProcessSegments is like Process but returns each humanized segment
// separately.
func (h *Humanizer) ProcessSegments(seq Sequence) ([]Sequence, error) {
	segments := Segment(seq, h.config.GapThresholdMs)

	kept := 0
	out := make([]Sequence, 0, len(segments))
	for i, seg := range segments {
		processed, err := h.pipe.Run(seg)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		kept += len(processed)
		out = append(out, processed)
	}

	Logger().Debug("processed recording",
		"samples", len(seq),
		"segments", len(out),
		"dropped", len(seq)-kept)

	return out, nil
}

// Humanize processes seq with config in one call.
func Humanize(seq Sequence, config Config) (Sequence, error) {
	h, err := New(&config)
	if err != nil {
		return nil, err
	}
	return h.Process(seq)
}

// Info describes the processing plan of a Humanizer.
type Info struct {
	// Stages lists stage names in execution order.
	Stages []string

	// KernelTaps is the number of Gaussian filter taps.
	KernelTaps int

	// Sigma is the Gaussian standard deviation in samples.
	Sigma float64

	// SIMDEnabled indicates if SIMD kernels are in use.
	SIMDEnabled bool

	// Backend names the numeric backend ("simd" or "scalar").
	Backend string

	// Remapping reports whether the time-warping stage runs. It is skipped
	// when both easing fractions are zero.
	Remapping bool

	// GapThresholdMs is the segmentation threshold.
	GapThresholdMs float64
}

// Plan returns information about the processing plan.
func (h *Humanizer) Plan() Info {
	return Info{
		Stages:         h.pipe.Names(),
		KernelTaps:     len(h.smoother.Kernel()),
		Sigma:          SmoothingSigma,
		SIMDEnabled:    h.config.EnableSIMD,
		Backend:        h.smoother.Backend(),
		Remapping:      h.plan.Has(pipeline.StageRemap),
		GapThresholdMs: h.config.GapThresholdMs,
	}
}
