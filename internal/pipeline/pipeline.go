// Package pipeline implements the staged processing architecture used by the
// humanizer. A plan is built from the requested parameters, then each stage
// in the plan transforms a whole value and hands its result to the next one.
package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a pipeline is built without stages.
var ErrEmpty = errors.New("pipeline has no stages")

// Stage represents a single processing stage.
// Each stage must be stateless across calls: Process may be invoked
// concurrently and must not retain or modify its input.
type Stage[T any] interface {
	// Process transforms a value and returns a new one.
	Process(input T) (T, error)

	// Name identifies the stage in plans and error messages.
	Name() string
}

// StageType identifies the type of processing stage.
type StageType int

const (
	// StageSmooth applies Gaussian positional smoothing.
	StageSmooth StageType = iota

	// StageNormalize spaces timestamps evenly across a segment.
	StageNormalize

	// StageRemap warps the time axis near the segment ends with easing curves.
	StageRemap
)

// String returns the stage type name.
func (t StageType) String() string {
	switch t {
	case StageSmooth:
		return "smooth"
	case StageNormalize:
		return "normalize"
	case StageRemap:
		return "remap"
	default:
		return fmt.Sprintf("StageType(%d)", int(t))
	}
}

// StageSpec specifies parameters for creating a stage.
type StageSpec struct {
	Type StageType

	// Smoothing parameters
	Sigma  float64 // Gaussian standard deviation in samples
	Radius int     // Kernel half-width in samples

	// Remap parameters
	AccelFraction float64 // Share of path length eased in
	DecelFraction float64 // Share of path length eased out
	AccelCurve    string  // Curve name for the acceleration window
	DecelCurve    string  // Curve name for the deceleration window
}

// PlanParams holds the parameters that decide which stages a plan contains.
type PlanParams struct {
	Sigma         float64
	Radius        int
	AccelFraction float64
	DecelFraction float64
	AccelCurve    string
	DecelCurve    string
}

// Plan is an ordered list of stage specifications.
type Plan struct {
	stages []StageSpec
}

// BuildPlan constructs the stage plan for the given parameters.
//
// Smoothing and time normalisation always run. The remap stage is added only
// when at least one easing window is non-empty, because with both fractions
// at zero it leaves every timestamp untouched.
func BuildPlan(params PlanParams) (*Plan, error) {
	if params.Sigma <= 0 {
		return nil, fmt.Errorf("invalid sigma: %f", params.Sigma)
	}
	if params.AccelFraction < 0 || params.DecelFraction < 0 {
		return nil, fmt.Errorf("invalid fractions: accel %f, decel %f", params.AccelFraction, params.DecelFraction)
	}

	p := &Plan{
		stages: make([]StageSpec, 0, defaultStageCapacity),
	}

	p.stages = append(p.stages,
		StageSpec{
			Type:   StageSmooth,
			Sigma:  params.Sigma,
			Radius: params.Radius,
		},
		StageSpec{
			Type: StageNormalize,
		},
	)

	if params.AccelFraction > 0 || params.DecelFraction > 0 {
		p.stages = append(p.stages, StageSpec{
			Type:          StageRemap,
			AccelFraction: params.AccelFraction,
			DecelFraction: params.DecelFraction,
			AccelCurve:    params.AccelCurve,
			DecelCurve:    params.DecelCurve,
		})
	}

	return p, nil
}

// GetStages returns a copy of the planned stages.
func (p *Plan) GetStages() []StageSpec {
	out := make([]StageSpec, len(p.stages))
	copy(out, p.stages)
	return out
}

// Has reports whether the plan contains a stage of type t.
func (p *Plan) Has(t StageType) bool {
	for _, s := range p.stages {
		if s.Type == t {
			return true
		}
	}
	return false
}

// Pipeline runs a fixed sequence of stages.
// A Pipeline is immutable after construction and safe for concurrent use
// as long as its stages are.
type Pipeline[T any] struct {
	stages []Stage[T]
}

// New builds a pipeline from stages, in order.
func New[T any](stages ...Stage[T]) (*Pipeline[T], error) {
	if len(stages) == 0 {
		return nil, ErrEmpty
	}
	for i, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("stage %d is nil", i)
		}
	}

	owned := make([]Stage[T], len(stages))
	copy(owned, stages)
	return &Pipeline[T]{stages: owned}, nil
}

// Run passes input through every stage in order.
// Errors are wrapped with the name of the failing stage.
func (p *Pipeline[T]) Run(input T) (T, error) {
	current := input
	for _, s := range p.stages {
		out, err := s.Process(current)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("stage %s: %w", s.Name(), err)
		}
		current = out
	}
	return current, nil
}

// Names returns the stage names in execution order.
func (p *Pipeline[T]) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Len returns the number of stages.
func (p *Pipeline[T]) Len() int {
	return len(p.stages)
}
