package humanizer

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-cursor-humanizer/internal/pipeline"
	"github.com/tphakala/go-cursor-humanizer/internal/simdops"
)

// build constructs the smoother, the stage plan and the runnable pipeline
// for h.config.
func (h *Humanizer) build() error {
	smoother, err := newSmoother(simdops.For(h.config.EnableSIMD))
	if err != nil {
		return fmt.Errorf("failed to create smoother: %w", err)
	}
	h.smoother = smoother

	plan, err := pipeline.BuildPlan(pipeline.PlanParams{
		Sigma:         SmoothingSigma,
		Radius:        smoother.Radius(),
		AccelFraction: h.config.AccelerationFraction,
		DecelFraction: h.config.DecelerationFraction,
		AccelCurve:    h.config.AccelerationCurve.String(),
		DecelCurve:    h.config.DecelerationCurve.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}
	h.plan = plan

	specs := plan.GetStages()
	stages := make([]pipeline.Stage[Sequence], 0, len(specs))
	for _, spec := range specs {
		stage, err := h.createStage(spec)
		if err != nil {
			return err
		}
		stages = append(stages, stage)
	}

	p, err := pipeline.New(stages...)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmpty) {
			return ErrEmptyPipeline
		}
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	h.pipe = p

	return nil
}

// createStage creates a Stage implementation for a StageSpec. The curves in
// a StageSpec are informational; the remap stage takes its curves from the
// validated config.
func (h *Humanizer) createStage(spec pipeline.StageSpec) (pipeline.Stage[Sequence], error) {
	switch spec.Type {
	case pipeline.StageSmooth:
		return &smoothStage{smoother: h.smoother}, nil

	case pipeline.StageNormalize:
		return normalizeStage{}, nil

	case pipeline.StageRemap:
		return &remapStage{params: h.config.remapParams()}, nil

	default:
		return nil, fmt.Errorf("unsupported stage type: %v", spec.Type)
	}
}
