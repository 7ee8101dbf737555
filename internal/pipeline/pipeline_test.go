package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcStage struct {
	name string
	fn   func([]int) ([]int, error)
}

func (s funcStage) Process(in []int) ([]int, error) { return s.fn(in) }
func (s funcStage) Name() string                     { return s.name }

func appendStage(name string, v int) funcStage {
	return funcStage{name: name, fn: func(in []int) ([]int, error) {
		out := make([]int, len(in), len(in)+1)
		copy(out, in)
		return append(out, v), nil
	}}
}

func TestBuildPlan(t *testing.T) {
	tests := []struct {
		name      string
		params    PlanParams
		wantTypes []StageType
	}{
		{
			name:      "both_windows",
			params:    PlanParams{Sigma: 5, AccelFraction: 0.25, DecelFraction: 0.25, AccelCurve: "easeInQuad", DecelCurve: "easeOutQuad"},
			wantTypes: []StageType{StageSmooth, StageNormalize, StageRemap},
		},
		{
			name:      "accel_only",
			params:    PlanParams{Sigma: 5, AccelFraction: 0.5},
			wantTypes: []StageType{StageSmooth, StageNormalize, StageRemap},
		},
		{
			name:      "no_windows",
			params:    PlanParams{Sigma: 5},
			wantTypes: []StageType{StageSmooth, StageNormalize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BuildPlan(tt.params)
			require.NoError(t, err)

			stages := p.GetStages()
			require.Len(t, stages, len(tt.wantTypes))
			for i, want := range tt.wantTypes {
				assert.Equal(t, want, stages[i].Type, "stage %d", i)
				assert.True(t, p.Has(want))
			}
		})
	}
}

func TestBuildPlan_CarriesParameters(t *testing.T) {
	p, err := BuildPlan(PlanParams{
		Sigma: 5, Radius: 15,
		AccelFraction: 0.1, DecelFraction: 0.3,
		AccelCurve: "easeInCubic", DecelCurve: "easeOutQuint",
	})
	require.NoError(t, err)

	stages := p.GetStages()
	assert.Equal(t, 5.0, stages[0].Sigma)
	assert.Equal(t, 15, stages[0].Radius)
	assert.Equal(t, 0.1, stages[2].AccelFraction)
	assert.Equal(t, 0.3, stages[2].DecelFraction)
	assert.Equal(t, "easeInCubic", stages[2].AccelCurve)
	assert.Equal(t, "easeOutQuint", stages[2].DecelCurve)
}

func TestBuildPlan_Invalid(t *testing.T) {
	_, err := BuildPlan(PlanParams{Sigma: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sigma")

	_, err = BuildPlan(PlanParams{Sigma: 5, AccelFraction: -0.1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid fractions")
}

func TestPlan_GetStagesIsCopy(t *testing.T) {
	p, err := BuildPlan(PlanParams{Sigma: 5})
	require.NoError(t, err)

	stages := p.GetStages()
	stages[0].Sigma = 99
	assert.Equal(t, 5.0, p.GetStages()[0].Sigma)
}

func TestStageType_String(t *testing.T) {
	assert.Equal(t, "smooth", StageSmooth.String())
	assert.Equal(t, "normalize", StageNormalize.String())
	assert.Equal(t, "remap", StageRemap.String())
	assert.Equal(t, "StageType(9)", StageType(9).String())
}

func TestPipeline_RunsInOrder(t *testing.T) {
	p, err := New[[]int](appendStage("a", 1), appendStage("b", 2), appendStage("c", 3))
	require.NoError(t, err)

	input := []int{0}
	out, err := p.Run(input)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, out)
	assert.Equal(t, []int{0}, input, "input must not be modified")
	assert.Equal(t, []string{"a", "b", "c"}, p.Names())
	assert.Equal(t, 3, p.Len())
}

func TestPipeline_StageErrorStops(t *testing.T) {
	boom := errors.New("boom")
	calledAfter := false

	p, err := New[[]int](
		appendStage("first", 1),
		funcStage{name: "broken", fn: func([]int) ([]int, error) { return nil, boom }},
		funcStage{name: "after", fn: func(in []int) ([]int, error) {
			calledAfter = true
			return in, nil
		}},
	)
	require.NoError(t, err)

	out, err := p.Run([]int{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stage broken")
	assert.Nil(t, out)
	assert.False(t, calledAfter)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New[[]int]()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New[[]int](appendStage("a", 1), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage 1 is nil")
}
