package humanizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitSteps returns n samples on the x axis one pixel apart, 10 ms apart.
func unitSteps(n int) Sequence {
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = Sample{Time: float64(i) * 10, X: float64(i), CursorType: testCursorType}
	}
	return seq
}

func TestEasingWindows(t *testing.T) {
	cum := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tests := []struct {
		name           string
		cum            []float64
		accel, decel   float64
		wantAccelEnd   int
		wantDecelStart int
	}{
		{"both_zero", cum, 0, 0, 0, 10},
		{"quarter_half", cum, 0.25, 0.5, 3, 5},
		{"accel_only", cum, 0.25, 0, 3, 10},
		{"decel_only", cum, 0, 0.25, 0, 8},
		{"shared_boundary", cum, 0.5, 0.5, 5, 5},
		{"full_accel", cum, 1, 0, 10, 10},
		{"full_decel", cum, 0, 1, 0, 1},
		{"accel_beyond_decel_not_found", cum, 0.8, 0.5, 0, 5},
		{"trailing_stationary_no_decel", []float64{0, 1, 2, 2, 2}, 0, 0, 0, 4},
		{"trailing_stationary_decel", []float64{0, 1, 2, 2, 2}, 0, 0.5, 0, 1},
		{"stationary_path", []float64{0, 0, 0}, 0.25, 0.25, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accelEnd, decelStart := easingWindows(tt.cum, tt.accel, tt.decel)
			assert.Equal(t, tt.wantAccelEnd, accelEnd, "accel end")
			assert.Equal(t, tt.wantDecelStart, decelStart, "decel start")
		})
	}
}

func TestRemap_Windows(t *testing.T) {
	seg := unitSteps(11)
	got := Remap(seg, RemapParams{
		AccelerationFraction: 0.25,
		DecelerationFraction: 0.5,
		AccelerationCurve:    EaseInQuad,
		DecelerationCurve:    EaseOutQuad,
	})

	want := []float64{
		0, 30.0 / 9, 120.0 / 9, 30, // acceleration window [0, 30]
		40,                     // middle
		50, 68, 82, 92, 98, 100, // deceleration window [50, 100]
	}
	assert.InDeltaSlice(t, want, got.Times(), testTolerance)
}

func TestRemap_ZeroFractionsLeaveTimesUnchanged(t *testing.T) {
	seg := NormalizeTime(noisyStroke(90, 0, 0, 0, 400, 300, 10))
	// Trailing stationary samples must not open a deceleration window.
	last := seg[len(seg)-1]
	seg = append(seg, Sample{Time: last.Time + 5, X: last.X, Y: last.Y}, Sample{Time: last.Time + 10, X: last.X, Y: last.Y})

	for _, c := range Curves() {
		got := Remap(seg, RemapParams{AccelerationCurve: c, DecelerationCurve: c})
		assert.Equal(t, seg, got, "curve %s", c)
	}
}

func TestRemap_LinearLeavesTimesUnchanged(t *testing.T) {
	seg := NormalizeTime(noisyStroke(90, 0, 0, 0, 400, 300, 11))
	got := Remap(seg, RemapParams{
		AccelerationFraction: 0.4,
		DecelerationFraction: 0.4,
		AccelerationCurve:    Linear,
		DecelerationCurve:    Linear,
	})
	assert.Equal(t, seg.Times(), got.Times())
}

func TestRemap_Invariants(t *testing.T) {
	seg := NormalizeTime(Smooth(noisyStroke(150, 500, 0, 0, 700, 250, 12)))

	for _, accel := range Curves() {
		for _, decel := range Curves() {
			got := Remap(seg, RemapParams{
				AccelerationFraction: 0.3,
				DecelerationFraction: 0.3,
				AccelerationCurve:    accel,
				DecelerationCurve:    decel,
			})
			require.Len(t, got, len(seg))

			assert.Equal(t, seg[0].Time, got[0].Time)
			assert.Equal(t, seg[len(seg)-1].Time, got[len(got)-1].Time)
			assert.True(t, got.IsSorted(), "%s/%s output not sorted", accel, decel)
			for i := range seg {
				if seg[i].X != got[i].X || seg[i].Y != got[i].Y {
					t.Fatalf("%s/%s moved point %d", accel, decel, i)
				}
			}
		}
	}
}

func TestRemap_FullOverlapStaysSorted(t *testing.T) {
	seg := NormalizeTime(noisyStroke(40, 0, 0, 0, 100, 100, 13))

	got := Remap(seg, RemapParams{
		AccelerationFraction: 0.5,
		DecelerationFraction: 0.5,
		AccelerationCurve:    EaseOutQuint,
		DecelerationCurve:    EaseInQuint,
	})
	assert.True(t, got.IsSorted())
}

func TestRemap_ZeroDurationWindow(t *testing.T) {
	seg := Sequence{pt(100, 0, 0), pt(100, 1, 0), pt(100, 2, 0), pt(100, 3, 0)}

	got := Remap(seg, RemapParams{
		AccelerationFraction: 0.5,
		DecelerationFraction: 0.5,
		AccelerationCurve:    EaseInQuad,
		DecelerationCurve:    EaseOutQuad,
	})
	for _, s := range got {
		assert.False(t, math.IsNaN(s.Time))
		assert.Equal(t, 100.0, s.Time)
	}
}

func TestRemap_DoesNotMutateInput(t *testing.T) {
	seg := unitSteps(11)
	orig := seg.Clone()

	_ = Remap(seg, RemapParams{AccelerationFraction: 0.5, AccelerationCurve: EaseInCubic})
	assert.Equal(t, orig, seg)
}

func TestRemap_Degenerate(t *testing.T) {
	assert.Empty(t, Remap(nil, RemapParams{AccelerationFraction: 0.5}))

	one := samplesAt(7)
	assert.Equal(t, one, Remap(one, RemapParams{AccelerationFraction: 0.5, AccelerationCurve: EaseInQuad}))
}
