package humanizer

import (
	"github.com/tphakala/go-cursor-humanizer/internal/mathutil"
)

// RemapParams selects the easing windows applied by Remap.
type RemapParams struct {
	// AccelerationFraction is the share of path length eased in at the start.
	AccelerationFraction float64

	// DecelerationFraction is the share of path length eased out at the end.
	DecelerationFraction float64

	AccelerationCurve Curve
	DecelerationCurve Curve
}

// remapParams extracts the remap settings from a config.
func (c *Config) remapParams() RemapParams {
	return RemapParams{
		AccelerationFraction: c.AccelerationFraction,
		DecelerationFraction: c.DecelerationFraction,
		AccelerationCurve:    c.AccelerationCurve,
		DecelerationCurve:    c.DecelerationCurve,
	}
}

// Remap warps the time axis of seg near its ends.
//
// The acceleration window runs from the first sample to the first sample
// whose cumulative path length reaches AccelerationFraction of the total.
// The deceleration window starts at the first sample whose cumulative
// length reaches the total minus DecelerationFraction of it, and runs to the
// last sample. Inside each window time progress is passed through the
// window's curve; the window's own start and end times are kept.
//
// Positions, the segment's first and last times and everything between the
// two windows are unchanged. Both windows read the input timestamps; where
// they overlap the deceleration window wins.
func Remap(seg Sequence, p RemapParams) Sequence {
	out := seg.Clone()
	n := len(seg)
	if n < minSegmentPoints {
		return out
	}

	xs, ys := seg.coords()
	accelEnd, decelStart := easingWindows(mathutil.CumulativeLength(xs, ys), p.AccelerationFraction, p.DecelerationFraction)

	easeWindow(out, seg, 0, accelEnd, p.AccelerationCurve)
	easeWindow(out, seg, decelStart, n-1, p.DecelerationCurve)

	return out
}

// easingWindows returns the last index of the acceleration window and the
// first index of the deceleration window for a cumulative length profile.
//
// A zero fraction gives an empty window: index 0 for acceleration and the
// last index for deceleration. Otherwise the search starts at index 1. The
// deceleration boundary ends the walk, so an acceleration boundary that
// would lie beyond it is treated as not found.
func easingWindows(cum []float64, accel, decel float64) (accelEnd, decelStart int) {
	last := len(cum) - 1
	total := cum[last]

	decelStart = last
	if decel > 0 {
		if i := mathutil.FirstAtOrAbove(cum, total-total*decel, 1); i >= 0 {
			decelStart = i
		}
	}

	if accel > 0 {
		if i := mathutil.FirstAtOrAbove(cum, total*accel, 1); i >= 0 && i <= decelStart {
			accelEnd = i
		}
	}

	return accelEnd, decelStart
}

// easeWindow rewrites dst[lo..hi] times from src through curve. Windows
// that are empty or span no time are left alone.
func easeWindow(dst, src Sequence, lo, hi int, curve Curve) {
	if hi <= lo || curve == Linear {
		return
	}

	start := src[lo].Time
	end := src[hi].Time
	span := end - start
	if span <= 0 {
		return
	}

	for i := lo + 1; i < hi; i++ {
		progress := (src[i].Time - start) / span
		dst[i].Time = min(start+curve.Apply(progress)*span, end)
	}
	dst[lo].Time = start
	dst[hi].Time = end
}
