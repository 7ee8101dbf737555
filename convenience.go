package humanizer

import "math"

// DefaultConfig returns the default configuration: a 500 ms gap threshold
// and quadratic easing over the first and last quarter of each stroke.
func DefaultConfig() Config {
	return Config{
		GapThresholdMs:       DefaultGapThresholdMs,
		AccelerationFraction: DefaultAccelerationFraction,
		DecelerationFraction: DefaultDecelerationFraction,
		AccelerationCurve:    EaseInQuad,
		DecelerationCurve:    EaseOutQuad,
		EnableSIMD:           true,
	}
}

// ConfigSubtle returns a configuration with short quadratic easing windows.
func ConfigSubtle() Config {
	c := DefaultConfig()
	c.AccelerationFraction = subtleFraction
	c.DecelerationFraction = subtleFraction
	return c
}

// ConfigSnappy returns a configuration with long quartic easing windows,
// giving a pronounced start and stop.
func ConfigSnappy() Config {
	c := DefaultConfig()
	c.AccelerationFraction = snappyFraction
	c.DecelerationFraction = snappyFraction
	c.AccelerationCurve = EaseInQuart
	c.DecelerationCurve = EaseOutQuart
	return c
}

// Window identifies one of the two easing windows.
type Window int

const (
	// AccelerationWindow is the window at the start of a segment.
	AccelerationWindow Window = iota

	// DecelerationWindow is the window at the end of a segment.
	DecelerationWindow
)

// ClampFractions applies the control-surface rule for editing fractions:
// both values are clamped to [0, 1], then the edited one is reduced so the
// pair sums to at most 1. The other value is never changed. Any Window other
// than AccelerationWindow edits the deceleration fraction.
//
// Config.Validate does not clamp; use this before building a Config from
// interactive input.
func ClampFractions(accel, decel float64, edited Window) (float64, float64) {
	accel = clamp01(accel)
	decel = clamp01(decel)

	changed, other := &decel, accel
	if edited == AccelerationWindow {
		changed, other = &accel, decel
	}

	*changed = min(*changed, 1-other)

	// 1-other can round up by one ulp.
	for *changed+other > 1 {
		*changed = math.Nextafter(*changed, 0)
	}

	return accel, decel
}

// clamp01 clamps v into [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}
