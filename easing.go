package humanizer

import (
	"errors"
	"fmt"
)

// ErrUnknownCurve indicates a curve name or value outside the catalogue.
var ErrUnknownCurve = errors.New("unknown easing curve")

// Curve enumerates the easing functions available to the remapper.
// Every curve is non-decreasing on [0, 1] and maps 0 to 0 and 1 to 1.
type Curve int

const (
	// Linear leaves progress unchanged.
	Linear Curve = iota

	// EaseInQuad is t².
	EaseInQuad

	// EaseOutQuad is t(2-t).
	EaseOutQuad

	// EaseInCubic is t³.
	EaseInCubic

	// EaseOutCubic is (t-1)³+1.
	EaseOutCubic

	// EaseInQuart is t⁴.
	EaseInQuart

	// EaseOutQuart is 1-(t-1)⁴.
	EaseOutQuart

	// EaseInQuint is t⁵.
	EaseInQuint

	// EaseOutQuint is 1+(t-1)⁵.
	EaseOutQuint

	numCurves
)

var curveNames = [numCurves]string{
	Linear:       "linear",
	EaseInQuad:   "easeInQuad",
	EaseOutQuad:  "easeOutQuad",
	EaseInCubic:  "easeInCubic",
	EaseOutCubic: "easeOutCubic",
	EaseInQuart:  "easeInQuart",
	EaseOutQuart: "easeOutQuart",
	EaseInQuint:  "easeInQuint",
	EaseOutQuint: "easeOutQuint",
}

// Curves returns every curve in catalogue order.
func Curves() []Curve {
	out := make([]Curve, numCurves)
	for i := range out {
		out[i] = Curve(i)
	}
	return out
}

// ParseCurve returns the curve with the given name, e.g. "easeOutQuad".
func ParseCurve(name string) (Curve, error) {
	for i, n := range curveNames {
		if n == name {
			return Curve(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// Valid reports whether c is part of the catalogue.
func (c Curve) Valid() bool {
	return c >= 0 && c < numCurves
}

func (c Curve) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCurve, int(c))
	}
	return []byte(curveNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Apply evaluates the curve at progress t. Inputs outside [0, 1] are
// clamped. Values outside the catalogue behave like Linear.
func (c Curve) Apply(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}

	switch c {
	case EaseInQuad:
		return t * t
	case EaseOutQuad:
		return t * (2 - t)
	case EaseInCubic:
		return t * t * t
	case EaseOutCubic:
		u := t - 1
		return u*u*u + 1
	case EaseInQuart:
		return t * t * t * t
	case EaseOutQuart:
		u := t - 1
		return 1 - u*u*u*u
	case EaseInQuint:
		return t * t * t * t * t
	case EaseOutQuint:
		u := t - 1
		return 1 + u*u*u*u*u
	default:
		return t
	}
}
