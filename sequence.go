package humanizer

import (
	"github.com/tphakala/go-cursor-humanizer/internal/mathutil"
)

// Sample is one recorded cursor position.
type Sample struct {
	// Time is the timestamp in milliseconds.
	Time float64

	// X and Y are the position in screen pixels.
	X float64
	Y float64

	// CursorType is an opaque label carried through unchanged.
	CursorType string
}

// Sequence is a list of samples in ascending time order.
// Functions in this package never modify a Sequence they are given.
type Sequence []Sample

// Clone returns a copy of s. A nil sequence clones to an empty one.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Duration returns the time between the first and last sample.
func (s Sequence) Duration() float64 {
	if len(s) < minSegmentPoints {
		return 0
	}
	return s[len(s)-1].Time - s[0].Time
}

// IsSorted reports whether timestamps are non-decreasing.
func (s Sequence) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i].Time < s[i-1].Time {
			return false
		}
	}
	return true
}

// PathLength returns the total Euclidean length of the polyline.
func (s Sequence) PathLength() float64 {
	xs, ys := s.coords()
	return mathutil.PathLength(xs, ys)
}

// Times returns the timestamps as a slice.
func (s Sequence) Times() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Time
	}
	return out
}

// coords splits positions into separate x and y slices.
func (s Sequence) coords() (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}
