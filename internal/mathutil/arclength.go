// Package mathutil provides geometric helpers for trajectory processing.
package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// notFound is returned by search helpers when no index satisfies the condition.
const notFound = -1

// StepLengths returns the Euclidean distance between consecutive points.
// The result has len(xs)-1 elements, or none for fewer than two points.
// xs and ys must have equal length.
func StepLengths(xs, ys []float64) []float64 {
	n := min(len(xs), len(ys))
	if n < 2 {
		return []float64{}
	}

	steps := make([]float64, n-1)
	for i := 1; i < n; i++ {
		steps[i-1] = math.Hypot(xs[i]-xs[i-1], ys[i]-ys[i-1])
	}
	return steps
}

// CumulativeLength returns the arc length from the first point to each point.
// The result has the same length as the input, starts at 0 and is
// non-decreasing. Its last element is the total path length.
func CumulativeLength(xs, ys []float64) []float64 {
	n := min(len(xs), len(ys))
	cum := make([]float64, n)
	if n < 2 {
		return cum
	}

	floats.CumSum(cum[1:], StepLengths(xs, ys))
	return cum
}

// PathLength returns the total arc length of the polyline.
// It is the last element of CumulativeLength, so the two always agree
// bit for bit.
func PathLength(xs, ys []float64) float64 {
	cum := CumulativeLength(xs, ys)
	if len(cum) == 0 {
		return 0
	}
	return cum[len(cum)-1]
}

// FirstAtOrAbove returns the first index i >= from with cum[i] >= threshold,
// or -1 if there is none.
func FirstAtOrAbove(cum []float64, threshold float64, from int) int {
	for i := max(from, 0); i < len(cum); i++ {
		if cum[i] >= threshold {
			return i
		}
	}
	return notFound
}

// Speeds returns distance over time for each step, skipping steps whose
// duration is not positive. Units follow the inputs (typically px/ms).
func Speeds(xs, ys, times []float64) []float64 {
	steps := StepLengths(xs, ys)
	speeds := make([]float64, 0, len(steps))
	for i, d := range steps {
		dt := times[i+1] - times[i]
		if dt <= 0 {
			continue
		}
		speeds = append(speeds, d/dt)
	}
	return speeds
}

// Intervals returns the differences between consecutive timestamps.
func Intervals(times []float64) []float64 {
	if len(times) < 2 {
		return []float64{}
	}
	out := make([]float64, len(times)-1)
	for i := 1; i < len(times); i++ {
		out[i-1] = times[i] - times[i-1]
	}
	return out
}
