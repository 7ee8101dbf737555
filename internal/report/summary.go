// Package report summarizes and visualizes cursor trajectories.
package report

import (
	"fmt"
	"io"

	humanizer "github.com/tphakala/go-cursor-humanizer"
	"github.com/tphakala/go-cursor-humanizer/internal/mathutil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a trajectory. Interval, length
// and speed figures only consider movement inside segments; idle gaps
// between segments are excluded.
type Summary struct {
	Points   int
	Segments int

	// DurationMs spans the first to the last sample, gaps included.
	DurationMs float64

	// MovingMs is the summed duration of all segments.
	MovingMs float64

	// PathLength is the summed path length of all segments in pixels.
	PathLength float64

	// Sampling intervals in milliseconds.
	MeanIntervalMs   float64
	StdDevIntervalMs float64
	MaxIntervalMs    float64

	// Speeds in pixels per millisecond.
	MeanSpeed float64
	MaxSpeed  float64
}

// Summarize computes statistics of seq using gapThresholdMs to find segments.
func Summarize(seq humanizer.Sequence, gapThresholdMs float64) Summary {
	s := Summary{
		Points:     len(seq),
		DurationMs: seq.Duration(),
	}

	var intervals, speeds []float64
	for _, seg := range humanizer.Segment(seq, gapThresholdMs) {
		s.Segments++
		s.MovingMs += seg.Duration()
		s.PathLength += seg.PathLength()

		xs, ys := coords(seg)
		times := seg.Times()
		intervals = append(intervals, mathutil.Intervals(times)...)
		speeds = append(speeds, mathutil.Speeds(xs, ys, times)...)
	}

	if len(intervals) > 0 {
		s.MeanIntervalMs = stat.Mean(intervals, nil)
		s.MaxIntervalMs = floats.Max(intervals)
	}
	if len(intervals) > 1 {
		s.StdDevIntervalMs = stat.StdDev(intervals, nil)
	}
	if s.MovingMs > 0 {
		s.MeanSpeed = s.PathLength / s.MovingMs
	}
	if len(speeds) > 0 {
		s.MaxSpeed = floats.Max(speeds)
	}

	return s
}

// WriteText prints s as aligned key/value lines.
func (s Summary) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"  Points:           %d\n"+
			"  Segments:         %d\n"+
			"  Duration:         %.1f ms (moving %.1f ms)\n"+
			"  Path length:      %.1f px\n"+
			"  Interval:         mean %.2f ms, std %.2f ms, max %.2f ms\n"+
			"  Speed:            mean %.3f px/ms, max %.3f px/ms\n",
		s.Points, s.Segments,
		s.DurationMs, s.MovingMs,
		s.PathLength,
		s.MeanIntervalMs, s.StdDevIntervalMs, s.MaxIntervalMs,
		s.MeanSpeed, s.MaxSpeed)
	return err
}

func coords(seq humanizer.Sequence) (xs, ys []float64) {
	xs = make([]float64, len(seq))
	ys = make([]float64, len(seq))
	for i, p := range seq {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}
