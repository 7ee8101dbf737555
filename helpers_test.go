package humanizer

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tphakala/go-cursor-humanizer/internal/testutil"
)

// Test constants
const (
	testTolerance   = 1e-9
	testCursorType  = "default"
	testMeanStepMs  = 16.0
	testJitterMs    = 6.0
	testNoiseAmpPx  = 3.0
	testStrokePts   = 120
	testSecondStart = 10_000.0
)

// approx compares sequences with a small absolute and relative tolerance.
var approx = cmpopts.EquateApprox(1e-12, 1e-9)

func diffSequences(want, got Sequence) string {
	return cmp.Diff(want, got, approx)
}

// noisyStroke returns a jittered, noisy stroke from (x0, y0) to (x1, y1)
// starting at start ms.
func noisyStroke(n int, start, x0, y0, x1, y1 float64, seed uint64) Sequence {
	xs, ys := testutil.Line(n, x0, y0, x1, y1)
	nx := testutil.Noise(n, testNoiseAmpPx, seed)
	ny := testutil.Noise(n, testNoiseAmpPx, seed+100)
	times := testutil.JitteredTimes(n, start, testMeanStepMs, testJitterMs, seed+200)

	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = Sample{Time: times[i], X: xs[i] + nx[i], Y: ys[i] + ny[i], CursorType: testCursorType}
	}
	return seq
}

// lineStroke returns an evenly spaced, evenly timed straight stroke.
func lineStroke(n int, start, step, x0, y0, x1, y1 float64) Sequence {
	xs, ys := testutil.Line(n, x0, y0, x1, y1)
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = Sample{Time: start + float64(i)*step, X: xs[i], Y: ys[i], CursorType: testCursorType}
	}
	return seq
}

// twoStrokes returns two noisy strokes separated by a long idle gap.
func twoStrokes() Sequence {
	first := noisyStroke(testStrokePts, 0, 100, 100, 800, 400, 1)
	second := noisyStroke(testStrokePts, testSecondStart, 800, 400, 200, 900, 2)
	return append(first, second...)
}

func samplesAt(times ...float64) Sequence {
	seq := make(Sequence, len(times))
	for i, tm := range times {
		seq[i] = Sample{Time: tm, X: float64(i), Y: float64(i), CursorType: testCursorType}
	}
	return seq
}
