// Package humanizer resynthesizes recorded cursor trajectories into smooth,
// natural-looking playback trajectories.
//
// A recording is a [Sequence] of timestamped 2D positions. The humanizer
// splits it into movement segments at idle gaps, removes jitter with a
// Gaussian filter, spaces timestamps evenly and finally warps the time axis
// near the start and end of each segment with an easing curve so the cursor
// accelerates out of rest and decelerates into it.
//
// # Quick Start
//
// For one-shot processing with the default settings:
//
//	out, err := humanizer.Humanize(recording, humanizer.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated processing with the same settings, build a [Humanizer] once:
//
//	cfg := humanizer.DefaultConfig()
//	cfg.AccelerationCurve = humanizer.EaseInCubic
//	h, err := humanizer.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := h.Process(recording)
//
// # Pipeline
//
// Each segment is processed independently:
//
//	Input -> [Segment] -> [Smooth] -> [NormalizeTime] -> [Remap] -> Output
//	          (gaps)      (σ = 5)      (equal steps)     (easing)
//
// Smoothing is the only step that moves points; the two timing steps only
// rewrite timestamps. Segment boundaries keep their original start and end
// times, so the gaps between strokes survive unchanged. Segments with fewer
// than two points are dropped.
//
// # Easing Curves
//
// [Curve] is a closed set: [Linear] and the ease-in and ease-out variants of
// the quadratic, cubic, quartic and quintic polynomials. [Curves] lists them
// in a stable order and [ParseCurve] maps names such as "easeOutQuad" back to
// values.
//
// # Playback
//
// [Player] answers "which sample is shown at elapsed time t" by returning the
// first sample whose timestamp is at or after t, and can render the whole
// trajectory at a fixed frame rate, starting at the first timestamp and
// bounded by [MaxPlaybackFrames].
//
// # Thread Safety
//
// All functions are pure. A [Humanizer] holds only immutable state and is
// safe for concurrent use. Processing is deterministic: identical input and
// configuration produce bit-identical output on the same build. Setting
// [Config.EnableSIMD] to false also makes results independent of CPU features.
package humanizer
