package humanizer

// Segment splits seq into movement segments wherever two consecutive samples
// are more than gapThresholdMs apart. A gap exactly equal to the threshold
// does not split. Segments with fewer than two samples are dropped, so empty
// or single-sample input yields no segments.
//
// Returned segments are new slices and do not alias seq.
func Segment(seq Sequence, gapThresholdMs float64) []Sequence {
	if len(seq) < minSegmentPoints {
		return nil
	}

	var segments []Sequence
	start := 0
	for i := 1; i <= len(seq); i++ {
		if i < len(seq) && seq[i].Time-seq[i-1].Time <= gapThresholdMs {
			continue
		}
		if i-start >= minSegmentPoints {
			segments = append(segments, seq[start:i].Clone())
		}
		start = i
	}

	return segments
}
