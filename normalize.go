package humanizer

// NormalizeTime spaces the timestamps of seg evenly between its first and
// last sample. Positions are unchanged and both endpoint times are kept
// exactly. Segments with fewer than two samples are returned as a copy.
func NormalizeTime(seg Sequence) Sequence {
	out := seg.Clone()
	n := len(seg)
	if n < minSegmentPoints {
		return out
	}

	start := seg[0].Time
	end := seg[n-1].Time
	span := end - start
	last := float64(n - 1)

	for i := 1; i < n-1; i++ {
		out[i].Time = min(start+(float64(i)/last)*span, end)
	}
	out[n-1].Time = end

	return out
}
