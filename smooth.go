package humanizer

import (
	"github.com/tphakala/go-cursor-humanizer/internal/filter"
	"github.com/tphakala/go-cursor-humanizer/internal/simdops"
)

// defaultSmoother uses the scalar backend so Smooth is independent of CPU
// features.
var defaultSmoother = mustSmoother(simdops.Scalar())

func mustSmoother(ops *simdops.Ops) *filter.Smoother {
	s, err := newSmoother(ops)
	if err != nil {
		panic(err)
	}
	return s
}

func newSmoother(ops *simdops.Ops) (*filter.Smoother, error) {
	return filter.NewSmoother(filter.KernelParams{
		Sigma:  SmoothingSigma,
		Radius: SmoothingRadius,
	}, ops)
}

// Smooth applies a Gaussian filter (σ = 5 samples, radius 15) to the
// positions of seg. Samples near the ends see the edge sample repeated
// beyond the boundary. The first and last samples are never moved, and
// timestamps and cursor types pass through unchanged.
func Smooth(seg Sequence) Sequence {
	return smoothWith(seg, defaultSmoother)
}

func smoothWith(seg Sequence, s *filter.Smoother) Sequence {
	out := seg.Clone()
	n := len(seg)
	if n <= minSegmentPoints {
		return out
	}

	xs, ys := seg.coords()
	sx := s.Apply(xs)
	sy := s.Apply(ys)

	for i := 1; i < n-1; i++ {
		out[i].X = sx[i]
		out[i].Y = sy[i]
	}

	return out
}
