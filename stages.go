package humanizer

import (
	"github.com/tphakala/go-cursor-humanizer/internal/filter"
)

// smoothStage wraps Gaussian smoothing with a preselected backend.
type smoothStage struct {
	smoother *filter.Smoother
}

func (s *smoothStage) Process(seg Sequence) (Sequence, error) {
	return smoothWith(seg, s.smoother), nil
}

func (s *smoothStage) Name() string {
	return "smooth(" + s.smoother.Backend() + ")"
}

// normalizeStage spaces timestamps evenly.
type normalizeStage struct{}

func (normalizeStage) Process(seg Sequence) (Sequence, error) {
	return NormalizeTime(seg), nil
}

func (normalizeStage) Name() string { return "normalize" }

// remapStage applies the easing windows.
type remapStage struct {
	params RemapParams
}

func (s *remapStage) Process(seg Sequence) (Sequence, error) {
	return Remap(seg, s.params), nil
}

func (s *remapStage) Name() string {
	return "remap(" + s.params.AccelerationCurve.String() + "/" + s.params.DecelerationCurve.String() + ")"
}
