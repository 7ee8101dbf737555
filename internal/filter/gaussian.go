// Package filter provides kernel design and convolution for trajectory smoothing.
package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/go-cursor-humanizer/internal/simdops"
)

const (
	// Kernel design constants
	minSigma        = 1e-3
	maxKernelRadius = 4096

	// Radius in standard deviations. Beyond 3σ the weights are < 1.2% of
	// the centre tap.
	radiusSigmas = 3.0

	// Gaussian exponent factor: w[k] = exp(gaussianExponent * k² / σ²)
	gaussianExponent = -0.5

	// Kernel normalization
	kernelGainTarget = 1.0
	sumZeroThreshold = 1e-300
)

// KernelParams holds parameters for Gaussian kernel design.
type KernelParams struct {
	// Sigma is the standard deviation in samples.
	Sigma float64

	// Radius is the half-width of the kernel in samples. The kernel has
	// 2*Radius+1 taps. Zero selects ceil(3σ).
	Radius int
}

// Validate checks if kernel parameters are valid.
func (kp *KernelParams) Validate() error {
	if math.IsNaN(kp.Sigma) || math.IsInf(kp.Sigma, 0) || kp.Sigma < minSigma {
		return fmt.Errorf("invalid sigma: %f (minimum %g)", kp.Sigma, minSigma)
	}

	if kp.Radius < 0 {
		return fmt.Errorf("invalid radius: %d (must be non-negative)", kp.Radius)
	}

	if kp.Radius > maxKernelRadius || RadiusFor(kp.Sigma) > maxKernelRadius {
		return fmt.Errorf("kernel too wide: sigma %f, radius %d (maximum radius %d)", kp.Sigma, kp.Radius, maxKernelRadius)
	}

	return nil
}

// RadiusFor returns the default kernel radius ceil(3σ) for sigma.
func RadiusFor(sigma float64) int {
	return int(math.Ceil(radiusSigmas * sigma))
}

// GaussianKernel designs a discrete Gaussian kernel.
//
// Weights are w[k] = exp(-0.5 * k² / σ²) for k in [-r, r], normalized so
// that Σw = 1. The result has 2r+1 taps and is symmetric around the centre
// tap at index r.
//
// The ops argument selects the vector backend used for normalization; nil
// selects the scalar reference.
func GaussianKernel(params KernelParams, ops *simdops.Ops) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if ops == nil {
		ops = simdops.Scalar()
	}

	radius := params.Radius
	if radius == 0 {
		radius = RadiusFor(params.Sigma)
	}

	kernel := make([]float64, 2*radius+1)
	variance := params.Sigma * params.Sigma

	for i := range kernel {
		k := float64(i - radius)
		kernel[i] = math.Exp(gaussianExponent * k * k / variance)
	}

	sum := ops.Sum(kernel)
	if sum > sumZeroThreshold {
		ops.Scale(kernel, kernel, kernelGainTarget/sum)
	}

	return kernel, nil
}

// Smoother applies a fixed kernel to signals with edge replication.
// A Smoother is immutable after construction and safe for concurrent use.
type Smoother struct {
	kernel []float64
	radius int
	ops    *simdops.Ops
}

// NewSmoother designs a Gaussian kernel and wraps it in a Smoother.
func NewSmoother(params KernelParams, ops *simdops.Ops) (*Smoother, error) {
	if ops == nil {
		ops = simdops.Scalar()
	}

	kernel, err := GaussianKernel(params, ops)
	if err != nil {
		return nil, fmt.Errorf("failed to design kernel: %w", err)
	}

	return &Smoother{
		kernel: kernel,
		radius: len(kernel) / 2,
		ops:    ops,
	}, nil
}

// Kernel returns a copy of the kernel taps.
func (s *Smoother) Kernel() []float64 {
	out := make([]float64, len(s.kernel))
	copy(out, s.kernel)
	return out
}

// Radius returns the kernel half-width in samples.
func (s *Smoother) Radius() int {
	return s.radius
}

// Backend returns the name of the vector backend in use.
func (s *Smoother) Backend() string {
	return s.ops.Name
}

// Apply convolves src with the kernel and returns a new slice of the same
// length. Indices outside [0, len(src)-1] are clamped to the nearest edge
// sample (edge replication, not zero padding).
func (s *Smoother) Apply(src []float64) []float64 {
	n := len(src)
	dst := make([]float64, n)
	if n == 0 {
		return dst
	}

	// Pad with replicated edges so a valid convolution yields exactly n outputs.
	padded := make([]float64, n+2*s.radius)
	for i := range padded {
		padded[i] = src[clampIndex(i-s.radius, n)]
	}

	s.ops.ConvolveValid(dst, padded, s.kernel)
	return dst
}

// clampIndex clamps i into [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
