// Package simdops selects between SIMD-accelerated and scalar float64 kernels.
//
// The SIMD path delegates to github.com/tphakala/simd. The scalar path is a
// plain Go reference with a fixed summation order, so results do not depend
// on which instruction set the host CPU offers.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops bundles the vector operations used by kernel design and smoothing.
// Function pointers keep call sites independent of the selected backend.
type Ops struct {
	// Name identifies the backend ("simd" or "scalar").
	Name string

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// ConvolveValid computes valid convolution of signal with kernel:
	//   dst[i] = Σ signal[i+k] * kernel[k], len(dst) = len(signal)-len(kernel)+1
	ConvolveValid func(dst, signal, kernel []float64)
}

var (
	simdOps = Ops{
		Name:          "simd",
		Sum:           f64.Sum,
		Scale:         f64.Scale,
		ConvolveValid: f64.ConvolveValid,
	}
	scalarOps = Ops{
		Name:          "scalar",
		Sum:           scalarSum,
		Scale:         scalarScale,
		ConvolveValid: scalarConvolveValid,
	}
)

// For returns the SIMD backend when enableSIMD is set, otherwise the scalar one.
func For(enableSIMD bool) *Ops {
	if enableSIMD {
		return &simdOps
	}
	return &scalarOps
}

// SIMD returns the SIMD-accelerated operations.
func SIMD() *Ops {
	return &simdOps
}

// Scalar returns the pure Go reference operations.
func Scalar() *Ops {
	return &scalarOps
}

func scalarSum(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum
}

func scalarScale(dst, a []float64, s float64) {
	n := min(len(dst), len(a))
	for i := range n {
		dst[i] = a[i] * s
	}
}

// scalarDotProduct returns Σ a[i]*b[i] over the shorter of the two slices.
func scalarDotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	var sum float64
	for i := range n {
		sum += a[i] * b[i]
	}
	return sum
}

func scalarConvolveValid(dst, signal, kernel []float64) {
	k := len(kernel)
	if k == 0 || len(signal) < k {
		return
	}
	n := min(len(dst), len(signal)-k+1)
	for i := range n {
		dst[i] = scalarDotProduct(signal[i:i+k], kernel)
	}
}
