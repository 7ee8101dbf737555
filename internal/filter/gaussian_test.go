package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-cursor-humanizer/internal/simdops"
	"github.com/tphakala/go-cursor-humanizer/internal/testutil"
)

const (
	// Test kernel parameters
	testSigma1   = 1.0
	testSigma2_5 = 2.5
	testSigma5   = 5.0

	// Test tolerances
	kernelTolerance = 1e-12
	signalTolerance = 1e-9
)

func TestKernelParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  KernelParams
		wantErr bool
	}{
		{"valid_default_radius", KernelParams{Sigma: testSigma5}, false},
		{"valid_explicit_radius", KernelParams{Sigma: testSigma5, Radius: 4}, false},
		{"zero_sigma", KernelParams{Sigma: 0}, true},
		{"negative_sigma", KernelParams{Sigma: -1}, true},
		{"nan_sigma", KernelParams{Sigma: math.NaN()}, true},
		{"inf_sigma", KernelParams{Sigma: math.Inf(1)}, true},
		{"negative_radius", KernelParams{Sigma: testSigma5, Radius: -1}, true},
		{"too_wide", KernelParams{Sigma: 10000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRadiusFor(t *testing.T) {
	assert.Equal(t, 15, RadiusFor(testSigma5))
	assert.Equal(t, 8, RadiusFor(testSigma2_5))
	assert.Equal(t, 3, RadiusFor(testSigma1))
}

func TestGaussianKernel_Shape(t *testing.T) {
	for _, ops := range []*simdops.Ops{simdops.Scalar(), simdops.SIMD()} {
		t.Run(ops.Name, func(t *testing.T) {
			kernel, err := GaussianKernel(KernelParams{Sigma: testSigma5}, ops)
			require.NoError(t, err)

			assert.Len(t, kernel, 31, "sigma 5 gives radius 15")
			testutil.AssertSymmetric(t, kernel, kernelTolerance)
			testutil.AssertCenterIsMax(t, kernel)
			testutil.AssertUnitSum(t, kernel, kernelTolerance)
			testutil.AssertNoNaNOrInf(t, kernel)
		})
	}
}

func TestGaussianKernel_Weights(t *testing.T) {
	kernel, err := GaussianKernel(KernelParams{Sigma: testSigma5}, nil)
	require.NoError(t, err)

	// Ratios between taps are independent of normalization.
	center := kernel[15]
	for k := -15; k <= 15; k++ {
		want := math.Exp(-0.5 * float64(k*k) / 25.0)
		assert.InDelta(t, want, kernel[15+k]/center, kernelTolerance, "k=%d", k)
	}
}

func TestGaussianKernel_InvalidParams(t *testing.T) {
	_, err := GaussianKernel(KernelParams{Sigma: 0}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sigma")
}

func TestSmoother_ConstantSignal(t *testing.T) {
	s, err := NewSmoother(KernelParams{Sigma: testSigma5}, nil)
	require.NoError(t, err)

	src := []float64{7, 7, 7, 7, 7}
	got := s.Apply(src)

	assert.InDeltaSlice(t, src, got, signalTolerance)
}

func TestSmoother_LinearSignalAwayFromEdges(t *testing.T) {
	s, err := NewSmoother(KernelParams{Sigma: testSigma5}, nil)
	require.NoError(t, err)

	xs, _ := testutil.Line(100, 0, 0, 99, 0)
	got := s.Apply(xs)

	// A symmetric kernel reproduces a linear signal wherever its support
	// does not reach a clamped edge.
	r := s.Radius()
	for i := r; i < len(xs)-r; i++ {
		assert.InDelta(t, xs[i], got[i], signalTolerance, "i=%d", i)
	}

	// Edge replication pulls the first samples toward the start value.
	assert.Greater(t, got[1], xs[1])
	assert.Less(t, got[len(xs)-2], xs[len(xs)-2])
}

func TestSmoother_ShortSignalClampsEverywhere(t *testing.T) {
	s, err := NewSmoother(KernelParams{Sigma: testSigma5}, nil)
	require.NoError(t, err)

	got := s.Apply([]float64{0, 10, 20})
	require.Len(t, got, 3)

	// All taps below index 0 sample 0 and all taps above sample 20, so the
	// middle output is the weighted average of a symmetric window: 10.
	assert.InDelta(t, 10.0, got[1], signalTolerance)
	testutil.AssertMonotonic(t, got)
}

func TestSmoother_Empty(t *testing.T) {
	s, err := NewSmoother(KernelParams{Sigma: testSigma5}, nil)
	require.NoError(t, err)

	assert.Empty(t, s.Apply(nil))
}

func TestSmoother_BackendsAgree(t *testing.T) {
	scalar, err := NewSmoother(KernelParams{Sigma: testSigma5}, simdops.Scalar())
	require.NoError(t, err)
	vector, err := NewSmoother(KernelParams{Sigma: testSigma5}, simdops.SIMD())
	require.NoError(t, err)

	assert.Equal(t, "scalar", scalar.Backend())
	assert.Equal(t, "simd", vector.Backend())

	src := testutil.Noise(257, 50, 7)
	assert.InDeltaSlice(t, scalar.Apply(src), vector.Apply(src), signalTolerance)
}

func TestSmoother_KernelIsCopy(t *testing.T) {
	s, err := NewSmoother(KernelParams{Sigma: testSigma1}, nil)
	require.NoError(t, err)

	k := s.Kernel()
	k[0] = 100
	assert.NotEqual(t, 100.0, s.Kernel()[0])
}

func BenchmarkSmoother_Apply(b *testing.B) {
	src := testutil.Noise(2000, 100, 1)
	for _, ops := range []*simdops.Ops{simdops.Scalar(), simdops.SIMD()} {
		s, err := NewSmoother(KernelParams{Sigma: testSigma5}, ops)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(ops.Name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = s.Apply(src)
			}
		})
	}
}
