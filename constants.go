package humanizer

// Default configuration values
const (
	DefaultGapThresholdMs       = 500.0
	DefaultAccelerationFraction = 0.25
	DefaultDecelerationFraction = 0.25
)

// Operating range of the gap threshold offered by control surfaces.
// Config.Validate only requires a positive threshold.
const (
	MinGapThresholdMs = 100.0
	MaxGapThresholdMs = 2000.0
)

// Smoothing kernel parameters
const (
	// SmoothingSigma is the Gaussian standard deviation in samples.
	SmoothingSigma = 5.0

	// SmoothingRadius is the kernel half-width, ceil(3σ).
	SmoothingRadius = 15
)

// Validation constants
const (
	minSegmentPoints = 2
)

// Preset parameters
const (
	subtleFraction = 0.10
	snappyFraction = 0.35
)

// Playback constants
const (
	// MaxPlaybackFrames bounds the number of frames Player.Frames renders.
	MaxPlaybackFrames = 1 << 24

	msPerSecond = 1000.0
)
