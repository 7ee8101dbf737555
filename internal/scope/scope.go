// Package scope renders trajectories as XY-oscilloscope audio.
//
// The left channel carries x and the right channel carries y, so a scope
// in XY mode (or any XY audio visualizer) redraws the cursor path in real
// time. Screen y grows downwards; it is inverted so the picture is upright.
package scope

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	humanizer "github.com/tphakala/go-cursor-humanizer"
)

// WAV format constants
const (
	DefaultSampleRate = 48000
	DefaultMargin     = 0.05

	numChannels    = 2
	bitDepth       = 16
	pcmFormat      = 1
	maxInt16       = 32767.0
	maxSampleRate  = 384000
	leftChannel    = 0
	rightChannel   = 1
	halfDivisor    = 2
	fullScaleRange = 1.0
)

var (
	// ErrEmpty is returned for a trajectory without samples.
	ErrEmpty = errors.New("empty trajectory")

	// ErrInvalidOptions indicates out-of-range export options.
	ErrInvalidOptions = errors.New("invalid scope options")

	// ErrNotStereo is returned when reading a WAV file that is not 2-channel.
	ErrNotStereo = errors.New("not a stereo WAV file")
)

// Options controls WAV export.
type Options struct {
	// SampleRate in Hz. Zero selects DefaultSampleRate.
	SampleRate int

	// Margin is the share of full scale left unused at each edge, in [0, 1).
	// Zero selects DefaultMargin; use a negative value for no margin.
	Margin float64
}

func (o Options) resolved() (Options, error) {
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if o.Margin < 0 {
		o.Margin = 0
	}

	if o.SampleRate < 0 || o.SampleRate > maxSampleRate {
		return o, fmt.Errorf("%w: sample rate %d", ErrInvalidOptions, o.SampleRate)
	}
	if o.Margin >= fullScaleRange || math.IsNaN(o.Margin) {
		return o, fmt.Errorf("%w: margin %v", ErrInvalidOptions, o.Margin)
	}
	return o, nil
}

// Frames converts seq into interleaved 16-bit stereo samples, one frame per
// audio sample at the given rate. Playback timing follows the Player lookup
// and starts at the first timestamp. Recordings needing more than
// humanizer.MaxPlaybackFrames frames are rejected with ErrInvalidOptions.
func Frames(seq humanizer.Sequence, opts Options) ([]int, error) {
	opts, err := opts.resolved()
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, ErrEmpty
	}

	frames, err := humanizer.NewPlayer(seq).Frames(float64(opts.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	m := newMapping(seq, opts.Margin)

	data := make([]int, len(frames)*numChannels)
	for i, f := range frames {
		x, y := m.apply(f.X, f.Y)
		data[i*numChannels+leftChannel] = toPCM(x)
		data[i*numChannels+rightChannel] = toPCM(y)
	}
	return data, nil
}

// WriteWAV encodes seq as a 16-bit stereo WAV stream.
func WriteWAV(ws io.WriteSeeker, seq humanizer.Sequence, opts Options) error {
	data, err := Frames(seq, opts)
	if err != nil {
		return err
	}
	opts, _ = opts.resolved()

	enc := wav.NewEncoder(ws, opts.SampleRate, bitDepth, numChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  opts.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// SaveWAV writes seq to path as a WAV file.
func SaveWAV(path string, seq humanizer.Sequence, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return WriteWAV(f, seq, opts)
}

// Info describes a decoded scope recording.
type Info struct {
	SampleRate int
	Frames     int
	Duration   float64 // seconds
}

// ReadXY decodes a stereo WAV stream back into normalized x and y values in
// [-1, 1]. The y values keep the scope orientation (up is positive).
func ReadXY(rs io.ReadSeeker) (xs, ys []float64, info Info, err error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, nil, Info{}, errors.New("invalid WAV file")
	}

	format := dec.Format()
	if format.NumChannels != numChannels {
		return nil, nil, Info{}, fmt.Errorf("%w: %d channels", ErrNotStereo, format.NumChannels)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, nil, Info{}, fmt.Errorf("failed to read samples: %w", err)
	}

	scale := math.Exp2(float64(dec.SampleBitDepth()-1)) - 1
	n := len(buf.Data) / numChannels
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range n {
		xs[i] = float64(buf.Data[i*numChannels+leftChannel]) / scale
		ys[i] = float64(buf.Data[i*numChannels+rightChannel]) / scale
	}

	info = Info{SampleRate: format.SampleRate, Frames: n}
	if format.SampleRate > 0 {
		info.Duration = float64(n) / float64(format.SampleRate)
	}
	return xs, ys, info, nil
}

// mapping fits the bounding box of a trajectory into [-1, 1] with a uniform
// scale, so the aspect ratio is kept.
type mapping struct {
	cx, cy float64
	scale  float64
}

func newMapping(seq humanizer.Sequence, margin float64) mapping {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range seq {
		minX, maxX = min(minX, s.X), max(maxX, s.X)
		minY, maxY = min(minY, s.Y), max(maxY, s.Y)
	}

	m := mapping{
		cx: (minX + maxX) / halfDivisor,
		cy: (minY + maxY) / halfDivisor,
	}
	if half := max(maxX-minX, maxY-minY) / halfDivisor; half > 0 {
		m.scale = (fullScaleRange - margin) / half
	}
	return m
}

func (m mapping) apply(x, y float64) (float64, float64) {
	return (x - m.cx) * m.scale, -(y - m.cy) * m.scale
}

func toPCM(v float64) int {
	v = max(-fullScaleRange, min(fullScaleRange, v))
	return int(math.Round(v * maxInt16))
}
