package humanizer

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidFrameRate is returned for a frame rate that is not positive
	// and finite.
	ErrInvalidFrameRate = errors.New("invalid frame rate")

	// ErrTooManyFrames is returned when playback at the requested rate would
	// need more than MaxPlaybackFrames frames.
	ErrTooManyFrames = errors.New("too many playback frames")
)

// Player looks up the sample on screen at a given elapsed playback time.
// A Player is immutable and safe for concurrent use.
type Player struct {
	seq    Sequence
	sorted bool
}

// NewPlayer creates a Player over a copy of seq.
func NewPlayer(seq Sequence) *Player {
	c := seq.Clone()
	return &Player{seq: c, sorted: c.IsSorted()}
}

// Len returns the number of samples.
func (p *Player) Len() int {
	return len(p.seq)
}

// At returns the first sample whose timestamp is at or after elapsedMs.
// The second result is false once playback has passed the last sample.
func (p *Player) At(elapsedMs float64) (Sample, bool) {
	i := p.index(elapsedMs)
	if i < 0 {
		return Sample{}, false
	}
	return p.seq[i], true
}

// index returns the position of the first sample with Time >= elapsedMs,
// or -1.
func (p *Player) index(elapsedMs float64) int {
	if p.sorted {
		i := sort.Search(len(p.seq), func(i int) bool {
			return p.seq[i].Time >= elapsedMs
		})
		if i == len(p.seq) {
			return -1
		}
		return i
	}

	// Unsorted input keeps first-match semantics with a linear scan.
	for i, s := range p.seq {
		if s.Time >= elapsedMs {
			return i
		}
	}
	return -1
}

// Start returns the smallest timestamp.
func (p *Player) Start() float64 {
	if len(p.seq) == 0 {
		return 0
	}
	if p.sorted {
		return p.seq[0].Time
	}
	start := math.Inf(1)
	for _, s := range p.seq {
		start = min(start, s.Time)
	}
	return start
}

// Duration returns the elapsed time at which playback reaches the last
// sample, i.e. the largest timestamp.
func (p *Player) Duration() float64 {
	if len(p.seq) == 0 {
		return 0
	}
	if p.sorted {
		return p.seq[len(p.seq)-1].Time
	}
	end := math.Inf(-1)
	for _, s := range p.seq {
		end = max(end, s.Time)
	}
	return end
}

// Frames samples playback at fps frames per second from Start through
// Duration. Frame k shows At(Start() + k*1000/fps). An empty player yields
// no frames.
func (p *Player) Frames(fps float64) ([]Sample, error) {
	if !(fps > 0) || math.IsInf(fps, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrameRate, fps)
	}
	if len(p.seq) == 0 {
		return nil, nil
	}

	step := msPerSecond / fps
	start := p.Start()
	span := p.Duration() - start

	// Bounded before the conversion to int.
	n := math.Floor(span/step) + 1
	if !(n <= MaxPlaybackFrames) {
		return nil, fmt.Errorf("%w: %.0f ms at %v fps", ErrTooManyFrames, span, fps)
	}
	count := max(int(n), 1)

	frames := make([]Sample, 0, count)
	for k := range count {
		s, ok := p.At(start + float64(k)*step)
		if !ok {
			break
		}
		frames = append(frames, s)
	}
	return frames, nil
}
