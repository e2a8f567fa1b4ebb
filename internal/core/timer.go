package core

import (
	"fmt"
	"time"
)

// DefaultSmoothing is the number of steps the observed interval averages over.
const DefaultSmoothing = 10

// Clock supplies the current time to the host loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FrameScheduler throttles simulation steps to a target rate while being
// polled at whatever rate the host refreshes. At most one step is granted per
// poll; after a stall timing resumes from the poll that granted the step.
type FrameScheduler struct {
	fps      int
	window   int
	last     time.Time
	interval time.Duration
}

// NewFrameScheduler constructs a scheduler targeting fps steps per second with
// start as the reference time of the previous step.
func NewFrameScheduler(fps int, start time.Time) (*FrameScheduler, error) {
	if err := checkFPS(fps); err != nil {
		return nil, err
	}
	return &FrameScheduler{
		fps:      fps,
		window:   DefaultSmoothing,
		last:     start,
		interval: time.Second / time.Duration(fps),
	}, nil
}

func checkFPS(fps int) error {
	if fps <= 0 {
		return fmt.Errorf("%w: fps cap %d must be positive", ErrInvalidConfig, fps)
	}
	return nil
}

// SetTargetFPS changes the rate used by subsequent polls.
func (f *FrameScheduler) SetTargetFPS(fps int) error {
	if err := checkFPS(fps); err != nil {
		return err
	}
	f.fps = fps
	return nil
}

// TargetFPS returns the configured step rate.
func (f *FrameScheduler) TargetFPS() int { return f.fps }

// SetSmoothing changes the averaging window of the observed interval.
func (f *FrameScheduler) SetSmoothing(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: smoothing window %d must be positive", ErrInvalidConfig, n)
	}
	f.window = n
	return nil
}

// Reset makes now the reference time without touching the observed interval.
func (f *FrameScheduler) Reset(now time.Time) { f.last = now }

// ShouldStep reports whether at least one target period has elapsed since the
// last granted step. A true result records now as the new reference.
func (f *FrameScheduler) ShouldStep(now time.Time) bool {
	elapsed := now.Sub(f.last)
	if elapsed < time.Second && elapsed*time.Duration(f.fps) < time.Second {
		return false
	}
	n := time.Duration(f.window)
	f.interval = (f.interval*(n-1) + elapsed) / n
	f.last = now
	return true
}

// ObservedInterval is the smoothed time between granted steps.
func (f *FrameScheduler) ObservedInterval() time.Duration { return f.interval }

// ObservedFPS converts the smoothed interval into steps per second.
func (f *FrameScheduler) ObservedFPS() float64 {
	if f.interval <= 0 {
		return 0
	}
	return float64(time.Second) / float64(f.interval)
}
