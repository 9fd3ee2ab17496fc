// Package frameloop delivers elapsed time to a per-frame callback.
package frameloop

import (
	"context"
	"errors"
	"time"
)

// MaxStep caps the time delivered to a single frame so a stall does not
// turn into one large jump.
const MaxStep = 100 * time.Millisecond

var (
	// ErrStop is returned by a FrameFunc to end the loop for good.
	ErrStop = errors.New("frameloop: stop")
	// ErrStopped is returned by Frame once the loop has ended.
	ErrStopped = errors.New("frameloop: stopped")
)

// FrameFunc receives the elapsed seconds since the previous frame.
type FrameFunc func(step float64) error

// Driver turns a monotonically increasing timestamp into clamped steps.
// The first Frame only records the baseline.
type Driver struct {
	frame   FrameFunc
	maxStep time.Duration
	last    time.Duration
	started bool
	stopped bool
}

// New creates a driver with the default MaxStep.
func New(frame FrameFunc) *Driver {
	return &Driver{frame: frame, maxStep: MaxStep}
}

// SetMaxStep overrides the per-frame cap.
func (d *Driver) SetMaxStep(max time.Duration) {
	if max > 0 {
		d.maxStep = max
	}
}

// Frame is called once per display refresh with the current timestamp.
// It returns nil while the loop keeps running. When the FrameFunc returns
// ErrStop, Frame returns ErrStopped; any other error stops the loop and is
// returned as is.
func (d *Driver) Frame(now time.Duration) error {
	if d.stopped {
		return ErrStopped
	}
	if !d.started {
		d.started = true
		d.last = now
		return nil
	}

	step := min(now-d.last, d.maxStep)
	if step < 0 {
		step = 0
	}
	d.last = now

	if err := d.frame(step.Seconds()); err != nil {
		d.stopped = true
		if errors.Is(err, ErrStop) {
			return ErrStopped
		}
		return err
	}
	return nil
}

// Stopped reports whether the loop has ended.
func (d *Driver) Stopped() bool {
	return d.stopped
}

// Clock supplies monotonically increasing timestamps.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures time since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// Run drives d from a ticker until ctx is cancelled or the loop stops.
// A loop ended by ErrStop returns nil.
func Run(ctx context.Context, d *Driver, interval time.Duration, clock Clock) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := d.Frame(clock.Now()); err != nil {
		return stopResult(err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := d.Frame(clock.Now()); err != nil {
				return stopResult(err)
			}
		}
	}
}

func stopResult(err error) error {
	if errors.Is(err, ErrStopped) {
		return nil
	}
	return err
}
