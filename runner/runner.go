// Package runner wires a level, a display and the frame loop together.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/automoto/platformer/controls"
	"github.com/automoto/platformer/display"
	"github.com/automoto/platformer/frameloop"
	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrNoPlans is returned when RunGame has nothing to start.
var ErrNoPlans = errors.New("runner: no plans")

// Runner advances one level per frame and redraws it.
type Runner struct {
	Level   *leveldata.Level
	Display display.Display

	keys   controls.Keys
	driver *frameloop.Driver
	span   trace.Span
	frames int
	limit  int
}

// RunLevel builds the display for level and a frame driver that animates the
// level with keys and redraws the display every frame.
func RunLevel(ctx context.Context, level *leveldata.Level, newDisplay display.Factory, keys controls.Keys) (*Runner, error) {
	_, span := telemetry.Tracer("runner").Start(ctx, "RunLevel",
		trace.WithAttributes(
			attribute.String("level.name", level.Name),
			attribute.Int("level.width", level.Width),
			attribute.Int("level.height", level.Height),
		),
	)

	d, err := newDisplay(level)
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, fmt.Errorf("create display for %s: %w", level.Name, err)
	}

	r := &Runner{
		Level:   level,
		Display: d,
		keys:    keys,
		span:    span,
	}
	r.driver = frameloop.New(r.frame)
	log.Printf("Level %q started (%dx%d)", level.Name, level.Width, level.Height)
	return r, nil
}

func (r *Runner) frame(step float64) error {
	r.Level.Animate(step, r.keys)
	r.Display.DrawFrame()
	r.frames++
	if r.limit > 0 && r.frames >= r.limit {
		return frameloop.ErrStop
	}
	return nil
}

// SetFrameLimit stops the loop after n animated frames. Zero means no limit.
func (r *Runner) SetFrameLimit(n int) {
	r.limit = n
}

// Driver exposes the frame driver, for hosts that call Frame themselves.
func (r *Runner) Driver() *frameloop.Driver {
	return r.driver
}

// Frames is the number of animated frames so far.
func (r *Runner) Frames() int {
	return r.frames
}

// Frame forwards a host refresh timestamp to the driver.
func (r *Runner) Frame(now time.Duration) error {
	return r.driver.Frame(now)
}

// Run drives the level from a ticker until ctx is done.
func (r *Runner) Run(ctx context.Context, interval time.Duration, clock frameloop.Clock) error {
	return frameloop.Run(ctx, r.driver, interval, clock)
}

// Close ends the level's trace span and releases the display.
func (r *Runner) Close() error {
	r.span.SetAttributes(attribute.Int("level.frames", r.frames))
	r.span.End()
	if c, ok := r.Display.(display.Closer); ok {
		return c.Close()
	}
	return nil
}

// StartLevel parses plans[n] and runs it.
func StartLevel(ctx context.Context, plans []leveldata.Plan, n int, newDisplay display.Factory, keys controls.Keys, opts ...leveldata.ParseOption) (*Runner, error) {
	if len(plans) == 0 {
		return nil, ErrNoPlans
	}
	if n < 0 || n >= len(plans) {
		return nil, fmt.Errorf("level %d out of range [0,%d)", n, len(plans))
	}
	level, err := leveldata.Parse(plans[n].Name, plans[n].Rows, opts...)
	if err != nil {
		return nil, err
	}
	return RunLevel(ctx, level, newDisplay, keys)
}

// RunGame starts the first plan.
func RunGame(ctx context.Context, plans []leveldata.Plan, newDisplay display.Factory, keys controls.Keys, opts ...leveldata.ParseOption) (*Runner, error) {
	return StartLevel(ctx, plans, 0, newDisplay, keys, opts...)
}
