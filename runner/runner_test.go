package runner

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/automoto/platformer/controls"
	"github.com/automoto/platformer/display"
	"github.com/automoto/platformer/frameloop"
	"github.com/automoto/platformer/leveldata"
)

var testPlans = []leveldata.Plan{
	{Name: "first", Rows: []string{"  @   ", "xxxxxx"}},
	{Name: "second", Rows: []string{"@ ", "!!"}},
	{Name: "broken", Rows: []string{"xx", "x"}},
}

func recorder() display.Factory {
	return display.NewRecorder(100, 60, display.Scale, 0)
}

func TestRunLevelDrawsInitialFrame(t *testing.T) {
	level := leveldata.MustParse("l", testPlans[0].Rows)
	r, err := RunLevel(context.Background(), level, recorder(), controls.NewTracker(controls.ArrowCodes))
	if err != nil {
		t.Fatalf("RunLevel: %v", err)
	}
	defer r.Close()

	rec := r.Display.(*display.Recorder)
	if rec.Frames != 1 {
		t.Errorf("Frames = %d, want 1 after construction", rec.Frames)
	}
}

func TestFrameAnimatesAndRedraws(t *testing.T) {
	keys := controls.NewTracker(controls.ArrowCodes)
	level := leveldata.MustParse("l", testPlans[0].Rows)
	r, err := RunLevel(context.Background(), level, recorder(), keys)
	if err != nil {
		t.Fatalf("RunLevel: %v", err)
	}
	defer r.Close()
	rec := r.Display.(*display.Recorder)
	startX := level.Player.Pos.X

	keys.HandleKey(39, true)

	if err := r.Frame(0); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if level.Player.Pos.X != startX || rec.Frames != 1 {
		t.Fatal("the first frame must only set the baseline")
	}

	if err := r.Frame(50 * time.Millisecond); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if got := level.Player.Pos.X - startX; math.Abs(got-0.35) > 1e-9 {
		t.Errorf("dx = %v, want 0.35", got)
	}
	if rec.Frames != 2 || r.Frames() != 1 {
		t.Errorf("display frames = %d, runner frames = %d", rec.Frames, r.Frames())
	}
	if got := rec.Actors[0].Rect.X; math.Abs(got-level.Player.Pos.X*display.Scale) > 1e-9 {
		t.Errorf("actor box x = %v, want %v", got, level.Player.Pos.X*display.Scale)
	}

	// A stall is clamped to 100ms.
	r.Frame(5 * time.Second)
	if got := level.Player.Pos.X - startX; math.Abs(got-1.05) > 1e-9 {
		t.Errorf("dx after stall = %v, want 1.05", got)
	}
}

func TestStartLevel(t *testing.T) {
	keys := controls.NewTracker(controls.ArrowCodes)

	r, err := StartLevel(context.Background(), testPlans, 1, recorder(), keys)
	if err != nil {
		t.Fatalf("StartLevel: %v", err)
	}
	if r.Level.Name != "second" {
		t.Errorf("level = %q, want second", r.Level.Name)
	}

	if _, err := StartLevel(context.Background(), testPlans, 2, recorder(), keys); !errors.Is(err, leveldata.ErrInvalidLevelPlan) {
		t.Errorf("err = %v, want ErrInvalidLevelPlan", err)
	}
	if _, err := StartLevel(context.Background(), testPlans, 7, recorder(), keys); err == nil {
		t.Error("expected out of range error")
	}
	if _, err := RunGame(context.Background(), nil, recorder(), keys); !errors.Is(err, ErrNoPlans) {
		t.Errorf("err = %v, want ErrNoPlans", err)
	}
}

func TestRunGameStartsFirstPlan(t *testing.T) {
	r, err := RunGame(context.Background(), testPlans, recorder(), controls.NewTracker(controls.ArrowCodes))
	if err != nil {
		t.Fatalf("RunGame: %v", err)
	}
	if r.Level.Name != "first" {
		t.Errorf("level = %q, want first", r.Level.Name)
	}
}

func TestDisplayFactoryError(t *testing.T) {
	boom := errors.New("no container")
	failing := func(*leveldata.Level) (display.Display, error) { return nil, boom }

	level := leveldata.MustParse("l", testPlans[0].Rows)
	if _, err := RunLevel(context.Background(), level, failing, controls.NewTracker(controls.ArrowCodes)); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped display error", err)
	}
}

type stepClock struct {
	now time.Duration
}

func (c *stepClock) Now() time.Duration {
	c.now += 20 * time.Millisecond
	return c.now
}

func TestRunStopsFromDisplay(t *testing.T) {
	keys := controls.NewTracker(controls.ArrowCodes)
	keys.HandleKey(40, true)

	level := leveldata.MustParse("l", testPlans[0].Rows)
	r, err := RunLevel(context.Background(), level, recorder(), keys)
	if err != nil {
		t.Fatalf("RunLevel: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Display.(*display.Recorder).OnFrame = func(rec *display.Recorder) {
		if rec.Frames >= 5 {
			cancel()
		}
	}

	err = r.Run(ctx, time.Millisecond, &stepClock{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: %v", err)
	}
	if r.Frames() < 4 {
		t.Errorf("frames = %d, want at least 4", r.Frames())
	}
	if level.Player.Pos.Y <= -0.5 {
		t.Error("down key should have moved the player down")
	}
	if r.Driver().Stopped() {
		t.Error("cancellation is external teardown, not a stop sentinel")
	}
}

func TestFrameLimitStopsLoop(t *testing.T) {
	level := leveldata.MustParse("l", testPlans[0].Rows)
	r, err := RunLevel(context.Background(), level, recorder(), controls.NewTracker(controls.ArrowCodes))
	if err != nil {
		t.Fatalf("RunLevel: %v", err)
	}
	r.SetFrameLimit(3)

	if err := r.Run(context.Background(), time.Millisecond, &stepClock{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Frames() != 3 {
		t.Errorf("frames = %d, want 3", r.Frames())
	}
	if !r.Driver().Stopped() {
		t.Error("driver should be stopped")
	}
	if err := r.Frame(time.Hour); !errors.Is(err, frameloop.ErrStopped) {
		t.Errorf("Frame after stop = %v, want ErrStopped", err)
	}
}
