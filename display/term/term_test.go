package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/automoto/platformer/controls"
	"github.com/automoto/platformer/leveldata"
	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func findPlayer(screen tcell.Screen, w, h int) (int, int, bool) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if runeAt(screen, x, y) == GlyphPlayer {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestDisplayDrawsTiles(t *testing.T) {
	screen := newScreen(t, 10, 5)
	level := leveldata.MustParse("tiles", []string{
		"    ",
		" @  ",
		"x!yx",
	})

	if _, err := NewFactory(screen, Options{})(level); err != nil {
		t.Fatalf("factory: %v", err)
	}

	want := map[[2]int]rune{
		{0, 2}: GlyphWall,
		{1, 2}: GlyphLava,
		{2, 2}: GlyphFloater,
		{3, 2}: GlyphWall,
	}
	for pos, r := range want {
		if got := runeAt(screen, pos[0], pos[1]); got != r {
			t.Errorf("cell %v = %q, want %q", pos, got, r)
		}
	}

	// Player at (1, 0.5) with size (0.8, 1.5) covers column 1, rows 0-1.
	if runeAt(screen, 1, 0) != GlyphPlayer || runeAt(screen, 1, 1) != GlyphPlayer {
		t.Errorf("player glyphs missing: %q %q", runeAt(screen, 1, 0), runeAt(screen, 1, 1))
	}
}

func TestDisplayScrollsWithPlayer(t *testing.T) {
	w, h := 12, 6
	screen := newScreen(t, w, h)
	level := leveldata.MustParse("long", []string{
		"@" + strings.Repeat(" ", 59),
		strings.Repeat("x", 60),
	})

	d, err := NewFactory(screen, Options{})(level)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	td := d.(*Display)

	if td.Viewport().Left != 0 {
		t.Fatalf("initial Left = %v", td.Viewport().Left)
	}

	level.Player.Pos.X = 40
	td.DrawFrame()

	if td.Viewport().Left == 0 {
		t.Fatal("viewport did not scroll")
	}
	if _, _, ok := findPlayer(screen, w, h); !ok {
		t.Error("player not visible after scrolling")
	}
}

func TestDisplayTallLevelKeepsPlayerVisible(t *testing.T) {
	w, h := 80, 24
	screen := newScreen(t, w, h)
	rows := make([]string, 60)
	for y := range rows {
		rows[y] = strings.Repeat(" ", 40)
	}
	rows[30] = "@" + strings.Repeat(" ", 39)
	level := leveldata.MustParse("tall", rows)

	d, err := NewFactory(screen, Options{StatusLine: true})(level)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	td := d.(*Display)

	view := td.Viewport()
	if view.Height != 23 {
		t.Fatalf("view height = %v, want 23", view.Height)
	}
	if _, _, ok := findPlayer(screen, w, h-1); !ok {
		t.Fatalf("player not visible, view top %v", view.Top)
	}

	for i := 0; i < 3; i++ {
		td.DrawFrame()
		if td.Viewport() != view {
			t.Fatalf("frame %d moved a still player's view: %+v -> %+v", i, view, td.Viewport())
		}
	}
}

func TestDisplayStatusLine(t *testing.T) {
	w, h := 30, 4
	screen := newScreen(t, w, h)
	level := leveldata.MustParse("status", []string{"@  ", "xxx"})

	if _, err := NewFactory(screen, Options{StatusLine: true})(level); err != nil {
		t.Fatalf("factory: %v", err)
	}

	var line []rune
	for x := 0; x < len("status"); x++ {
		line = append(line, runeAt(screen, x, h-1))
	}
	if string(line) != "status" {
		t.Errorf("status line = %q", string(line))
	}
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		code int
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), 37, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), 40, true},
		{tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), 39, true},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		code, ok := KeyCode(tt.ev)
		if code != tt.code || ok != tt.ok {
			t.Errorf("KeyCode(%v) = %d,%v, want %d,%v", tt.ev.Name(), code, ok, tt.code, tt.ok)
		}
	}
}

func TestInputHoldAndExpire(t *testing.T) {
	tracker := controls.NewTracker(controls.ArrowCodes)
	in := NewInput(tracker, 150*time.Millisecond)
	start := time.Now()

	in.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), start)
	if !tracker.Pressed(controls.Right) {
		t.Fatal("right should be pressed")
	}

	in.Expire(start.Add(100 * time.Millisecond))
	if !tracker.Pressed(controls.Right) {
		t.Error("right released before the hold window passed")
	}

	in.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), start.Add(120*time.Millisecond))
	in.Expire(start.Add(200 * time.Millisecond))
	if !tracker.Pressed(controls.Right) {
		t.Error("a repeat should extend the hold")
	}

	in.Expire(start.Add(400 * time.Millisecond))
	if tracker.Pressed(controls.Right) {
		t.Error("right should be released after the hold window")
	}
}

func TestInputQuitKeys(t *testing.T) {
	in := NewInput(controls.NewTracker(controls.ArrowCodes), time.Second)
	now := time.Now()

	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quits {
		if !in.HandleEvent(ev, now) {
			t.Errorf("%s should quit", ev.Name())
		}
	}
	if in.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), now) {
		t.Error("arrow keys must not quit")
	}
}

func TestInputExpireEvery(t *testing.T) {
	tracker := controls.NewTracker(controls.ArrowCodes)
	in := NewInput(tracker, 10*time.Millisecond)
	in.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		in.ExpireEvery(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for tracker.Pressed(controls.Up) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if tracker.Pressed(controls.Up) {
		t.Error("up should have been released by the expiry ticker")
	}
}
