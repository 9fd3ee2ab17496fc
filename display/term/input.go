package term

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/platformer/controls"
	"github.com/gdamore/tcell/v2"
)

// Arrow key codes as used by controls.ArrowCodes.
const (
	codeLeft  = 37
	codeUp    = 38
	codeRight = 39
	codeDown  = 40
)

var keyCodes = map[tcell.Key]int{
	tcell.KeyLeft:  codeLeft,
	tcell.KeyUp:    codeUp,
	tcell.KeyRight: codeRight,
	tcell.KeyDown:  codeDown,
}

var runeCodes = map[rune]int{
	'h': codeLeft,
	'k': codeUp,
	'l': codeRight,
	'j': codeDown,
}

// KeyCode translates a tcell key event into a tracker code.
func KeyCode(ev *tcell.EventKey) (int, bool) {
	if ev.Key() == tcell.KeyRune {
		code, ok := runeCodes[ev.Rune()]
		return code, ok
	}
	code, ok := keyCodes[ev.Key()]
	return code, ok
}

// Input feeds tcell key events into a tracker. Terminals report key presses
// and auto-repeat but never releases, so a key is released once it has not
// repeated for Hold.
type Input struct {
	tracker *controls.Tracker
	hold    time.Duration

	mu   sync.Mutex
	seen map[int]time.Time
}

// NewInput wraps tracker.
func NewInput(tracker *controls.Tracker, hold time.Duration) *Input {
	return &Input{
		tracker: tracker,
		hold:    hold,
		seen:    make(map[int]time.Time),
	}
}

// HandleEvent processes one event. It returns true when the event asks to quit.
func (in *Input) HandleEvent(ev tcell.Event, now time.Time) (quit bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		if key.Rune() == 'q' {
			return true
		}
	}

	code, ok := KeyCode(key)
	if !ok {
		return false
	}
	if in.tracker.HandleKey(code, true) {
		in.mu.Lock()
		in.seen[code] = now
		in.mu.Unlock()
	}
	return false
}

// Expire releases keys that have not repeated within the hold window.
func (in *Input) Expire(now time.Time) {
	in.mu.Lock()
	defer in.mu.Unlock()
	for code, at := range in.seen {
		if now.Sub(at) >= in.hold {
			in.tracker.HandleKey(code, false)
			delete(in.seen, code)
		}
	}
}

// Poll reads events from screen until ctx is done or a quit key arrives,
// then calls cancel. Run it in its own goroutine.
func (in *Input) Poll(ctx context.Context, screen tcell.Screen, cancel context.CancelFunc) {
	defer cancel()
	for ctx.Err() == nil {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		if in.HandleEvent(ev, time.Now()) {
			return
		}
	}
}

// ExpireEvery calls Expire on every tick of interval until ctx is done.
func (in *Input) ExpireEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			in.Expire(now)
		}
	}
}
