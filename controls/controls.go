// Package controls tracks which logical directions are held down.
//
// Backends translate their own key events into the numeric codes of a
// fixed table and feed them to a Tracker. The frame loop reads the same
// Tracker every tick, so it is a live view of the input, never a copy.
package controls

import "sync"

// Direction is a logical movement direction.
type Direction string

const (
	Left  Direction = "left"
	Up    Direction = "up"
	Right Direction = "right"
	Down  Direction = "down"
)

// ArrowCodes maps the arrow key codes to their directions.
var ArrowCodes = map[int]Direction{
	37: Left,
	38: Up,
	39: Right,
	40: Down,
}

// Keys is the read side of a Tracker, passed into motion updates.
type Keys interface {
	Pressed(d Direction) bool
}

// Tracker holds the pressed state of every direction in its code table.
type Tracker struct {
	mu      sync.RWMutex
	codes   map[int]Direction
	pressed map[Direction]bool
}

// NewTracker creates a tracker restricted to the given code table.
func NewTracker(codes map[int]Direction) *Tracker {
	table := make(map[int]Direction, len(codes))
	for code, dir := range codes {
		table[code] = dir
	}
	return &Tracker{
		codes:   table,
		pressed: make(map[Direction]bool, len(table)),
	}
}

// HandleKey records a key-down or key-up for code. It returns true when the
// code is tracked, in which case the caller should suppress any default
// handling of the key.
func (t *Tracker) HandleKey(code int, down bool) bool {
	dir, ok := t.codes[code]
	if !ok {
		return false
	}
	t.mu.Lock()
	t.pressed[dir] = down
	t.mu.Unlock()
	return true
}

// Pressed reports whether d is currently held.
func (t *Tracker) Pressed(d Direction) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pressed[d]
}

// Tracks reports whether code is part of the tracker's table.
func (t *Tracker) Tracks(code int) bool {
	_, ok := t.codes[code]
	return ok
}

// Reset releases every direction.
func (t *Tracker) Reset() {
	t.mu.Lock()
	clear(t.pressed)
	t.mu.Unlock()
}

// Snapshot copies the current state, for logging and HUD output.
func (t *Tracker) Snapshot() map[Direction]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[Direction]bool, len(t.pressed))
	for d, down := range t.pressed {
		out[d] = down
	}
	return out
}

// Axis returns -1, 0 or 1 for a pair of opposing directions.
func Axis(keys Keys, negative, positive Direction) float64 {
	v := 0.0
	if keys.Pressed(negative) {
		v--
	}
	if keys.Pressed(positive) {
		v++
	}
	return v
}
