package systems

import (
	"log"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/controls"
	"github.com/automoto/platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for key transitions to avoid allocations
var pressedKeys, releasedKeys []ebiten.Key

// UpdateInput forwards this frame's key transitions to the movement tracker
// and polls the host actions.
// Must run BEFORE the level frame in the scene's update.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Releases are lost while unfocused.
	if !ebiten.IsFocused() {
		input.Tracker.Reset()
	}

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	for _, key := range pressedKeys {
		if code, ok := cfg.Input.KeyCodes[key]; ok {
			input.Tracker.HandleKey(code, true)
		}
	}
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	for _, key := range releasedKeys {
		if code, ok := cfg.Input.KeyCodes[key]; ok {
			// Another key bound to the same code may still be down.
			if !codeHeld(code) {
				input.Tracker.HandleKey(code, false)
			}
		}
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for actionID, keys := range cfg.Input.Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}
}

func codeHeld(code int) bool {
	for key, c := range cfg.Input.KeyCodes {
		if c == code && ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	tracker := controls.NewTracker(controls.ArrowCodes)
	for key, code := range cfg.Input.KeyCodes {
		if !tracker.Tracks(code) {
			log.Printf("Warning: key %v is bound to untracked code %d", key, code)
		}
	}
	entry := factory.CreateInput(ecs, tracker)
	return components.Input.Get(entry)
}

// Tracker returns the movement tracker fed by UpdateInput.
func Tracker(ecs *ecs.ECS) *controls.Tracker {
	return getOrCreateInput(ecs).Tracker
}

// BackPressed reports whether the back action went down this frame.
func BackPressed(ecs *ecs.ECS) bool {
	return getOrCreateInput(ecs).JustPressed(cfg.ActionBack)
}
