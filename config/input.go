package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a host action outside player movement
type ActionID int

const (
	ActionNone ActionID = iota
	ActionBack
	ActionToggleDebug
	ActionToggleFullscreen
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds all input mappings
type InputConfig struct {
	// KeyCodes maps keyboard keys onto the movement tracker's key codes
	// (37 left, 38 up, 39 right, 40 down).
	KeyCodes map[ebiten.Key]int
	Bindings map[ActionID][]ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		KeyCodes: map[ebiten.Key]int{
			ebiten.KeyArrowLeft:  37,
			ebiten.KeyA:          37,
			ebiten.KeyArrowUp:    38,
			ebiten.KeyW:          38,
			ebiten.KeyArrowRight: 39,
			ebiten.KeyD:          39,
			ebiten.KeyArrowDown:  40,
			ebiten.KeyS:          40,
		},
		Bindings: map[ActionID][]ebiten.Key{
			ActionBack:             {ebiten.KeyEscape, ebiten.KeyBackspace},
			ActionToggleDebug:      {ebiten.KeyF3},
			ActionToggleFullscreen: {ebiten.KeyF11},
		},
	}
}
