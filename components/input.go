package components

import (
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/controls"
	"github.com/yohamta/donburi"
)

// InputData feeds ebiten key transitions into the movement tracker and keeps
// the host actions.
type InputData struct {
	Tracker  *controls.Tracker
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Primed   bool                  // First poll done; keys held on entry are not JustPressed
}

// JustPressed reports an action that went down this frame.
func (d *InputData) JustPressed(id cfg.ActionID) bool {
	return d.Current[id] && !d.Previous[id]
}

var Input = donburi.NewComponentType[InputData]()
