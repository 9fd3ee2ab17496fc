package components

import (
	"github.com/automoto/platformer/display"
	"github.com/yohamta/donburi"
)

// ActorLayerData is the actor representation drawn this frame. The entity
// holding it is replaced on every DrawFrame.
type ActorLayerData struct {
	Boxes []display.ActorBox
}

var ActorLayer = donburi.NewComponentType[ActorLayerData]()
