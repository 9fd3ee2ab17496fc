package components

import (
	"github.com/automoto/platformer/display"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	View   display.Viewport
	Margin display.Margin // Pixels kept between the player and the view edges
}

var Camera = donburi.NewComponentType[CameraData]()
