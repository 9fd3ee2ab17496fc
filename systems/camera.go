package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/display"
	"github.com/automoto/platformer/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// ScrollCamera moves the camera so center sits inside its margin band.
func ScrollCamera(e *ecs.ECS, center gamemath.Vector) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.View = display.ScrollIntoView(camera.View, center, camera.Margin)
}

// cameraOffset is the translation from level pixels to screen pixels.
func cameraOffset(e *ecs.ECS) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return -camera.View.Left, -camera.View.Top, true
}
