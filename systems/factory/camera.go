package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/display"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the viewport entity. margin is resolved with
// display.MarginFor.
func CreateCamera(ecs *ecs.ECS, view display.Viewport, margin float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{View: view, Margin: display.MarginFor(view, margin)})
	return camera
}
