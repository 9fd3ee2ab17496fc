package systems

import (
	"math"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/display"
	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// Display materializes a level as entities in an ECS world. Tiles are built
// once; the actor layer entity is replaced on every DrawFrame. The world's
// renderers do the actual drawing.
type Display struct {
	ecs   *ecs.ECS
	level *leveldata.Level
	scale float64
}

// NewDisplay returns a display.Factory building levels into e with a
// width x height pixel camera. index is recorded on the level entity.
// A zero margin selects display.DefaultMargin.
func NewDisplay(e *ecs.ECS, index int, width, height, scale, margin float64) display.Factory {
	return func(level *leveldata.Level) (display.Display, error) {
		contentW := float64(level.Width) * scale
		contentH := float64(level.Height) * scale
		cell := max(1, int(scale))

		factory.CreateLevel(e, level, index, scale)
		factory.CreateSpace(e, int(math.Ceil(contentW)), int(math.Ceil(contentH)), cell, cell)
		factory.CreateTiles(e, display.Background(level, scale))
		factory.CreateCamera(e, display.Viewport{
			Width:    width,
			Height:   height,
			ContentW: contentW,
			ContentH: contentH,
		}, margin)

		d := &Display{ecs: e, level: level, scale: scale}
		d.DrawFrame()
		return d, nil
	}
}

func (d *Display) DrawFrame() {
	factory.RemoveActorLayer(d.ecs)
	factory.CreateActorLayer(d.ecs, d.level, d.scale)
	if d.level.Player != nil {
		ScrollCamera(d.ecs, display.ActorCenter(d.level.Player, d.scale))
	}
	if entry, ok := components.Level.First(d.ecs.World); ok {
		components.Level.Get(entry).Frame++
	}
}

// Viewport returns the camera's current view.
func (d *Display) Viewport() display.Viewport {
	entry, ok := components.Camera.First(d.ecs.World)
	if !ok {
		return display.Viewport{}
	}
	return components.Camera.Get(entry).View
}
