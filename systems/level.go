package systems

import (
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func tileColor(kind leveldata.TileKind) color.RGBA {
	switch kind {
	case leveldata.Lava:
		return cfg.Colors.Lava
	case leveldata.Floater:
		return cfg.Colors.Floater
	default:
		return cfg.Colors.Wall
	}
}

// DrawLevel fills the background and draws every tile at its object's
// position, so floaters are drawn where their tween left them.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	camX, camY, ok := cameraOffset(ecs)
	if !ok {
		return
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		obj := components.Object.Get(e)

		x, y := obj.X+camX, obj.Y+camY
		// Viewport culling
		if x+obj.W < 0 || y+obj.H < 0 || x > width || y > height {
			return
		}
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), tileColor(tile.Kind), false)
	})
}

// DrawActors draws the boxes held by the current actor layer.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs)
	if !ok {
		return
	}
	layer, ok := tags.ActorLayer.First(ecs.World)
	if !ok {
		return
	}
	for _, box := range components.ActorLayer.Get(layer).Boxes {
		r := box.Rect
		vector.FillRect(screen, float32(r.X+camX), float32(r.Y+camY), float32(r.W), float32(r.H), cfg.Colors.Player, false)
	}
}
