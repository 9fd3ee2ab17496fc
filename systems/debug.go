package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/display"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the space and lists the tiles the
// player overlaps. Overlaps are reported only; motion ignores them.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camX, camY, ok := cameraOffset(ecs)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	overlaps := PlayerOverlaps(ecs)
	hit := make(map[*resolv.Object]bool, len(overlaps))
	for _, obj := range overlaps {
		hit[obj] = true
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY
		// Cull objects outside viewport
		if x+obj.W < 0 || y+obj.H < 0 || x > width || y > height {
			continue
		}

		c := cfg.Colors.Debug
		if hit[obj] {
			c = cfg.Colors.Overlap
		}
		strokeRect(screen, x, y, obj.W, obj.H, c)
	}

	kinds := make([]string, 0, len(overlaps))
	for _, obj := range overlaps {
		kinds = append(kinds, tileKind(obj))
	}
	msg := fmt.Sprintf("objects %d  overlaps [%s]", len(space.Objects()), strings.Join(kinds, " "))
	text.Draw(screen, msg, fonts.HUDSmall.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, cfg.Colors.HUDText)
}

// PlayerOverlaps returns the tile objects intersecting the player's box.
func PlayerOverlaps(ecs *ecs.ECS) []*resolv.Object {
	layer, ok := tags.ActorLayer.First(ecs.World)
	if !ok {
		return nil
	}
	player := components.Object.Get(layer)
	if player.Object == nil {
		return nil
	}
	collision := player.Check(0, 0, tags.ResolvTiles...)
	if collision == nil {
		return nil
	}
	// Check works on space cells; keep only boxes that really intersect.
	box := objectRect(player.Object)
	var out []*resolv.Object
	for _, obj := range collision.ObjectsByTags(tags.ResolvTiles...) {
		if box.Overlaps(objectRect(obj)) {
			out = append(out, obj)
		}
	}
	return out
}

func objectRect(obj *resolv.Object) display.Rect {
	return display.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func tileKind(obj *resolv.Object) string {
	if entry, ok := obj.Data.(*donburi.Entry); ok && entry.HasComponent(components.Tile) {
		return components.Tile.Get(entry).Kind.String()
	}
	return "?"
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
