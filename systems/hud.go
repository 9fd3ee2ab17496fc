package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/controls"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the level name, frame count and the player's position in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	level := levelData.Level

	title := fmt.Sprintf("%s  frame %d", level.Name, levelData.Frame)
	text.Draw(screen, title, fonts.HUD.Get(), hudMargin, hudMargin+12, cfg.Colors.HUDText)

	if level.Player != nil {
		pos := fmt.Sprintf("x %.2f  y %.2f%s", level.Player.Pos.X, level.Player.Pos.Y, heldKeys(ecs))
		text.Draw(screen, pos, fonts.HUDSmall.Get(), hudMargin, hudMargin+26, cfg.Colors.HUDText)
	}
}

var hudDirections = []controls.Direction{controls.Left, controls.Up, controls.Right, controls.Down}

func heldKeys(ecs *ecs.ECS) string {
	held := Tracker(ecs).Snapshot()
	var b strings.Builder
	for _, d := range hudDirections {
		if held[d] {
			b.WriteString(" ")
			b.WriteString(string(d))
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "  held" + b.String()
}
