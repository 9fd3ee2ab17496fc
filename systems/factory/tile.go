package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/display"
	"github.com/automoto/platformer/leveldata"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTiles spawns one entity per non-empty background cell.
func CreateTiles(ecs *ecs.ECS, cells []display.Cell) {
	for _, cell := range cells {
		switch cell.Kind {
		case leveldata.Empty:
		case leveldata.Floater:
			CreateFloater(ecs, cell)
		default:
			CreateTile(ecs, cell)
		}
	}
}

func CreateTile(ecs *ecs.ECS, cell display.Cell) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)
	setTile(ecs, tile, cell)
	return tile
}

// CreateFloater spawns a floater tile that bobs above its cell.
func CreateFloater(ecs *ecs.ECS, cell display.Cell) *donburi.Entry {
	tile := archetypes.Floater.Spawn(ecs)
	setTile(ecs, tile, cell)

	// Up and back down again; UpdateFloaters restarts the sequence.
	tw := gween.NewSequence()
	y := float32(cell.Rect.Y)
	rise := float32(cfg.Floater.Rise)
	tw.Add(
		gween.New(y, y-rise, cfg.Floater.Duration, ease.InOutQuad),
		gween.New(y-rise, y, cfg.Floater.Duration, ease.InOutQuad),
	)
	components.Tween.Set(tile, tw)

	return tile
}

func setTile(ecs *ecs.ECS, tile *donburi.Entry, cell display.Cell) {
	r := cell.Rect
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, cell.Kind.String())
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = tile // Link for O(1) lookup

	components.Tile.SetValue(tile, components.TileData{
		Col:   cell.Col,
		Row:   cell.Row,
		Kind:  cell.Kind,
		BaseY: r.Y,
	})
	components.Object.SetValue(tile, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
}
