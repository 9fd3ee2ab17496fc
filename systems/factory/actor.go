package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/display"
	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActorLayer builds this frame's actor representation. The player's box
// is also placed in the space so overlaps with tiles can be queried.
func CreateActorLayer(ecs *ecs.ECS, level *leveldata.Level, scale float64) *donburi.Entry {
	layer := archetypes.ActorLayer.Spawn(ecs)

	data := components.ActorLayerData{}
	for _, actor := range level.Actors() {
		data.Boxes = append(data.Boxes, display.BoxFor(actor, scale))
	}
	components.ActorLayer.SetValue(layer, data)

	if level.Player != nil {
		box := display.BoxFor(level.Player, scale).Rect
		obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvPlayer)
		obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
		obj.Data = layer
		components.Object.SetValue(layer, components.ObjectData{Object: obj})
		addToSpace(ecs, obj)
	}
	return layer
}

// RemoveActorLayer discards the previous frame's actor representation.
func RemoveActorLayer(ecs *ecs.ECS) {
	layer, ok := tags.ActorLayer.First(ecs.World)
	if !ok {
		return
	}
	if obj := components.Object.Get(layer); obj.Object != nil {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(layer.Entity())
}
