package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel replaces any level entity with one holding level.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, index int, scale float64) *donburi.Entry {
	if old, ok := components.Level.First(ecs.World); ok {
		ecs.World.Remove(old.Entity())
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		Level: level,
		Index: index,
		Scale: scale,
	})
	return entry
}
