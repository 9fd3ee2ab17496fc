package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/controls"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateInput(ecs *ecs.ECS, tracker *controls.Tracker) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.Set(input, &components.InputData{Tracker: tracker})
	return input
}
