package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloaters advances each floater's bobbing sequence and moves its
// resolv object, restarting the sequence when it completes.
func UpdateFloaters(ecs *ecs.ECS) {
	dt := float32(1 / float64(ebiten.TPS()))
	tags.Floater.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		y, _, done := tw.Update(dt)
		if done {
			tw.Reset()
		}

		obj := components.Object.Get(e)
		obj.Y = float64(y)
		obj.Update()
	})
}
