package leveldata

import (
	"github.com/automoto/platformer/controls"
	"github.com/automoto/platformer/gamemath"
)

// Motion holds the integration settings of a level.
type Motion struct {
	Speed   float64 // units per second on each axis
	MaxStep float64 // largest sub-step, in seconds
}

// DefaultMotion is 7 units per second with half-second sub-steps.
var DefaultMotion = Motion{
	Speed:   7,
	MaxStep: 0.5,
}

// Animate advances every actor by step seconds, splitting the budget into
// sub-steps no longer than Motion.MaxStep.
func (l *Level) Animate(step float64, keys controls.Keys) {
	maxStep := l.Motion.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultMotion.MaxStep
	}
	for step > 0 {
		thisStep := min(step, maxStep)
		for _, actor := range l.Actors() {
			actor.Act(thisStep, l, keys)
		}
		step -= thisStep
	}
}

// Act updates the actor's velocity from keys and integrates its position.
func (a *Actor) Act(step float64, level *Level, keys controls.Keys) {
	speed := DefaultMotion.Speed
	if level != nil && level.Motion.Speed > 0 {
		speed = level.Motion.Speed
	}
	a.moveX(step, speed, keys)
	a.moveY(step, speed, keys)
}

func (a *Actor) moveX(step, speed float64, keys controls.Keys) {
	a.Speed.X = controls.Axis(keys, controls.Left, controls.Right) * speed
	a.Pos = a.Pos.Plus(gamemath.Vector{X: a.Speed.X * step})
}

// Screen coordinates: y grows downward, so up is negative.
func (a *Actor) moveY(step, speed float64, keys controls.Keys) {
	a.Speed.Y = controls.Axis(keys, controls.Up, controls.Down) * speed
	a.Pos = a.Pos.Plus(gamemath.Vector{Y: a.Speed.Y * step})
}
