// Package gamemath holds the small amount of math shared by the level model
// and every display. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

// Vector is a 2D point or displacement in level units.
type Vector struct {
	X, Y float64
}

// Plus returns v + other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by factor.
func (v Vector) Times(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Center returns the midpoint of the box at pos with the given size.
func Center(pos, size Vector) Vector {
	return pos.Plus(size.Times(0.5))
}
