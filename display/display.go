// Package display defines the renderer capability the level runner talks to,
// plus the presentation math every backend shares: tile and actor boxes in
// pixels and the scroll-into-view rule.
package display

import (
	"github.com/automoto/platformer/gamemath"
	"github.com/automoto/platformer/leveldata"
)

// Scale is the default number of pixels per level unit.
const Scale = 20

// Display presents one level. Constructing it builds the background and
// draws the first frame; DrawFrame replaces the actor representation and
// scrolls the viewport.
type Display interface {
	DrawFrame()
}

// Factory is the constructor-style boundary: given a level it returns a
// Display bound to whatever host it was configured with.
type Factory func(level *leveldata.Level) (Display, error)

// Closer is implemented by displays that own host resources.
type Closer interface {
	Close() error
}

// Rect is an axis-aligned box in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return o.X < r.X+r.W && r.X < o.X+o.W && o.Y < r.Y+r.H && r.Y < o.Y+o.H
}

// Cell is one background tile.
type Cell struct {
	Col, Row int
	Kind     leveldata.TileKind
	Rect     Rect
}

// Class is the style class of the cell, as in the background table.
func (c Cell) Class() string {
	return c.Kind.String()
}

// Background lists every grid cell of level, empty ones included, row by row.
func Background(level *leveldata.Level, scale float64) []Cell {
	cells := make([]Cell, 0, level.Width*level.Height)
	for y, row := range level.Grid {
		for x, kind := range row {
			cells = append(cells, Cell{
				Col:  x,
				Row:  y,
				Kind: kind,
				Rect: Rect{X: float64(x) * scale, Y: float64(y) * scale, W: scale, H: scale},
			})
		}
	}
	return cells
}

// ActorBox is an actor's display rectangle.
type ActorBox struct {
	Class string
	Rect  Rect
}

// BoxFor sizes and positions an actor box from pos and size times scale.
func BoxFor(actor *leveldata.Actor, scale float64) ActorBox {
	pos := actor.Pos.Times(scale)
	size := actor.Size.Times(scale)
	return ActorBox{
		Class: "actor " + actor.Kind.String(),
		Rect:  Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y},
	}
}

// ActorCenter is the actor's center in pixels.
func ActorCenter(actor *leveldata.Actor, scale float64) gamemath.Vector {
	return gamemath.Center(actor.Pos, actor.Size).Times(scale)
}
