// Package leveldata parses level plans into tile grids and owns the level's
// actors. It has no dependencies on ebitengine, donburi, or resolv, so every
// display (window, terminal, headless) shares it.
package leveldata

import "github.com/automoto/platformer/gamemath"

// TileKind classifies a grid cell.
type TileKind uint8

const (
	Empty TileKind = iota
	Wall
	Lava
	Floater
)

// String returns the class name used to style the tile. Empty tiles have none.
func (k TileKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Lava:
		return "lava"
	case Floater:
		return "floater"
	}
	return ""
}

// Plan glyphs.
const (
	GlyphPlayer  = '@'
	GlyphWall    = 'x'
	GlyphLava    = '!'
	GlyphFloater = 'y'
	GlyphEmpty   = ' '
)

// Plan is a named textual layout, one string per row.
type Plan struct {
	Name string
	Rows []string
}

// Level is a parsed plan.
type Level struct {
	Name   string
	Width  int
	Height int
	Grid   [][]TileKind
	Player *Actor
	Motion Motion
}

// TileAt returns the tile at column x, row y. Cells outside the grid are Empty.
func (l *Level) TileAt(x, y int) TileKind {
	if y < 0 || y >= len(l.Grid) || x < 0 || x >= len(l.Grid[y]) {
		return Empty
	}
	return l.Grid[y][x]
}

// Actors returns every actor in the level. Only the player exists today.
func (l *Level) Actors() []*Actor {
	if l.Player == nil {
		return nil
	}
	return []*Actor{l.Player}
}

// ActorKind tags the variant of an Actor.
type ActorKind uint8

const (
	ActorPlayer ActorKind = iota
)

func (k ActorKind) String() string {
	switch k {
	case ActorPlayer:
		return "player"
	}
	return "unknown"
}

// Actor is an entity with position, size and velocity, in level units.
type Actor struct {
	Pos   gamemath.Vector
	Size  gamemath.Vector
	Speed gamemath.Vector
	Kind  ActorKind
}

// Player start geometry.
var (
	PlayerOffset = gamemath.Vector{X: 0, Y: -0.5}
	PlayerSize   = gamemath.Vector{X: 0.8, Y: 1.5}
)

// NewPlayer places a player on the start cell at cell.
func NewPlayer(cell gamemath.Vector) *Actor {
	return &Actor{
		Pos:  cell.Plus(PlayerOffset),
		Size: PlayerSize,
		Kind: ActorPlayer,
	}
}
