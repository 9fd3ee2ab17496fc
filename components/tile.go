package components

import (
	"github.com/automoto/platformer/leveldata"
	"github.com/yohamta/donburi"
)

// TileData is one background cell.
type TileData struct {
	Col, Row int
	Kind     leveldata.TileKind
	BaseY    float64 // Resting pixel Y; floaters bob around it
}

var Tile = donburi.NewComponentType[TileData]()
