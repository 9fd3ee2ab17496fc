package components

import (
	"github.com/automoto/platformer/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
	Index int     // Position in the plan list, -1 when started from outside it
	Scale float64 // Pixels per level unit
	Frame int
}

var Level = donburi.NewComponentType[LevelData]()
