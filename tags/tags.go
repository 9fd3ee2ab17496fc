package tags

import (
	"github.com/automoto/platformer/leveldata"
	"github.com/yohamta/donburi"
)

var (
	Tile       = donburi.NewTag().SetName("Tile")
	Floater    = donburi.NewTag().SetName("Floater")
	ActorLayer = donburi.NewTag().SetName("ActorLayer")
)

// Resolv tags for tile and actor objects
var (
	ResolvWall    = leveldata.Wall.String()
	ResolvLava    = leveldata.Lava.String()
	ResolvFloater = leveldata.Floater.String()
	ResolvPlayer  = leveldata.ActorPlayer.String()
)

// ResolvTiles lists every tile tag, for overlap queries.
var ResolvTiles = []string{ResolvWall, ResolvLava, ResolvFloater}
