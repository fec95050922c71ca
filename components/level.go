package components

import (
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Room *leveldata.Room
	// Space mirrors the solid tiles as resolv objects. Movement uses the
	// tile grid directly; the space serves probes and debug drawing.
	Space *resolv.Space
}

var Level = donburi.NewComponentType[LevelData]()
