package netcomponents

import (
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetMatchData struct {
	State netconfig.MatchStateID
	Tick  uint64
	Room  string
}

var NetMatch = donburi.NewComponentType[NetMatchData]()
