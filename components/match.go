package components

import (
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/yohamta/donburi"
)

// MatchData stores the round outcome and clock.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State   netconfig.MatchStateID
	Ticks   uint64
	Elapsed float64 // simulated seconds
	Dt      float64 // step of the tick in progress
}

var Match = donburi.NewComponentType[MatchData]()
