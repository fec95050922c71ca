package components

import (
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/yohamta/donburi"
)

// AnimationData is the derived animation label of an actor.
type AnimationData struct {
	Label    netconfig.StateID
	Previous netconfig.StateID
	// Entry is the state entry the label was derived from.
	Entry uint32
}

var Animation = donburi.NewComponentType[AnimationData]()
