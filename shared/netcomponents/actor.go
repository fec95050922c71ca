package netcomponents

import (
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetActorData is the replicated view of one actor. Position lives in
// NetPosition so it can be interpolated separately.
type NetActorData struct {
	ActorID      netconfig.ActorID
	Kind         netconfig.ActorKind
	StateID      netconfig.StateID
	Entry        uint32 // one-shot restarts of StateID
	Facing       int // -1 left, 1 right
	HP           int
	MaxHP        int
	LastSequence uint32 // Last input sequence applied by the server
}

var NetActor = donburi.NewComponentType[NetActorData]()
