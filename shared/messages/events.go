package messages

import "github.com/automoto/tilebrawl/shared/netconfig"

// Event is anything the simulation reports after a tick.
type Event interface {
	event()
}

// HitEvent is emitted when an attack connects
type HitEvent struct {
	AttackerID netconfig.ActorID
	TargetID   netconfig.ActorID
	Damage     int
	HPAfter    int
}

// DeathEvent is emitted once, on the tick an actor's HP first reaches zero
type DeathEvent struct {
	VictimID netconfig.ActorID
	KillerID netconfig.ActorID // NoActor for debug kills
}

// StateChangeEvent is emitted when an actor's animation label changes or
// a one-shot label starts over
type StateChangeEvent struct {
	ActorID netconfig.ActorID
	From    netconfig.StateID
	To      netconfig.StateID
}

// ResetEvent is emitted when an actor with non-finite physics is put back
// at its spawn
type ResetEvent struct {
	ActorID netconfig.ActorID
}

// MatchOverEvent is emitted on the tick one side dies
type MatchOverEvent struct {
	Outcome netconfig.MatchStateID
}

func (HitEvent) event()         {}
func (DeathEvent) event()       {}
func (StateChangeEvent) event() {}
func (ResetEvent) event()       {}
func (MatchOverEvent) event()   {}
