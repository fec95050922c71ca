package components

import (
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/yohamta/donburi"
)

// ActorState is the single authoritative state of an actor. Locomotion
// states (idle, running, jumping) are refreshed every tick; attacking and
// hit last until their animation reports completion; dead is terminal.
type ActorState int

const (
	StateIdle ActorState = iota
	StateRunning
	StateJumping
	StateAttacking
	StateHit
	StateDead
)

func (s ActorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateAttacking:
		return "attacking"
	case StateHit:
		return "hit"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Locomotion reports whether the state only reflects movement.
func (s ActorState) Locomotion() bool {
	return s == StateIdle || s == StateRunning || s == StateJumping
}

// CanTransition is the transition table. Dead accepts nothing. Dead and hit
// can be entered from any other state, so a hit interrupts an attack.
// Attacking and locomotion need the actor to be free.
func CanTransition(from, to ActorState) bool {
	switch {
	case from == StateDead:
		return false
	case to == StateDead, to == StateHit:
		return true
	default:
		return from.Locomotion()
	}
}

// OneShot reports whether the state lasts until its animation completes.
func (s ActorState) OneShot() bool {
	return s == StateAttacking || s == StateHit
}

type StateData struct {
	Current  ActorState
	Previous ActorState
	// Entry counts one-shot entries, so entering hit while already hit is
	// still a new animation.
	Entry uint32
}

// Transition moves to the given state if the table allows it.
func (s *StateData) Transition(to ActorState) bool {
	if !CanTransition(s.Current, to) {
		return false
	}
	if s.Current != to {
		s.Previous = s.Current
		s.Current = to
	}
	if to.OneShot() {
		s.Entry++
	}
	return true
}

// Complete ends a one-shot state when its animation finishes. Signals that
// do not match the current state are ignored.
func (s *StateData) Complete(label netconfig.StateID) bool {
	switch {
	case s.Current == StateAttacking && label == netconfig.Attack,
		s.Current == StateHit && label == netconfig.Hit:
		s.Previous = s.Current
		s.Current = StateIdle
		return true
	}
	return false
}

func (s *StateData) Attacking() bool { return s.Current == StateAttacking }
func (s *StateData) IsHit() bool     { return s.Current == StateHit }
func (s *StateData) Dead() bool      { return s.Current == StateDead }

// Free reports whether the actor may start an attack.
func (s *StateData) Free() bool { return s.Current.Locomotion() }

var State = donburi.NewComponentType[StateData]()
