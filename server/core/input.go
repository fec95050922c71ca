package core

import (
	"sync"

	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/sim"
)

// InputSlot hands the controlling client's latest input from router
// goroutines to the game loop. Attack presses are latched until a tick
// consumes them so a press and release between two ticks still swings.
type InputSlot struct {
	mu      sync.Mutex
	tracker sim.EdgeTracker
	latest  sim.InputState
	attack  bool
}

// Offer records in. It reports false for stale or duplicate packets.
func (s *InputSlot) Offer(in messages.PlayerInput) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, fresh := s.tracker.Accept(in)
	if !fresh {
		return false
	}
	s.latest = state
	s.attack = s.attack || state.Attack
	return true
}

// Take returns the controls for the next tick and clears the latch.
func (s *InputSlot) Take() sim.InputState {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := s.latest
	in.Attack = s.attack
	s.attack = false
	return in
}

// Reset drops all input, for a controller change.
func (s *InputSlot) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Reset()
	s.latest = sim.InputState{}
	s.attack = false
}
