package sim

import (
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netconfig"
)

// InputFromActions maps pressed actions to tick controls. attackEdge must
// be true only on the frame the attack action went down; callers that
// only see held state (the server) track the edge themselves.
func InputFromActions(actions map[netconfig.ActionID]bool, attackEdge bool, seq uint32) InputState {
	return InputState{
		Left:     actions[netconfig.ActionMoveLeft],
		Right:    actions[netconfig.ActionMoveRight],
		Jump:     actions[netconfig.ActionJump],
		Attack:   attackEdge,
		Sequence: seq,
	}
}

// EdgeTracker turns held attack state from a stream of PlayerInput
// messages into a press edge, dropping messages that arrive out of order.
type EdgeTracker struct {
	lastSeq    uint32
	attackHeld bool
}

// Accept returns the controls for in and whether it was fresh.
func (t *EdgeTracker) Accept(in messages.PlayerInput) (InputState, bool) {
	if in.Sequence != 0 && in.Sequence <= t.lastSeq {
		return InputState{}, false
	}
	t.lastSeq = in.Sequence

	held := in.Actions[netconfig.ActionAttack]
	edge := held && !t.attackHeld
	t.attackHeld = held
	return InputFromActions(in.Actions, edge, in.Sequence), true
}

// Reset forgets sequence history, for a new connection.
func (t *EdgeTracker) Reset() {
	*t = EdgeTracker{}
}
