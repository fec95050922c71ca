package systems

import (
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AnimationInputs is everything the label depends on.
type AnimationInputs struct {
	Grounded  bool
	Dir       int
	Attacking bool
	Hit       bool
	Dead      bool
}

// DeriveAnimation picks the label by priority: dead, hit, attack, jump,
// run, idle.
func DeriveAnimation(in AnimationInputs) netconfig.StateID {
	switch {
	case in.Dead:
		return netconfig.Dead
	case in.Hit:
		return netconfig.Hit
	case in.Attacking:
		return netconfig.Attack
	case !in.Grounded:
		return netconfig.Jump
	case in.Dir != 0:
		return netconfig.Running
	}
	return netconfig.Idle
}

var locomotionStates = map[netconfig.StateID]components.ActorState{
	netconfig.Idle:    components.StateIdle,
	netconfig.Running: components.StateRunning,
	netconfig.Jump:    components.StateJumping,
}

// UpdateAnimation derives each actor's label, refreshes locomotion states
// to match and reports label changes. Re-entering a one-shot state counts
// as a change even when the label stays the same.
func UpdateAnimation(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		physics := components.Physics.Get(e)
		intent := components.Intent.Get(e)
		anim := components.Animation.Get(e)

		label := DeriveAnimation(AnimationInputs{
			Grounded:  physics.Grounded,
			Dir:       intent.Dir,
			Attacking: state.Attacking(),
			Hit:       state.IsHit(),
			Dead:      state.Dead(),
		})
		if next, ok := locomotionStates[label]; ok && state.Current.Locomotion() {
			state.Transition(next)
		}

		entry := anim.Entry
		if label.OneShot() {
			entry = state.Entry
		}
		if label == anim.Label && entry == anim.Entry {
			return
		}
		anim.Previous, anim.Label, anim.Entry = anim.Label, label, entry
		components.PushEvent(ecs.World, messages.StateChangeEvent{
			ActorID: components.Actor.Get(e).ID,
			From:    anim.Previous,
			To:      label,
		})
	})
}

// CompleteAnimation delivers a playback completion signal for one entry of
// a one-shot state. It reports whether the signal ended the actor's current
// state; signals for an earlier entry are ignored.
func CompleteAnimation(w donburi.World, id netconfig.ActorID, label netconfig.StateID, entry uint32) bool {
	done := false
	components.Actor.Each(w, func(e *donburi.Entry) {
		if components.Actor.Get(e).ID != id {
			return
		}
		state := components.State.Get(e)
		if state.Entry != entry {
			return
		}
		done = state.Complete(label)
	})
	return done
}
