package systems

import (
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActions turns each actor's intent into horizontal speed, jumps and
// attack starts. Dead actors ignore intent.
func UpdateActions(ecs *ecs.ECS) {
	components.Intent.Each(ecs.World, func(e *donburi.Entry) {
		intent := components.Intent.Get(e)
		applyIntent(e, intent)
		// Attack is an edge; it is spent whether or not it started a swing.
		intent.Attack = false
	})
}

func applyIntent(e *donburi.Entry, intent *components.IntentData) {
	actor := components.Actor.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	timers := components.CombatTimers.Get(e)

	if state.Dead() {
		physics.VX = 0
		return
	}

	dir := clampDir(intent.Dir)
	physics.VX = float64(dir) * actor.MoveSpeed

	if intent.JumpHeld && physics.Grounded && !physics.JumpLock {
		physics.VY = -cfg.Physics.JumpVelocity
		physics.Grounded = false
		physics.JumpLock = true
	}
	if !intent.JumpHeld {
		physics.JumpLock = false
	}

	if intent.Attack && state.Free() && timers.CanAct() {
		if state.Transition(components.StateAttacking) {
			timers.StartAttack(actor.AttackCooldown)
		}
	}
}

func clampDir(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}
