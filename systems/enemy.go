package systems

import (
	"math"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyIntent hands last tick's movement decision to the action step.
// Attacks are started by the policy itself.
func UpdateEnemyIntent(ecs *ecs.ECS) {
	components.EnemyAI.Each(ecs.World, func(e *donburi.Entry) {
		ai := components.EnemyAI.Get(e)
		intent := components.Intent.Get(e)
		intent.Dir = ai.Dir
		intent.Attack = false
		intent.JumpHeld = false
	})
}

// UpdateEnemyAI is the placeholder enemy policy: face the player, close in
// when near, hold at a short distance, and swing when the player is in reach
// and the cooldown has run out. Swings start on this tick's positions so
// combat sees them right away. It never walks off a ledge.
func UpdateEnemyAI(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Physics.Get(playerEntry)
	playerDead := components.State.Get(playerEntry).Dead()

	components.EnemyAI.Each(ecs.World, func(e *donburi.Entry) {
		ai := components.EnemyAI.Get(e)
		decideEnemy(ai,
			components.Intent.Get(e),
			components.Physics.Get(e),
			components.State.Get(e),
			components.CombatTimers.Get(e),
			components.Actor.Get(e).AttackCooldown,
			player, playerDead, cfg.EnemyAI)
	})
}

func decideEnemy(ai *components.EnemyAIData, intent *components.IntentData, self *components.PhysicsData,
	state *components.StateData, timers *components.CombatTimersData, cooldown float64,
	player *components.PhysicsData, playerDead bool, c cfg.EnemyAIConfig) {
	ai.Dir = 0
	if state.Dead() || playerDead {
		ai.Chasing = false
		intent.Face = 0
		return
	}

	selfC, playerC := self.Center(), player.Center()
	dx := playerC.X - selfC.X
	dist := math.Abs(dx)
	intent.Face = int(gamemath.Sign(dx))

	switch {
	case dist <= c.ChaseRange:
		ai.Chasing = true
	case dist > c.LoseRange:
		ai.Chasing = false
	}

	if ai.Chasing && dist > c.StopDistance && state.Free() {
		dir := int(gamemath.Sign(dx))
		if !self.Grounded || !atLedge(ai.Probe, dir, c.LedgeProbe) {
			ai.Dir = dir
		}
	}

	if state.Free() && timers.CanAct() &&
		InMeleeRange(selfC, playerC, cfg.Combat.RangeX, cfg.Combat.RangeY) &&
		state.Transition(components.StateAttacking) {
		timers.StartAttack(cooldown)
	}
}

// atLedge reports whether there is no solid ground under the space one
// hitbox width plus ahead pixels in front of the probe. Without a probe the
// enemy never considers itself at a ledge.
func atLedge(probe *resolv.Object, dir int, ahead float64) bool {
	if probe == nil || probe.Space == nil {
		return false
	}
	return probe.Check((probe.W+ahead)*float64(dir), probe.H+4.0, tags.ResolvSolid) == nil
}
