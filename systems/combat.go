package systems

import (
	"math"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Combatant is the slice of an actor that melee resolution reads and writes.
type Combatant struct {
	ID      netconfig.ActorID
	Damage  int
	Physics *components.PhysicsData
	Timers  *components.CombatTimersData
	Health  *components.HealthData
	State   *components.StateData
}

// CombatantOf gathers the combat components of an actor entry.
func CombatantOf(e *donburi.Entry) Combatant {
	actor := components.Actor.Get(e)
	return Combatant{
		ID:      actor.ID,
		Damage:  actor.Damage,
		Physics: components.Physics.Get(e),
		Timers:  components.CombatTimers.Get(e),
		Health:  components.Health.Get(e),
		State:   components.State.Get(e),
	}
}

// InMeleeRange is a rectangular reach test between two hitbox centers.
func InMeleeRange(a, b gamemath.Vec, rangeX, rangeY float64) bool {
	return math.Abs(a.X-b.X) <= rangeX && math.Abs(a.Y-b.Y) <= rangeY
}

// ResolveMeleeHit lands att's swing on def if every gate passes: att is
// attacking inside its active window and has not hit this swing, def is
// alive and out of i-frames, and the two are in range. It returns nil when
// nothing landed. death is non-nil only on the hit that kills def.
func ResolveMeleeHit(att, def Combatant, c cfg.CombatConfig) (hit *messages.HitEvent, death *messages.DeathEvent) {
	switch {
	case !att.State.Attacking():
		return nil, nil
	case !att.Timers.InActiveWindow(c.AttackWindup, c.AttackActive):
		return nil, nil
	case att.Timers.DidHitThisSwing:
		return nil, nil
	case def.State.Dead():
		return nil, nil
	case !def.Timers.Vulnerable():
		return nil, nil
	case !InMeleeRange(att.Physics.Center(), def.Physics.Center(), c.RangeX, c.RangeY):
		return nil, nil
	}

	att.Timers.DidHitThisSwing = true
	def.Timers.IFramesRemaining = c.IFrameTime
	return ApplyDamage(def, att.Damage, att.ID)
}

// ApplyDamage takes amount off def's health and moves it to hit or, on the
// killing blow, dead. It does not check i-frames.
func ApplyDamage(def Combatant, amount int, attacker netconfig.ActorID) (*messages.HitEvent, *messages.DeathEvent) {
	if def.State.Dead() {
		return nil, nil
	}
	died := def.Health.TakeDamage(amount)
	hit := &messages.HitEvent{
		AttackerID: attacker,
		TargetID:   def.ID,
		Damage:     amount,
		HPAfter:    def.Health.Current,
	}
	if died {
		def.State.Transition(components.StateDead)
		return hit, &messages.DeathEvent{VictimID: def.ID, KillerID: attacker}
	}
	def.State.Transition(components.StateHit)
	return hit, nil
}

// UpdateCombat resolves the player's swing against the enemy, then the
// enemy's against the player.
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	enemyEntry, ok := tags.Enemy.First(ecs.World)
	if !ok {
		return
	}
	player := CombatantOf(playerEntry)
	enemy := CombatantOf(enemyEntry)

	hit, death := ResolveMeleeHit(player, enemy, cfg.Combat)
	RecordHit(ecs.World, hit, death)
	hit, death = ResolveMeleeHit(enemy, player, cfg.Combat)
	RecordHit(ecs.World, hit, death)
}

// RecordHit queues the events of a resolved hit and settles the match when
// someone died.
func RecordHit(w donburi.World, hit *messages.HitEvent, death *messages.DeathEvent) {
	if hit == nil {
		return
	}
	components.PushEvent(w, *hit)
	if death == nil {
		return
	}
	components.PushEvent(w, *death)

	logger.Log.WithFields(logrus.Fields{
		"victim": death.VictimID,
		"killer": death.KillerID,
	}).Info("actor died")

	entry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(entry)
	if match.State != netconfig.MatchStatePlaying {
		return
	}
	if death.VictimID == netconfig.PlayerID {
		match.State = netconfig.MatchStatePlayerLost
	} else {
		match.State = netconfig.MatchStatePlayerWon
	}
	components.PushEvent(w, messages.MatchOverEvent{Outcome: match.State})
}
