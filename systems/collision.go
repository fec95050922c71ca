package systems

import (
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollision moves every actor through the tile grid. An actor whose
// position or velocity stops being finite is put back at its spawn.
func UpdateCollision(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	room := level.Room
	dt := tickDt(ecs.World)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		actor := components.Actor.Get(e)

		if physics.Finite() {
			res := gamemath.ResolveTileMove(room.Grid, room.Solid, float64(room.TileSize),
				physics.Rect(), physics.VX, physics.VY, dt)
			physics.X, physics.Y = res.Rect.X, res.Rect.Y
			physics.VX, physics.VY = res.VX, res.VY
			physics.Grounded = res.Grounded
		}

		if !physics.Finite() {
			logger.Log.WithFields(logrus.Fields{
				"actor":   actor.ID,
				"spawn_x": actor.Spawn.X,
				"spawn_y": actor.Spawn.Y,
			}).Warn("non-finite physics state, resetting actor to spawn")
			physics.ResetTo(actor.Spawn)
			components.PushEvent(ecs.World, messages.ResetEvent{ActorID: actor.ID})
		}

		syncProbe(e, physics)
	})
}

// syncProbe moves the enemy's resolv probe to its hitbox.
func syncProbe(e *donburi.Entry, physics *components.PhysicsData) {
	if !e.HasComponent(components.EnemyAI) {
		return
	}
	probe := components.EnemyAI.Get(e).Probe
	if probe == nil {
		return
	}
	probe.X, probe.Y = physics.X, physics.Y
	probe.Update()
}

// UpdateFacing points each living actor along its movement, or where its
// intent asks to look while standing.
func UpdateFacing(ecs *ecs.ECS) {
	components.Intent.Each(ecs.World, func(e *donburi.Entry) {
		if components.State.Get(e).Dead() {
			return
		}
		intent := components.Intent.Get(e)
		physics := components.Physics.Get(e)
		switch {
		case intent.Dir != 0:
			physics.Facing = clampDir(intent.Dir)
		case intent.Face != 0:
			physics.Facing = clampDir(intent.Face)
		}
	})
}
