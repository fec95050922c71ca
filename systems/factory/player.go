package factory

import (
	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn leveldata.SpawnPoint) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	initActor(player, netconfig.PlayerID, netconfig.KindPlayer, cfg.Player, spawn, 1)
	return player
}

// initActor fills the components shared by every character. Actors start
// grounded at spawn with full health.
func initActor(e *donburi.Entry, id netconfig.ActorID, kind netconfig.ActorKind, c cfg.ActorConfig, spawn leveldata.SpawnPoint, facing int) {
	components.Actor.SetValue(e, components.ActorData{
		ID:             id,
		Kind:           kind,
		Spawn:          gamemath.Vec{X: spawn.X, Y: spawn.Y},
		RenderOffset:   gamemath.Vec{X: c.RenderOffsetX, Y: c.RenderOffsetY},
		MoveSpeed:      c.MoveSpeed,
		Damage:         c.Damage,
		AttackCooldown: c.AttackCooldown,
		SpriteSheetKey: c.SpriteSheetKey,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		X:        spawn.X,
		Y:        spawn.Y,
		W:        c.CollisionWidth,
		H:        c.CollisionHeight,
		Grounded: true,
		Facing:   facing,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: c.MaxHP,
		Max:     c.MaxHP,
	})
	components.State.SetValue(e, components.StateData{
		Current:  components.StateIdle,
		Previous: components.StateIdle,
	})
	components.Animation.SetValue(e, components.AnimationData{
		Label:    netconfig.Idle,
		Previous: netconfig.StateNone,
	})
}
