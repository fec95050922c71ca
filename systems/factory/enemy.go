package factory

import (
	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns the melee enemy facing left. When space is non-nil the
// enemy gets a probe object in it for ledge checks.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.SpawnPoint, space *resolv.Space) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	initActor(enemy, netconfig.EnemyID, netconfig.KindEnemy, cfg.Enemy, spawn, -1)

	ai := components.EnemyAIData{}
	if space != nil {
		w, h := cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight
		obj := resolv.NewObject(spawn.X, spawn.Y, w, h, tags.ResolvEnemy)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		obj.Data = enemy
		space.Add(obj)
		ai.Probe = obj
	}
	components.EnemyAI.SetValue(enemy, ai)

	return enemy
}
