package archetypes

import (
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.Match,
		components.EventQueue,
	)
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Physics,
		components.CombatTimers,
		components.Health,
		components.State,
		components.Intent,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
		components.Physics,
		components.CombatTimers,
		components.Health,
		components.State,
		components.Intent,
		components.Animation,
		components.EnemyAI,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
