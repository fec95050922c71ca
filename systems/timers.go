package systems

import (
	"github.com/automoto/tilebrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDt is the step of the tick being simulated.
func tickDt(w donburi.World) float64 {
	if entry, ok := components.Match.First(w); ok {
		return components.Match.Get(entry).Dt
	}
	return 0
}

// UpdateTimers decays invulnerability and cooldowns and advances or resets
// each swing clock from the state the actor started the tick in.
func UpdateTimers(ecs *ecs.ECS) {
	dt := tickDt(ecs.World)
	components.CombatTimers.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		components.CombatTimers.Get(e).Tick(dt, state.Attacking())
	})

	if entry, ok := components.Match.First(ecs.World); ok {
		match := components.Match.Get(entry)
		match.Ticks++
		match.Elapsed += dt
	}
}
