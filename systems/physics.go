package systems

import (
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity to airborne actors and pins grounded ones
// to the floor.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickDt(ecs.World)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		applyGravity(components.Physics.Get(e), dt)
	})
}

func applyGravity(p *components.PhysicsData, dt float64) {
	if p.Grounded {
		p.VY = 0
		return
	}
	p.VY = gamemath.ClampFall(p.VY+cfg.Physics.Gravity*dt, cfg.Physics.MaxFallSpeed)
}
