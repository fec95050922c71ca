package systems

import (
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewNetInterpSystem eases replicated positions toward their latest
// snapshot. frameDt is the client frame length in seconds; tickRate
// reports the server's rate once known.
func NewNetInterpSystem(tickRate func() int, frameDt float64) ecs.System {
	return func(e *ecs.ECS) {
		rate := tickRate()
		if rate <= 0 {
			return
		}
		ticks := frameDt * float64(rate)
		components.NetInterp.Each(e.World, func(entry *donburi.Entry) {
			interp := components.NetInterp.Get(entry)
			if !interp.Initialized || !entry.HasComponent(netcomponents.NetPosition) {
				return
			}
			netcomponents.NetPosition.SetValue(entry, interp.Advance(ticks, rate))
		})
	}
}
