package components

import (
	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// maxExtrapolate is how far past the last snapshot, in server ticks, a
// position keeps moving on its reported velocity.
const maxExtrapolate = 1.0

// NetInterpData stores interpolation state for smooth rendering of
// replicated actors between server snapshots.
type NetInterpData struct {
	PrevX, PrevY     float64
	TargetX, TargetY float64
	T                float64 // progress in server ticks since the snapshot
	Initialized      bool
	VelX, VelY       float64 // px/s at the snapshot
}

// Receive starts a new leg from the currently drawn position to pos. The
// first snapshot places the actor without easing.
func (d *NetInterpData) Receive(current, pos netcomponents.NetPositionData, vel netcomponents.NetVelocityData) {
	if !d.Initialized {
		current = pos
		d.Initialized = true
		d.T = 1
	} else {
		d.T = 0
	}
	d.PrevX, d.PrevY = current.X, current.Y
	d.TargetX, d.TargetY = pos.X, pos.Y
	d.VelX, d.VelY = vel.SpeedX, vel.SpeedY
}

// Advance moves the leg forward by ticks server ticks and returns the
// position to draw. tickRate converts velocity into per-tick travel.
func (d *NetInterpData) Advance(ticks float64, tickRate int) netcomponents.NetPositionData {
	d.T = min(d.T+ticks, 1+maxExtrapolate)
	if d.T <= 1 {
		return *netcomponents.LerpNetPosition(
			netcomponents.NetPositionData{X: d.PrevX, Y: d.PrevY},
			netcomponents.NetPositionData{X: d.TargetX, Y: d.TargetY},
			d.T,
		)
	}
	over := (d.T - 1) / float64(max(tickRate, 1))
	return netcomponents.NetPositionData{
		X: d.TargetX + d.VelX*over,
		Y: d.TargetY + d.VelY*over,
	}
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
