package systems

import (
	"testing"

	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestNetInterpSystem(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(components.NetInterp, netcomponents.NetPosition))

	rate := 0
	system := NewNetInterpSystem(func() int { return rate }, 0.25)

	interp := components.NetInterp.Get(entry)
	interp.Receive(netcomponents.NetPositionData{}, netcomponents.NetPositionData{X: 0}, netcomponents.NetVelocityData{})
	interp.Receive(netcomponents.NetPositionData{X: 0}, netcomponents.NetPositionData{X: 8}, netcomponents.NetVelocityData{})

	// Nothing moves until the server's rate is known.
	system(e)
	assert.Equal(t, 0.0, netcomponents.NetPosition.Get(entry).X)

	rate = 2 // half a tick per frame
	system(e)
	assert.Equal(t, 4.0, netcomponents.NetPosition.Get(entry).X)
	system(e)
	assert.Equal(t, 8.0, netcomponents.NetPosition.Get(entry).X)
}
