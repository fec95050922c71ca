package components

import (
	"math"
	"testing"

	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombatTimersTick(t *testing.T) {
	c := CombatTimersData{IFramesRemaining: 0.1, AtkCooldownRemaining: 0.3}

	c.Tick(0.05, true)
	assert.InDelta(t, 0.05, c.IFramesRemaining, 1e-9)
	assert.InDelta(t, 0.25, c.AtkCooldownRemaining, 1e-9)
	assert.InDelta(t, 0.05, c.AtkElapsed, 1e-9)

	c.DidHitThisSwing = true
	c.Tick(0.2, false)
	assert.Equal(t, 0.0, c.IFramesRemaining)
	assert.InDelta(t, 0.05, c.AtkCooldownRemaining, 1e-9)
	assert.Equal(t, 0.0, c.AtkElapsed)
	assert.False(t, c.DidHitThisSwing)
	assert.True(t, c.Vulnerable())
	assert.False(t, c.CanAct())

	c.Tick(1, false)
	assert.True(t, c.CanAct())
}

func TestCombatTimersActiveWindow(t *testing.T) {
	c := CombatTimersData{}
	c.StartAttack(0.8)
	assert.Equal(t, 0.8, c.AtkCooldownRemaining)

	for _, tt := range []struct {
		elapsed float64
		want    bool
	}{
		{0, false},
		{0.11, false},
		{0.12, true},
		{0.2, true},
		{0.24, true},
		{0.25, false},
	} {
		c.AtkElapsed = tt.elapsed
		assert.Equal(t, tt.want, c.InActiveWindow(0.12, 0.12), "elapsed %v", tt.elapsed)
	}
}

func TestHealthTakeDamage(t *testing.T) {
	h := HealthData{Current: 60, Max: 60}

	var seq []int
	var deaths []int
	for i := 1; i <= 7; i++ {
		if h.TakeDamage(12) {
			deaths = append(deaths, i)
		}
		seq = append(seq, h.Current)
	}
	assert.Equal(t, []int{48, 36, 24, 12, 0, 0, 0}, seq)
	assert.Equal(t, []int{5}, deaths)
}

func TestHealthOverkillFloorsAtZero(t *testing.T) {
	h := HealthData{Current: 5, Max: 100}
	assert.True(t, h.TakeDamage(50))
	assert.Equal(t, 0, h.Current)
	assert.Equal(t, 0.0, h.Ratio())
}

func TestHealthRatio(t *testing.T) {
	assert.Equal(t, 0.5, (&HealthData{Current: 50, Max: 100}).Ratio())
	assert.Equal(t, 1.0, (&HealthData{Current: 150, Max: 100}).Ratio())
	assert.Equal(t, 0.0, (&HealthData{Current: 10, Max: 0}).Ratio())
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to ActorState
		want     bool
	}{
		{StateIdle, StateRunning, true},
		{StateRunning, StateAttacking, true},
		{StateJumping, StateAttacking, true},
		{StateAttacking, StateRunning, false},
		{StateAttacking, StateAttacking, false},
		{StateAttacking, StateHit, true},
		{StateHit, StateAttacking, false},
		{StateHit, StateHit, true},
		{StateHit, StateDead, true},
		{StateDead, StateHit, false},
		{StateDead, StateIdle, false},
		{StateDead, StateDead, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStateComplete(t *testing.T) {
	s := StateData{Current: StateAttacking}
	assert.False(t, s.Complete(netconfig.Hit), "mismatched label is ignored")
	assert.True(t, s.Attacking())
	assert.True(t, s.Complete(netconfig.Attack))
	assert.Equal(t, StateIdle, s.Current)
	assert.Equal(t, StateAttacking, s.Previous)

	s = StateData{Current: StateDead}
	assert.False(t, s.Complete(netconfig.Dead))
	assert.True(t, s.Dead())
}

func TestStateEntryCountsOneShots(t *testing.T) {
	var s StateData
	require.True(t, s.Transition(StateRunning))
	assert.Zero(t, s.Entry)

	require.True(t, s.Transition(StateAttacking))
	assert.Equal(t, uint32(1), s.Entry)
	assert.False(t, s.Transition(StateAttacking), "busy")
	assert.Equal(t, uint32(1), s.Entry)

	require.True(t, s.Transition(StateHit))
	require.True(t, s.Transition(StateHit))
	assert.Equal(t, uint32(3), s.Entry)
	assert.Equal(t, StateHit, s.Current)

	require.True(t, s.Transition(StateDead))
	assert.Equal(t, uint32(3), s.Entry)
}

func TestPhysicsResetTo(t *testing.T) {
	p := PhysicsData{X: math.NaN(), Y: 3, VX: math.Inf(1), W: 18, H: 26, JumpLock: true}
	assert.False(t, p.Finite())

	p.ResetTo(gamemath.Vec{X: 400, Y: 300})
	assert.True(t, p.Finite())
	assert.True(t, p.Grounded)
	assert.False(t, p.JumpLock)
	assert.Equal(t, gamemath.Vec{X: 409, Y: 313}, p.Center())
}

func TestNetInterp(t *testing.T) {
	var d NetInterpData
	vel := netcomponents.NetVelocityData{SpeedX: 4}

	// First snapshot snaps.
	d.Receive(netcomponents.NetPositionData{}, netcomponents.NetPositionData{X: 10, Y: 20}, vel)
	assert.Equal(t, netcomponents.NetPositionData{X: 10, Y: 20}, d.Advance(0, 2))

	d.Receive(netcomponents.NetPositionData{X: 10, Y: 20}, netcomponents.NetPositionData{X: 20, Y: 20}, vel)
	assert.Equal(t, netcomponents.NetPositionData{X: 15, Y: 20}, d.Advance(0.5, 2))
	assert.Equal(t, netcomponents.NetPositionData{X: 20, Y: 20}, d.Advance(0.5, 2))

	// Past the snapshot the velocity carries it, for one tick at most.
	assert.Equal(t, netcomponents.NetPositionData{X: 21, Y: 20}, d.Advance(0.5, 2))
	assert.Equal(t, netcomponents.NetPositionData{X: 22, Y: 20}, d.Advance(5, 2))
}
