package animations

import (
	"testing"

	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/stretchr/testify/assert"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(3, 10, true)
	a.Update(0.1)
	assert.Equal(t, 1, a.Frame())
	a.Update(0.25)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationFreezes(t *testing.T) {
	a := NewAnimation(4, 10, false)
	a.Update(1)
	assert.Equal(t, 3, a.Frame())
	a.Update(1)
	assert.Equal(t, 3, a.Frame())

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}

func TestAnimationIgnoresBadDt(t *testing.T) {
	a := NewAnimation(4, 10, true)
	a.Update(0)
	a.Update(-1)
	assert.Equal(t, 0, a.Frame())
}

func TestPlayerReportsOneShotOnce(t *testing.T) {
	cfg.Reset()
	p := NewPlayer("king")

	assert.False(t, p.Update(netconfig.Idle, 0, 0.05))

	// king attack is 3 frames at 10 fps.
	finished := 0
	for i := 0; i < 20; i++ {
		if p.Update(netconfig.Attack, 1, 0.05) {
			finished++
			assert.Equal(t, 5, i, "finishes after 0.3s")
		}
	}
	assert.Equal(t, 1, finished)
	assert.Equal(t, 2, p.Frame())
}

func TestPlayerRestartsOnNewEntry(t *testing.T) {
	cfg.Reset()
	p := NewPlayer("king")
	for i := 0; i < 6; i++ {
		p.Update(netconfig.Attack, 1, 0.05)
	}
	assert.False(t, p.Update(netconfig.Attack, 1, 0.05), "first swing already reported")

	// Same label, next swing.
	p.Update(netconfig.Attack, 2, 0.01)
	assert.Equal(t, 0, p.Frame())
	finished := 0
	for i := 0; i < 10; i++ {
		if p.Update(netconfig.Attack, 2, 0.05) {
			finished++
		}
	}
	assert.Equal(t, 1, finished)
}

func TestPlayerRestartsOnLabelChange(t *testing.T) {
	cfg.Reset()
	p := NewPlayer("pig")
	p.Update(netconfig.Running, 0, 0.25)
	assert.Equal(t, 2, p.Frame())

	p.Update(netconfig.Hit, 1, 0.01)
	assert.Equal(t, netconfig.Hit, p.Label())
	assert.Equal(t, 0, p.Frame())

	p.Update(netconfig.Running, 0, 0.01)
	assert.Equal(t, 0, p.Frame())
}

func TestPlayerLoopingLabelsNeverFinish(t *testing.T) {
	cfg.Reset()
	p := NewPlayer("king")
	for i := 0; i < 100; i++ {
		assert.False(t, p.Update(netconfig.Running, 0, 0.05))
	}
	for i := 0; i < 100; i++ {
		assert.False(t, p.Update(netconfig.Dead, 0, 0.05))
	}
	assert.Equal(t, 3, p.Frame())
}

func TestPlayerWithoutStrips(t *testing.T) {
	p := NewPlayer("nobody")
	assert.True(t, p.Update(netconfig.Hit, 1, 0.01))
	assert.False(t, p.Update(netconfig.Hit, 1, 0.01))
	assert.False(t, p.Update(netconfig.Idle, 0, 0.01))
}
