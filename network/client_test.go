package network

import (
	"os"
	"testing"

	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestNewClientIsIdle(t *testing.T) {
	c := NewClient()
	assert.Equal(t, StateDisconnected, c.State())
	assert.Nil(t, c.LatestSnapshot())
	assert.Empty(t, c.DrainEvents())
	assert.NoError(t, c.SendMessage(messages.RestartRequest{}), "dropped before join")
}

func TestEventsDrainInOrder(t *testing.T) {
	c := NewClient()
	c.pushEvent(messages.HitEvent{Damage: 10})
	c.pushEvent(messages.DeathEvent{})

	got := c.DrainEvents()
	assert.Equal(t, []messages.Event{messages.HitEvent{Damage: 10}, messages.DeathEvent{}}, got)
	assert.Empty(t, c.DrainEvents())
}

func TestEventOverflowDrops(t *testing.T) {
	c := NewClient()
	for i := 0; i < 40; i++ {
		c.pushEvent(messages.HitEvent{Damage: i})
	}
	assert.Len(t, c.DrainEvents(), 16)
}

func TestSendWithoutConnection(t *testing.T) {
	c := NewClient()
	c.state = StateJoinedGame
	assert.Error(t, c.SendMessage(messages.RestartRequest{}))
}

func TestClientStateString(t *testing.T) {
	assert.Equal(t, "joined", StateJoinedGame.String())
	assert.Equal(t, "disconnected", ClientState(99).String())
}
