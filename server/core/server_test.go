package core

import (
	"testing"

	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type fakePeer struct {
	id   string
	sent []any
}

func (p *fakePeer) Id() string { return p.id }

func (p *fakePeer) SendMessage(msg any) error {
	p.sent = append(p.sent, msg)
	return nil
}

func sentOf[T any](p *fakePeer) []T {
	var out []T
	for _, m := range p.sent {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	resetConfig(t)
	s, err := newServer(Options{
		Name:     "test",
		Version:  "1",
		TickRate: 60,
		Room:     "arena",
	}, testRoom(), donburi.NewWorld(), noSync, func() error { return nil })
	require.NoError(t, err)
	return s
}

func TestJoinVersionCheck(t *testing.T) {
	s := newTestServer(t)
	peer := &fakePeer{id: "a"}

	s.handleJoin(peer, messages.JoinRequest{Version: "0", PlayerName: "old"})
	require.Len(t, sentOf[messages.JoinRejected](peer), 1)
	assert.Equal(t, 0, s.PlayerCount())
	assert.Empty(t, s.Controller())

	s.handleJoin(peer, messages.JoinRequest{Version: "1", PlayerName: "new"})
	accepted := sentOf[messages.JoinAccepted](peer)
	require.Len(t, accepted, 1)
	assert.Equal(t, "test", accepted[0].ServerName)
	assert.Equal(t, "arena", accepted[0].Room)
	assert.Equal(t, 60, accepted[0].TickRate)
	assert.Equal(t, "a", s.Controller())
}

func TestOnlyControllerDrives(t *testing.T) {
	s := newTestServer(t)
	a, b := &fakePeer{id: "a"}, &fakePeer{id: "b"}
	s.handleJoin(a, messages.JoinRequest{Version: "1"})
	s.handleJoin(b, messages.JoinRequest{Version: "1"})
	assert.Equal(t, 2, s.PlayerCount())

	start, _ := s.Game().Sim().Actor(netconfig.PlayerID)

	// Spectator input is ignored.
	s.handleInput(b, input(1, netconfig.ActionMoveRight))
	for i := 0; i < 5; i++ {
		s.Tick(frameMs)
	}
	still, _ := s.Game().Sim().Actor(netconfig.PlayerID)
	assert.Equal(t, start.Hitbox.X, still.Hitbox.X)

	s.handleInput(a, input(1, netconfig.ActionMoveRight))
	for i := 0; i < 5; i++ {
		s.Tick(frameMs)
	}
	moved, _ := s.Game().Sim().Actor(netconfig.PlayerID)
	assert.Greater(t, moved.Hitbox.X, start.Hitbox.X)

	// The watcher takes over when the controller leaves.
	s.handleDisconnect(a, nil)
	assert.Equal(t, "b", s.Controller())
	assert.Equal(t, 1, s.PlayerCount())
}

func TestBroadcastAndRestart(t *testing.T) {
	s := newTestServer(t)
	a, b := &fakePeer{id: "a"}, &fakePeer{id: "b"}
	s.handleJoin(a, messages.JoinRequest{Version: "1"})
	s.handleJoin(b, messages.JoinRequest{Version: "1"})

	s.Game().Sim().DebugKill()
	s.Tick(frameMs)

	for _, p := range []*fakePeer{a, b} {
		assert.Len(t, sentOf[messages.HitEvent](p), 1)
		assert.Len(t, sentOf[messages.DeathEvent](p), 1)
		assert.Equal(t, []messages.MatchOverEvent{{Outcome: netconfig.MatchStatePlayerLost}}, sentOf[messages.MatchOverEvent](p))
		assert.Empty(t, sentOf[messages.StateChangeEvent](p))
	}

	// Only the controller may restart.
	s.handleRestart(b)
	s.Tick(frameMs)
	assert.Equal(t, netconfig.MatchStatePlayerLost, s.Game().Sim().Outcome())

	s.handleRestart(a)
	s.Tick(frameMs)
	assert.Equal(t, netconfig.MatchStatePlaying, s.Game().Sim().Outcome())
	p, _ := s.Game().Sim().Actor(netconfig.PlayerID)
	assert.Equal(t, 100, p.HP)
}
