package core

import (
	"testing"

	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newGame(t *testing.T) (*Game, donburi.World) {
	t.Helper()
	resetConfig(t)
	world := donburi.NewWorld()
	g, err := NewGame(testRoom(), "arena", world, noSync, sim.WithEnemyAI(false))
	require.NoError(t, err)
	return g, world
}

func mirrored(t *testing.T, g *Game, world donburi.World, id netconfig.ActorID) (netcomponents.NetPositionData, netcomponents.NetActorData) {
	t.Helper()
	entity, ok := g.Mirror().Entity(id)
	require.True(t, ok)
	entry := world.Entry(entity)
	return *netcomponents.NetPosition.Get(entry), *netcomponents.NetActor.Get(entry)
}

func matchOf(world donburi.World) netcomponents.NetMatchData {
	entry, ok := netcomponents.NetMatch.First(world)
	if !ok {
		return netcomponents.NetMatchData{}
	}
	return *netcomponents.NetMatch.Get(entry)
}

func TestGameMirrorsSpawn(t *testing.T) {
	g, world := newGame(t)

	pos, actor := mirrored(t, g, world, netconfig.PlayerID)
	view, _ := g.Sim().Actor(netconfig.PlayerID)
	assert.Equal(t, netcomponents.NetPositionData{X: view.Hitbox.X, Y: view.Hitbox.Y}, pos)
	assert.Equal(t, netconfig.KindPlayer, actor.Kind)
	assert.Equal(t, 100, actor.HP)
	assert.Equal(t, netconfig.Idle, actor.StateID)

	_, enemy := mirrored(t, g, world, netconfig.EnemyID)
	assert.Equal(t, 60, enemy.HP)

	match := matchOf(world)
	assert.Equal(t, "arena", match.Room)
	assert.Equal(t, netconfig.MatchStatePlaying, match.State)
}

func TestGameStepMovesMirror(t *testing.T) {
	g, world := newGame(t)
	start, _ := mirrored(t, g, world, netconfig.PlayerID)

	for i := 0; i < 10; i++ {
		g.Step(sim.InputState{Right: true, Sequence: uint32(i + 1)}, frameMs)
	}

	pos, actor := mirrored(t, g, world, netconfig.PlayerID)
	assert.Greater(t, pos.X, start.X)
	assert.Equal(t, start.Y, pos.Y)
	assert.Equal(t, netconfig.Running, actor.StateID)
	assert.Equal(t, 1, actor.Facing)
	assert.Equal(t, uint32(10), actor.LastSequence)
	assert.Equal(t, uint64(10), matchOf(world).Tick)
}

func TestGameCompletesOneShots(t *testing.T) {
	g, world := newGame(t)

	g.Step(sim.InputState{Attack: true}, frameMs)
	_, actor := mirrored(t, g, world, netconfig.PlayerID)
	require.Equal(t, netconfig.Attack, actor.StateID)

	// The attack strip runs out and the server's own clock ends the swing.
	for i := 0; i < 60; i++ {
		g.Step(sim.InputState{}, frameMs)
	}
	_, actor = mirrored(t, g, world, netconfig.PlayerID)
	assert.Equal(t, netconfig.Idle, actor.StateID)
}

func TestGameRestart(t *testing.T) {
	g, world := newGame(t)

	g.Sim().DebugKill()
	events := g.Step(sim.InputState{}, frameMs)
	assert.Contains(t, events, messages.Event(messages.MatchOverEvent{Outcome: netconfig.MatchStatePlayerLost}))
	assert.Equal(t, netconfig.MatchStatePlayerLost, matchOf(world).State)

	_, actor := mirrored(t, g, world, netconfig.PlayerID)
	assert.Equal(t, 0, actor.HP)

	entity, _ := g.Mirror().Entity(netconfig.PlayerID)
	g.Restart()
	again, _ := g.Mirror().Entity(netconfig.PlayerID)
	assert.Equal(t, entity, again)

	_, actor = mirrored(t, g, world, netconfig.PlayerID)
	assert.Equal(t, 100, actor.HP)
	assert.Equal(t, netconfig.MatchStatePlaying, matchOf(world).State)
	assert.Equal(t, uint64(0), matchOf(world).Tick)
}

func TestViewFromNet(t *testing.T) {
	g, world := newGame(t)
	for i := 0; i < 5; i++ {
		g.Step(sim.InputState{Left: true}, frameMs)
	}

	pos, actor := mirrored(t, g, world, netconfig.PlayerID)
	want, _ := g.Sim().Actor(netconfig.PlayerID)
	got := sim.ViewFromNet(pos, actor)

	assert.Equal(t, want.Hitbox, got.Hitbox)
	assert.Equal(t, want.AnchorX, got.AnchorX)
	assert.Equal(t, want.AnchorY, got.AnchorY)
	assert.True(t, got.FlipX)
	assert.Equal(t, want.Label, got.Label)
}

func TestLoadRoom(t *testing.T) {
	room, name, err := LoadRoom("", "")
	require.NoError(t, err)
	assert.Equal(t, "castle", name)
	assert.Equal(t, 25, room.Grid.Width())

	_, name, err = LoadRoom("", "pit")
	require.NoError(t, err)
	assert.Equal(t, "pit", name)

	_, _, err = LoadRoom("", "attic")
	assert.Error(t, err)
}

func TestGameReattackRightAfterCompletion(t *testing.T) {
	g, world := newGame(t)

	// Attack pressed every frame, so a new swing starts on the very tick
	// the previous swing's completion is applied.
	swings := 0
	var entries []uint32
	for i := 0; i < 90; i++ {
		for _, ev := range g.Step(sim.InputState{Attack: true}, frameMs) {
			if sc, ok := ev.(messages.StateChangeEvent); ok && sc.ActorID == netconfig.PlayerID && sc.To == netconfig.Attack {
				swings++
				_, actor := mirrored(t, g, world, netconfig.PlayerID)
				entries = append(entries, actor.Entry)
			}
		}
	}
	require.GreaterOrEqual(t, swings, 3, "each finished swing makes room for the next")
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i], entries[i-1])
	}

	for i := 0; i < 60; i++ {
		g.Step(sim.InputState{}, frameMs)
	}
	p, _ := g.Sim().Actor(netconfig.PlayerID)
	assert.Equal(t, netconfig.Idle, p.Label, "last swing finished")

	g.Step(sim.InputState{Attack: true}, frameMs)
	p, _ = g.Sim().Actor(netconfig.PlayerID)
	assert.Equal(t, netconfig.Attack, p.Label, "free to attack again")
}
