package sim

import (
	"math"
	"os"
	"testing"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const frameMs = 16.0

func testRoom(playerX, enemyX float64) *leveldata.Room {
	w := leveldata.DefaultWallTiles
	room := &leveldata.Room{
		Name:     "arena",
		Grid:     leveldata.MustTileGrid(leveldata.MakeRoomMap(25, 10, leveldata.DefaultFloor, w)),
		Solid:    leveldata.MakeSolidSet(w),
		TileSize: 32,
	}
	floor := float64(9*32) - cfg.Player.CollisionHeight
	room.PlayerSpawn = leveldata.SpawnPoint{X: playerX, Y: floor}
	room.EnemySpawn = leveldata.SpawnPoint{X: enemyX, Y: floor}
	return room
}

func newSim(t *testing.T, playerX, enemyX float64, opts ...Option) *Simulation {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	return New(testRoom(playerX, enemyX), opts...)
}

func count[T messages.Event](events []messages.Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func TestIdleAtRest(t *testing.T) {
	s := newSim(t, 100, 600, WithEnemyAI(false))
	before := s.Snapshot()

	for i := 0; i < 30; i++ {
		events := s.Tick(frameMs)
		assert.Empty(t, events)
	}

	after := s.Snapshot()
	assert.Equal(t, before, after)
	assert.True(t, after[0].Grounded)
	assert.Equal(t, netconfig.Idle, after[0].Label)
	assert.Equal(t, uint64(30), s.Ticks())
}

func TestRunRightThenStop(t *testing.T) {
	s := newSim(t, 100, 600, WithEnemyAI(false))

	s.SetInput(InputState{Right: true})
	events := s.Tick(frameMs)
	require.Len(t, events, 1)
	assert.Equal(t, messages.StateChangeEvent{ActorID: netconfig.PlayerID, From: netconfig.Idle, To: netconfig.Running}, events[0])

	p, _ := s.Actor(netconfig.PlayerID)
	assert.InDelta(t, 100+180*0.016, p.Hitbox.X, 1e-9)
	assert.False(t, p.FlipX)

	s.SetInput(InputState{Left: true})
	s.Tick(frameMs)
	p, _ = s.Actor(netconfig.PlayerID)
	assert.True(t, p.FlipX)

	s.SetInput(InputState{})
	events = s.Tick(frameMs)
	require.Len(t, events, 1)
	p, _ = s.Actor(netconfig.PlayerID)
	assert.Equal(t, netconfig.Idle, p.Label)
	assert.Equal(t, -1, p.Facing, "facing is kept when input stops")
}

func TestDtIsClamped(t *testing.T) {
	for _, ms := range []float64{1000, math.Inf(1)} {
		s := newSim(t, 100, 600, WithEnemyAI(false))
		s.SetInput(InputState{Right: true})
		s.Tick(ms)
		p, _ := s.Actor(netconfig.PlayerID)
		assert.InDelta(t, 100+180*cfg.Physics.MaxDt, p.Hitbox.X, 1e-9)
	}

	s := newSim(t, 100, 600, WithEnemyAI(false))
	s.SetInput(InputState{Right: true})
	for _, ms := range []float64{math.NaN(), -20, 0} {
		s.Tick(ms)
	}
	p, _ := s.Actor(netconfig.PlayerID)
	assert.Equal(t, 100.0, p.Hitbox.X)
}

func TestJumpAndLand(t *testing.T) {
	s := newSim(t, 100, 600, WithEnemyAI(false))
	start, _ := s.Actor(netconfig.PlayerID)

	s.SetInput(InputState{Jump: true})
	s.Tick(frameMs)
	p, _ := s.Actor(netconfig.PlayerID)
	assert.Equal(t, netconfig.Jump, p.Label)
	assert.False(t, p.Grounded)

	s.SetInput(InputState{})
	for i := 0; i < 120 && !p.Grounded; i++ {
		s.Tick(frameMs)
		p, _ = s.Actor(netconfig.PlayerID)
	}
	assert.True(t, p.Grounded)
	assert.Equal(t, start.Hitbox, p.Hitbox)
	assert.Equal(t, netconfig.Idle, p.Label)
}

func TestRenderAnchor(t *testing.T) {
	s := newSim(t, 100.4, 600, WithEnemyAI(false))
	p, _ := s.Actor(netconfig.PlayerID)
	// round(x + w/2 + 0), round(y + h + 14)
	assert.Equal(t, 109, p.AnchorX)
	assert.Equal(t, 9*32+14, p.AnchorY)
}

// swing presses attack, runs ticks long enough to cover the active window,
// then reports the attack animation as finished.
func swing(s *Simulation) []messages.Event {
	var events []messages.Event
	s.SetInput(InputState{Attack: true})
	for i := 0; i < 20; i++ {
		events = append(events, s.Tick(frameMs)...)
		s.SetInput(InputState{})
	}
	s.NotifyAnimationComplete(netconfig.PlayerID, netconfig.Attack)
	s.NotifyAnimationComplete(netconfig.EnemyID, netconfig.Hit)
	events = append(events, s.Tick(frameMs)...)
	return events
}

func TestPlayerKillsEnemy(t *testing.T) {
	s := newSim(t, 100, 140, WithEnemyAI(false))

	var hp []int
	deaths := 0
	for i := 0; i < 8; i++ {
		events := swing(s)
		hits := count[messages.HitEvent](events)
		if i < 6 {
			assert.Equal(t, 1, hits, "swing %d lands exactly once", i)
		} else {
			assert.Zero(t, hits, "swing %d at a dead enemy", i)
		}
		deaths += count[messages.DeathEvent](events)
		e, _ := s.Actor(netconfig.EnemyID)
		hp = append(hp, e.HP)
	}

	assert.Equal(t, []int{50, 40, 30, 20, 10, 0, 0, 0}, hp)
	assert.Equal(t, 1, deaths)
	assert.Equal(t, netconfig.MatchStatePlayerWon, s.Outcome())

	e, _ := s.Actor(netconfig.EnemyID)
	assert.Equal(t, netconfig.Dead, e.Label)
}

func TestEnemyAttacksOnCooldown(t *testing.T) {
	s := newSim(t, 100, 130)

	// One-shot animations finish 20 frames after they start, well past the
	// attack's active window.
	type pending struct {
		id    netconfig.ActorID
		label netconfig.StateID
		at    int
	}
	var queue []pending

	hits := 0
	for tick := 0; tick < 75; tick++ {
		rest := queue[:0]
		for _, p := range queue {
			if p.at == tick {
				s.NotifyAnimationComplete(p.id, p.label)
				continue
			}
			rest = append(rest, p)
		}
		queue = rest

		for _, ev := range s.Tick(frameMs) {
			switch ev := ev.(type) {
			case messages.HitEvent:
				hits++
				assert.Equal(t, netconfig.EnemyID, ev.AttackerID)
				assert.Equal(t, 12, ev.Damage)
			case messages.StateChangeEvent:
				if ev.To.OneShot() {
					queue = append(queue, pending{id: ev.ActorID, label: ev.To, at: tick + 20})
				}
			}
		}
	}

	// Cooldown is 0.8s: one swing right away and one more after it expires.
	assert.Equal(t, 2, hits)
	p, _ := s.Actor(netconfig.PlayerID)
	assert.Equal(t, 76, p.HP)
}

func TestStaleCompletionIgnored(t *testing.T) {
	s := newSim(t, 100, 600, WithEnemyAI(false))
	s.SetInput(InputState{Attack: true})
	s.Tick(frameMs)

	s.NotifyAnimationComplete(netconfig.PlayerID, netconfig.Hit)
	s.Tick(frameMs)
	p, _ := s.Actor(netconfig.PlayerID)
	assert.Equal(t, netconfig.Attack, p.Label)

	s.NotifyAnimationComplete(netconfig.PlayerID, netconfig.Attack)
	s.Tick(frameMs)
	p, _ = s.Actor(netconfig.PlayerID)
	assert.Equal(t, netconfig.Idle, p.Label)
}

func TestEnemySwingStartsOnArrivalTick(t *testing.T) {
	s := newSim(t, 100, 200)

	for tick := 0; tick < 60; tick++ {
		events := s.Tick(frameMs)
		e, _ := s.Actor(netconfig.EnemyID)
		p, _ := s.Actor(netconfig.PlayerID)
		inRange := math.Abs(e.Hitbox.Center().X-p.Hitbox.Center().X) <= cfg.Combat.RangeX
		if !inRange {
			require.NotEqual(t, netconfig.Attack, e.Label, "tick %d", tick)
			continue
		}
		assert.Equal(t, netconfig.Attack, e.Label, "swing starts on tick %d", tick)
		assert.Contains(t, events, messages.StateChangeEvent{
			ActorID: netconfig.EnemyID, From: netconfig.Running, To: netconfig.Attack,
		})
		return
	}
	t.Fatal("enemy never reached the player")
}

func TestHitDuringCompletionKeepsNewHit(t *testing.T) {
	s := newSim(t, 100, 600, WithEnemyAI(false))
	s.DebugDamage(10)
	s.Tick(frameMs)

	// The first hit animation finishes, then a second hit lands before the
	// completion is applied.
	s.NotifyAnimationComplete(netconfig.PlayerID, netconfig.Hit)
	s.DebugDamage(10)
	events := s.Tick(frameMs)
	assert.Contains(t, events, messages.StateChangeEvent{
		ActorID: netconfig.PlayerID, From: netconfig.Hit, To: netconfig.Hit,
	})

	p, _ := s.Actor(netconfig.PlayerID)
	assert.Equal(t, netconfig.Hit, p.Label)
	assert.Equal(t, 80, p.HP)

	s.NotifyAnimationComplete(netconfig.PlayerID, netconfig.Hit)
	s.Tick(frameMs)
	p, _ = s.Actor(netconfig.PlayerID)
	assert.Equal(t, netconfig.Idle, p.Label)
}

func TestDebugKillOnce(t *testing.T) {
	s := newSim(t, 100, 600, WithEnemyAI(false))

	s.DebugKill()
	s.DebugKill()
	events := s.Tick(frameMs)
	assert.Equal(t, 1, count[messages.DeathEvent](events))
	assert.Equal(t, netconfig.MatchStatePlayerLost, s.Outcome())

	p, _ := s.Actor(netconfig.PlayerID)
	assert.Equal(t, 0, p.HP)
	assert.Equal(t, netconfig.Dead, p.Label)

	s.SetInput(InputState{Right: true, Jump: true, Attack: true})
	s.Tick(frameMs)
	after, _ := s.Actor(netconfig.PlayerID)
	assert.Equal(t, p.Hitbox, after.Hitbox)
	assert.Equal(t, netconfig.Dead, after.Label)
}

func TestDebugDamage(t *testing.T) {
	s := newSim(t, 100, 600, WithEnemyAI(false))
	s.DebugDamage(10)
	events := s.Tick(frameMs)
	assert.Equal(t, 1, count[messages.HitEvent](events))

	p, _ := s.Actor(netconfig.PlayerID)
	assert.Equal(t, 90, p.HP)
	assert.Equal(t, netconfig.Hit, p.Label)
}

func TestNonFiniteReset(t *testing.T) {
	tests := []struct {
		name   string
		poison func(p *components.PhysicsData)
	}{
		{"position", func(p *components.PhysicsData) { p.Y = math.NaN() }},
		{"upward velocity", func(p *components.PhysicsData) {
			p.Y -= 64
			p.Grounded = false
			p.VY = math.Inf(-1)
		}},
		{"airborne velocity", func(p *components.PhysicsData) {
			p.Y -= 64
			p.Grounded = false
			p.VY = math.NaN()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSim(t, 100, 600, WithEnemyAI(false))
			spawn := s.Room().PlayerSpawn
			tt.poison(components.Physics.Get(s.player))

			events := s.Tick(frameMs)
			require.Equal(t, 1, count[messages.ResetEvent](events))
			assert.Contains(t, events, messages.ResetEvent{ActorID: netconfig.PlayerID})

			p, _ := s.Actor(netconfig.PlayerID)
			assert.Equal(t, spawn.X, p.Hitbox.X)
			assert.Equal(t, spawn.Y, p.Hitbox.Y)
			assert.Zero(t, p.VX)
			assert.Zero(t, p.VY)
			assert.True(t, p.Grounded)

			assert.Empty(t, s.Tick(frameMs), "settled after the reset")
		})
	}
}

func TestReset(t *testing.T) {
	s := newSim(t, 100, 600, WithEnemyAI(false))
	s.DebugKill()
	s.Tick(frameMs)
	require.Equal(t, netconfig.MatchStatePlayerLost, s.Outcome())

	s.Reset()
	p, _ := s.Actor(netconfig.PlayerID)
	assert.Equal(t, 100, p.HP)
	assert.Equal(t, netconfig.MatchStatePlaying, s.Outcome())
	assert.Equal(t, uint64(0), s.Ticks())
}

func TestSampleRoomSettles(t *testing.T) {
	cfg.Reset()
	s := New(leveldata.SampleRoom(32))
	for i := 0; i < 120; i++ {
		s.Tick(frameMs)
	}
	for _, a := range s.Snapshot() {
		assert.True(t, a.Grounded, "actor %d", a.ID)
		assert.Equal(t, 352.0, a.Hitbox.Bottom())
	}
}
