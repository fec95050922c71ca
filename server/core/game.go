package core

import (
	"github.com/automoto/tilebrawl/assets/animations"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/sim"
	"github.com/yohamta/donburi"
)

// Game is the authoritative round: the simulation, the animation clocks
// that report one-shot completions to it, and the replicated mirror.
type Game struct {
	sim    *sim.Simulation
	room   string
	anims  map[netconfig.ActorID]*animations.Player
	mirror *Mirror
}

func NewGame(room *leveldata.Room, roomName string, world donburi.World, sync SyncFunc, opts ...sim.Option) (*Game, error) {
	g := &Game{
		sim:  sim.New(room, opts...),
		room: roomName,
	}
	g.resetAnims()

	mirror, err := NewMirror(world, g.sim.Snapshot(), sync)
	if err != nil {
		return nil, err
	}
	g.mirror = mirror
	g.syncMirror()
	return g, nil
}

func (g *Game) resetAnims() {
	g.anims = make(map[netconfig.ActorID]*animations.Player, 2)
	for _, v := range g.sim.Snapshot() {
		ac := &cfg.Player
		if v.Kind == netconfig.KindEnemy {
			ac = &cfg.Enemy
		}
		g.anims[v.ID] = animations.NewPlayer(ac.SpriteSheetKey)
	}
}

// Step advances the round by one tick of elapsedMs with the given input.
func (g *Game) Step(in sim.InputState, elapsedMs float64) []messages.Event {
	g.sim.SetInput(in)
	events := g.sim.Tick(elapsedMs)

	dt := gamemath.ClampDt(elapsedMs, cfg.Physics.MaxDt)
	for _, v := range g.sim.Snapshot() {
		if anim, ok := g.anims[v.ID]; ok && anim.Update(v.Label, v.Entry, dt) {
			g.sim.NotifyAnimationComplete(v.ID, v.Label)
		}
	}

	g.syncMirror()
	return events
}

// Restart puts both actors back at their spawns.
func (g *Game) Restart() {
	g.sim.Reset()
	g.resetAnims()
	g.syncMirror()
}

func (g *Game) syncMirror() {
	g.mirror.Sync(g.sim.Snapshot(), netcomponents.NetMatchData{
		State: g.sim.Outcome(),
		Tick:  g.sim.Ticks(),
		Room:  g.room,
	})
}

func (g *Game) Sim() *sim.Simulation { return g.sim }
func (g *Game) Mirror() *Mirror      { return g.mirror }
func (g *Game) Room() string         { return g.room }
