// Package sim runs one room's worth of game: a player, a melee enemy and the
// tile world they move through. It is headless and single threaded; the
// owner calls Tick once per frame from one goroutine.
package sim

import (
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/systems"
	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputState is the player's controls for one tick. Attack is an edge: set
// it only on the frame the button went down.
type InputState struct {
	Left, Right bool
	Jump        bool
	Attack      bool
	Sequence    uint32
}

// ActorView is what a renderer needs to draw one actor.
type ActorView struct {
	ID       netconfig.ActorID
	Kind     netconfig.ActorKind
	Label    netconfig.StateID
	Entry    uint32 // bumps when a one-shot label starts over
	Hitbox   gamemath.Rect
	VX, VY   float64
	AnchorX  int // foot anchor, world pixels
	AnchorY  int
	Facing   int
	FlipX    bool
	Grounded bool
	HP       int
	MaxHP    int
	Sequence uint32
}

type completion struct {
	id    netconfig.ActorID
	label netconfig.StateID
	entry uint32
}

type Option func(*Simulation)

// WithEnemyAI overrides whether the enemy policy runs.
func WithEnemyAI(enabled bool) Option {
	return func(s *Simulation) { s.aiEnabled = enabled }
}

type Simulation struct {
	ecs       *ecs.ECS
	room      *leveldata.Room
	level     *donburi.Entry
	player    *donburi.Entry
	enemy     *donburi.Entry
	aiEnabled bool

	completions []completion
	log         *logrus.Entry
}

// New builds a simulation for room with both actors at their spawns.
func New(room *leveldata.Room, opts ...Option) *Simulation {
	s := &Simulation{
		room:      room,
		aiEnabled: cfg.EnemyAI.Enabled,
		log:       logger.For("sim"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.build()
	return s
}

func (s *Simulation) build() {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	s.level = factory.CreateLevel(s.ecs, s.room)
	space := components.Level.Get(s.level).Space
	s.player = factory.CreatePlayer(s.ecs, s.room.PlayerSpawn)
	s.enemy = factory.CreateEnemy(s.ecs, s.room.EnemySpawn, space)
	s.completions = nil

	s.ecs.AddSystem(systems.UpdateTimers)
	s.ecs.AddSystem(systems.UpdateEnemyIntent)
	s.ecs.AddSystem(systems.UpdateActions)
	s.ecs.AddSystem(systems.UpdatePhysics)
	s.ecs.AddSystem(systems.UpdateCollision)
	s.ecs.AddSystem(systems.UpdateFacing)
	if s.aiEnabled {
		s.ecs.AddSystem(systems.UpdateEnemyAI)
	}
	s.ecs.AddSystem(systems.UpdateCombat)
	s.ecs.AddSystem(systems.UpdateAnimation)
}

// Reset rebuilds the world from the room, restoring full health and spawns.
func (s *Simulation) Reset() {
	s.build()
	s.log.WithField("room", s.room.Name).Info("simulation reset")
}

// SetInput stores the player's controls for the next tick.
func (s *Simulation) SetInput(in InputState) {
	intent := components.Intent.Get(s.player)
	intent.Dir = 0
	if in.Left {
		intent.Dir--
	}
	if in.Right {
		intent.Dir++
	}
	intent.JumpHeld = in.Jump
	if in.Attack {
		intent.Attack = true
	}
	intent.Sequence = in.Sequence
}

// NotifyAnimationComplete queues a one-shot completion signal from the
// playback side for the label the actor currently shows. It takes effect at
// the start of the next tick; a signal that no longer matches the actor's
// state, or whose state was entered again since, is dropped.
func (s *Simulation) NotifyAnimationComplete(id netconfig.ActorID, label netconfig.StateID) {
	var entry uint32
	if e := s.entryOf(id); e != nil {
		entry = components.Animation.Get(e).Entry
	}
	s.completions = append(s.completions, completion{id: id, label: label, entry: entry})
}

func (s *Simulation) entryOf(id netconfig.ActorID) *donburi.Entry {
	switch id {
	case netconfig.PlayerID:
		return s.player
	case netconfig.EnemyID:
		return s.enemy
	}
	return nil
}

// Tick advances the world by elapsedMs, capped at the configured max step,
// and returns the events raised along the way.
func (s *Simulation) Tick(elapsedMs float64) []messages.Event {
	dt := gamemath.ClampDt(elapsedMs, cfg.Physics.MaxDt)

	for _, c := range s.completions {
		if !systems.CompleteAnimation(s.ecs.World, c.id, c.label, c.entry) {
			s.log.WithFields(logrus.Fields{
				"actor": c.id,
				"label": c.label.String(),
			}).Debug("stale animation completion ignored")
		}
	}
	s.completions = s.completions[:0]

	components.Match.Get(s.level).Dt = dt
	s.ecs.Update()

	return components.EventQueue.Get(s.level).Drain()
}

// DebugDamage hurts the player as if hit, ignoring i-frames.
func (s *Simulation) DebugDamage(amount int) {
	hit, death := systems.ApplyDamage(systems.CombatantOf(s.player), amount, netconfig.NoActor)
	systems.RecordHit(s.ecs.World, hit, death)
}

// DebugKill drops the player to zero health.
func (s *Simulation) DebugKill() {
	hp := components.Health.Get(s.player).Current
	if hp <= 0 {
		return
	}
	s.DebugDamage(hp)
}

// Outcome is the state of the round.
func (s *Simulation) Outcome() netconfig.MatchStateID {
	return components.Match.Get(s.level).State
}

// Ticks is the number of ticks simulated since the last reset.
func (s *Simulation) Ticks() uint64 {
	return components.Match.Get(s.level).Ticks
}

func (s *Simulation) Room() *leveldata.Room { return s.room }

// World exposes the ECS world for read-only consumers such as net sync.
func (s *Simulation) World() donburi.World { return s.ecs.World }

// Snapshot returns a view of each actor, player first.
func (s *Simulation) Snapshot() []ActorView {
	return []ActorView{viewOf(s.player), viewOf(s.enemy)}
}

// Actor returns the view of one actor.
func (s *Simulation) Actor(id netconfig.ActorID) (ActorView, bool) {
	if e := s.entryOf(id); e != nil {
		return viewOf(e), true
	}
	return ActorView{}, false
}

func viewOf(e *donburi.Entry) ActorView {
	actor := components.Actor.Get(e)
	physics := components.Physics.Get(e)
	health := components.Health.Get(e)
	rect := physics.Rect()
	ax, ay := rect.FootAnchor(actor.RenderOffset)
	anim := components.Animation.Get(e)
	return ActorView{
		ID:       actor.ID,
		Kind:     actor.Kind,
		Label:    anim.Label,
		Entry:    anim.Entry,
		Hitbox:   rect,
		VX:       physics.VX,
		VY:       physics.VY,
		AnchorX:  ax,
		AnchorY:  ay,
		Facing:   physics.Facing,
		FlipX:    physics.Facing < 0,
		Grounded: physics.Grounded,
		HP:       health.Current,
		MaxHP:    health.Max,
		Sequence: components.Intent.Get(e).Sequence,
	}
}

// Space is the collision mirror of the room used by the enemy probes.
func (s *Simulation) Space() *resolv.Space {
	return components.Level.Get(s.level).Space
}

// Elapsed is the simulated time since the last reset, in seconds.
func (s *Simulation) Elapsed() float64 {
	return components.Match.Get(s.level).Elapsed
}

// AIEnabled reports whether the enemy policy runs in this simulation.
func (s *Simulation) AIEnabled() bool { return s.aiEnabled }
