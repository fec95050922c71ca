package core

import (
	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/sim"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// SyncFunc marks an entity for replication.
type SyncFunc func(world donburi.World, entity *donburi.Entity, components ...donburi.IComponentType) error

// SrvSync replicates through necs. Actor entities interpolate position
// and velocity on clients; anything else is sent as is.
func SrvSync(world donburi.World, entity *donburi.Entity, components ...donburi.IComponentType) error {
	for _, c := range components {
		if c == donburi.IComponentType(netcomponents.NetMatch) {
			return srvsync.NetworkSync(world, entity, netcomponents.NetMatch)
		}
	}
	return srvsync.NetworkSync(world, entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetActor,
	)
}

// Mirror copies simulation state into the replication world. The
// simulation's own world is rebuilt on reset; the mirror entities persist
// so clients keep stable network ids.
type Mirror struct {
	world  donburi.World
	actors map[netconfig.ActorID]donburi.Entity
	match  donburi.Entity
}

// NewMirror creates one replicated entity per actor plus a match entity.
func NewMirror(world donburi.World, views []sim.ActorView, sync SyncFunc) (*Mirror, error) {
	m := &Mirror{
		world:  world,
		actors: make(map[netconfig.ActorID]donburi.Entity, len(views)),
	}
	for _, v := range views {
		entity := world.Create(netcomponents.NetPosition, netcomponents.NetVelocity, netcomponents.NetActor)
		if err := sync(world, &entity, netcomponents.NetPosition, netcomponents.NetVelocity, netcomponents.NetActor); err != nil {
			return nil, err
		}
		m.actors[v.ID] = entity
	}

	m.match = world.Create(netcomponents.NetMatch)
	if err := sync(world, &m.match, netcomponents.NetMatch); err != nil {
		return nil, err
	}
	return m, nil
}

// Entity returns the replicated entity of an actor.
func (m *Mirror) Entity(id netconfig.ActorID) (donburi.Entity, bool) {
	e, ok := m.actors[id]
	return e, ok
}

// Sync writes the current views and match state.
func (m *Mirror) Sync(views []sim.ActorView, match netcomponents.NetMatchData) {
	for _, v := range views {
		entity, ok := m.actors[v.ID]
		if !ok || !m.world.Valid(entity) {
			continue
		}
		entry := m.world.Entry(entity)
		netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: v.Hitbox.X, Y: v.Hitbox.Y})
		netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{SpeedX: v.VX, SpeedY: v.VY})
		netcomponents.NetActor.SetValue(entry, netcomponents.NetActorData{
			ActorID:      v.ID,
			Kind:         v.Kind,
			StateID:      v.Label,
			Entry:        v.Entry,
			Facing:       v.Facing,
			HP:           v.HP,
			MaxHP:        v.MaxHP,
			LastSequence: v.Sequence,
		})
	}
	if m.world.Valid(m.match) {
		netcomponents.NetMatch.SetValue(m.world.Entry(m.match), match)
	}
}
