package protocol

import (
	"sync"

	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition uint = 10
	SyncIDNetVelocity uint = 11
	SyncIDNetActor    uint = 12
	SyncIDNetMatch    uint = 13
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetVelocity uint8 = 11
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
// Repeated calls return the result of the first.
func RegisterComponents() error {
	registerOnce.Do(func() {
		registerErr = registerComponents()
	})
	return registerErr
}

func registerComponents() error {
	// Register with interpolation for smooth client-side rendering
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return err
	}

	// Actor: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetActor,
		netcomponents.NetActorData{},
		netcomponents.NetActor,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetMatch,
		netcomponents.NetMatchData{},
		netcomponents.NetMatch,
	); err != nil {
		return err
	}

	return nil
}
