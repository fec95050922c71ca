package factory

import (
	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, room *leveldata.Room) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	space := CreateSpace(room)
	components.Level.Set(level, &components.LevelData{
		Room:  room,
		Space: space,
	})
	components.Match.SetValue(level, components.MatchData{
		State: netconfig.MatchStatePlaying,
	})

	logger.Log.WithFields(logrus.Fields{
		"room":    room.Name,
		"tiles":   room.Grid.Width() * room.Grid.Height(),
		"solids":  len(space.Objects()),
		"objects": len(room.Objects),
		"width":   room.PixelWidth(),
		"height":  room.PixelHeight(),
	}).Info("level loaded")

	return level
}
