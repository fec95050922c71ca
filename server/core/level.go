package core

import (
	"fmt"

	"github.com/automoto/tilebrawl/assets"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/sirupsen/logrus"
)

// LoadRoom returns the named room and the name it resolved to. An empty
// dir selects the bundled rooms; an empty name selects the first room.
func LoadRoom(dir, name string) (*leveldata.Room, string, error) {
	var (
		set *assets.RoomSet
		err error
	)
	if dir == "" {
		set, err = assets.LoadRooms()
	} else {
		set, err = assets.LoadRoomsDir(dir)
	}
	if err != nil {
		return nil, "", fmt.Errorf("load rooms: %w", err)
	}

	if name == "" && len(set.Names) > 0 {
		name = set.Names[0]
	}
	room, err := set.Get(name)
	if err != nil {
		return nil, "", err
	}

	logger.For("server").WithFields(logrus.Fields{
		"room":   name,
		"width":  room.Grid.Width(),
		"height": room.Grid.Height(),
		"solid":  room.Solid.Len(),
	}).Info("loaded room")
	return room, name, nil
}
