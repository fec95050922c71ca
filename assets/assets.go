// Package assets bundles the room files shipped with the game.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/sirupsen/logrus"
)

// RoomDir is the directory of bundled rooms inside RoomFS.
const RoomDir = "rooms"

//go:embed rooms
var roomFS embed.FS

// RoomFS exposes the bundled rooms for callers that want to load files
// themselves.
func RoomFS() fs.FS { return roomFS }

// RoomSet is every bundled room keyed by file stem, with the names sorted.
type RoomSet struct {
	Rooms map[string]*leveldata.Room
	Names []string
}

// Get returns the named room, or the first one when name is empty.
func (s *RoomSet) Get(name string) (*leveldata.Room, error) {
	if name == "" && len(s.Names) > 0 {
		name = s.Names[0]
	}
	room, ok := s.Rooms[name]
	if !ok {
		return nil, fmt.Errorf("room %q not bundled (have %v)", name, s.Names)
	}
	return room, nil
}

// Next returns the name following name, wrapping around.
func (s *RoomSet) Next(name string) string {
	for i, n := range s.Names {
		if n == name {
			return s.Names[(i+1)%len(s.Names)]
		}
	}
	if len(s.Names) == 0 {
		return ""
	}
	return s.Names[0]
}

// LoadRooms parses every bundled room.
func LoadRooms() (*RoomSet, error) {
	return loadRoomsFrom(roomFS, RoomDir)
}

// LoadRoomsDir parses every room in a directory on disk, for example a
// working copy of the rooms being edited.
func LoadRoomsDir(dir string) (*RoomSet, error) {
	clean := filepath.Clean(dir)
	return loadRoomsFrom(os.DirFS(filepath.Dir(clean)), filepath.Base(clean))
}

func loadRoomsFrom(fsys fs.FS, dir string) (*RoomSet, error) {
	rooms, names, err := leveldata.LoadAllRooms(fsys, dir)
	if err != nil {
		return nil, err
	}
	logger.For("assets").WithFields(logrus.Fields{
		"dir":   dir,
		"rooms": names,
	}).Debug("rooms loaded")
	return &RoomSet{Rooms: rooms, Names: names}, nil
}
