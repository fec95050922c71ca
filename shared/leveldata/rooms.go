package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// DefaultTileSize is the edge length of a tile in world pixels.
const DefaultTileSize = 32

var ErrNoLayout = errors.New("leveldata: room has neither grid nor mask")

// roomFile is the on-disk YAML layout of a room. A room is either an explicit
// grid of tile ids or a mask made of rectangles that is autotiled.
type roomFile struct {
	Name     string     `yaml:"name"`
	TileSize int        `yaml:"tile_size"`
	Grid     [][]int    `yaml:"grid"`
	Mask     *maskSpec  `yaml:"mask"`
	Floor    *int       `yaml:"floor"`
	Walls    *WallTiles `yaml:"walls"`

	PlayerSpawn *SpawnPoint `yaml:"player_spawn"`
	EnemySpawn  *SpawnPoint `yaml:"enemy_spawn"`

	Objects []MapObject `yaml:"objects"`
}

type maskSpec struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Rects  [][4]int `yaml:"rects"`
}

// ParseRoom decodes a YAML room definition. Missing fields fall back to the
// sample room's palette, tile size and spawns.
func ParseRoom(data []byte) (*Room, error) {
	var rf roomFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("decode room: %w", err)
	}

	wall := DefaultWallTiles
	if rf.Walls != nil {
		wall = *rf.Walls
	}
	floor := DefaultFloor
	if rf.Floor != nil {
		floor = *rf.Floor
	}
	tileSize := rf.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	var rows [][]int
	switch {
	case len(rf.Grid) > 0:
		rows = rf.Grid
	case rf.Mask != nil:
		mask := NewMask(rf.Mask.Width, rf.Mask.Height, false)
		for _, r := range rf.Mask.Rects {
			mask.FillRect(r[0], r[1], r[2], r[3], true)
		}
		rows = MakeMapFromMask(mask, floor, wall, Empty)
	default:
		return nil, fmt.Errorf("room %q: %w", rf.Name, ErrNoLayout)
	}

	grid, err := NewTileGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", rf.Name, err)
	}

	room := &Room{
		Name:        rf.Name,
		Grid:        grid,
		Solid:       MakeSolidSet(wall),
		TileSize:    tileSize,
		Objects:     rf.Objects,
		PlayerSpawn: SpawnPoint{X: 400, Y: 326},
		EnemySpawn:  SpawnPoint{X: 600, Y: 326},
	}
	if rf.PlayerSpawn != nil {
		room.PlayerSpawn = *rf.PlayerSpawn
	}
	if rf.EnemySpawn != nil {
		room.EnemySpawn = *rf.EnemySpawn
	}

	if _, err := ExpandPrefabs(room.Objects, DecorPrefabs); err != nil {
		return nil, fmt.Errorf("room %q: %w", rf.Name, err)
	}
	return room, nil
}

// LoadRoomFile reads and parses a YAML room from fsys.
func LoadRoomFile(fsys fs.FS, path string) (*Room, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read room %s: %w", path, err)
	}
	room, err := ParseRoom(data)
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", path, err)
	}
	return room, nil
}
