package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX layer and object group names understood by LoadTMXRoom.
const (
	TMXWallLayer   = "walls"
	TMXFloorLayer  = "floor"
	TMXSpawnGroup  = "spawns"
	TMXObjectGroup = "objects"
)

// LoadTMXRoom builds a Room from a Tiled map. Every tile on the walls layer
// is solid; floor tiles fill the remaining cells as background. Spawns are
// objects named "player" and "enemy"; decor objects carry "kind", "prefab"
// and "z" properties. It takes an fs.FS so callers can pass embed.FS
// (client) or os.DirFS (server).
func LoadTMXRoom(fsys fs.FS, tmxPath string) (*Room, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	rows := make([][]int, levelMap.Height)
	for y := range rows {
		rows[y] = make([]int, levelMap.Width)
		for x := range rows[y] {
			rows[y][x] = Empty
		}
	}

	var solidIDs []int
	seen := map[int]bool{}
	for _, layer := range levelMap.Layers {
		if layer.Name != TMXWallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				id := int(tile.ID)
				rows[y][x] = id
				if !seen[id] {
					seen[id] = true
					solidIDs = append(solidIDs, id)
				}
			}
		}
		break
	}
	solid := NewSolidSet(solidIDs...)

	for _, layer := range levelMap.Layers {
		if layer.Name != TMXFloorLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() || rows[y][x] != Empty {
					continue
				}
				// A floor tile sharing an id with a wall would become solid.
				if solid.Has(int(tile.ID)) {
					continue
				}
				rows[y][x] = int(tile.ID)
			}
		}
		break
	}

	grid, err := NewTileGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	room := &Room{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Grid:        grid,
		Solid:       solid,
		TileSize:    levelMap.TileWidth,
		PlayerSpawn: SpawnPoint{X: 400, Y: 326},
		EnemySpawn:  SpawnPoint{X: 600, Y: 326},
	}

	tileSize := float64(levelMap.TileWidth)
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case TMXSpawnGroup:
			for _, o := range og.Objects {
				switch o.Name {
				case "player":
					room.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
				case "enemy":
					room.EnemySpawn = SpawnPoint{X: o.X, Y: o.Y}
				}
			}
		case TMXObjectGroup:
			for _, o := range og.Objects {
				kind := ObjectKind(o.Properties.GetString("kind"))
				if kind == "" {
					kind = ObjectDecor
				}
				room.Objects = append(room.Objects, MapObject{
					ID:       o.Name,
					Kind:     kind,
					TX:       o.X / tileSize,
					TY:       o.Y / tileSize,
					PrefabID: o.Properties.GetString("prefab"),
					Z:        o.Properties.GetInt("z"),
				})
			}
		}
	}

	if _, err := ExpandPrefabs(room.Objects, DecorPrefabs); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return room, nil
}

// LoadRoom dispatches on extension: .tmx goes through go-tiled, .yaml and
// .yml through the room file parser.
func LoadRoom(fsys fs.FS, path string) (*Room, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tmx":
		return LoadTMXRoom(fsys, path)
	case ".yaml", ".yml":
		return LoadRoomFile(fsys, path)
	}
	return nil, fmt.Errorf("load room %s: unsupported extension", path)
}

// LoadAllRooms discovers every room file in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllRooms(fsys fs.FS, dir string) (map[string]*Room, []string, error) {
	var matches []string
	for _, ext := range []string{"*.tmx", "*.yaml", "*.yml"} {
		m, err := fs.Glob(fsys, dir+"/"+ext)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", dir, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no room files found in %s", dir)
	}

	rooms := make(map[string]*Room, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		room, err := LoadRoom(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		rooms[stem] = room
		names = append(names, stem)
	}
	sort.Strings(names)
	return rooms, names, nil
}
