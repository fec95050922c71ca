// Package leveldata produces the immutable tile world consumed by the
// simulation: tile grids, solid sets, room files and render-only map
// objects. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Empty is the tile id of a cell with no tile.
const Empty = -1

// TileGrid is a rectangular grid of tile-type ids indexed [y][x]. It is
// immutable after construction; use NewTileGrid to build one.
type TileGrid struct {
	rows  [][]int
	width int
}

// SolidSet is the set of tile-type ids that block movement.
type SolidSet struct {
	ids map[int]struct{}
}

// WallTiles is the wall palette used to autotile a room mask. Every id in it
// is solid.
type WallTiles struct {
	TL int `yaml:"tl"`
	T  int `yaml:"t"`
	TR int `yaml:"tr"`
	L  int `yaml:"l"`
	R  int `yaml:"r"`
	BL int `yaml:"bl"`
	B  int `yaml:"b"`
	BR int `yaml:"br"`

	InnerTL int `yaml:"inner_tl"`
	InnerTR int `yaml:"inner_tr"`
	InnerBL int `yaml:"inner_bl"`
	InnerBR int `yaml:"inner_br"`
}

// ObjectKind classifies a map object.
type ObjectKind string

const (
	ObjectDecor ObjectKind = "decor"
	ObjectDoor  ObjectKind = "door"
)

// MapObject is a static decoration or door placed in tile coordinates.
// Objects are render-only and never take part in physics.
type MapObject struct {
	ID       string     `yaml:"id"`
	Kind     ObjectKind `yaml:"kind"`
	TX       float64    `yaml:"tx"`
	TY       float64    `yaml:"ty"`
	PrefabID string     `yaml:"prefab,omitempty"`
	Z        int        `yaml:"z,omitempty"`
}

// DecorPrefab is a small block of decor tile ids stamped at an object's
// position.
type DecorPrefab struct {
	ID     string  `yaml:"id"`
	Tiles  [][]int `yaml:"tiles"`
	Origin string  `yaml:"origin,omitempty"` // "tl" (default) or "bl"
}

// DecorTile is one expanded prefab tile in tile coordinates.
type DecorTile struct {
	TX, TY float64
	ID     int
	Z      int
}

// SpawnPoint is an actor start position in world pixels (hitbox top-left).
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Room bundles everything the simulation and renderer need for one level.
type Room struct {
	Name     string
	Grid     *TileGrid
	Solid    SolidSet
	TileSize int
	Objects  []MapObject

	PlayerSpawn SpawnPoint
	EnemySpawn  SpawnPoint
}

// PixelWidth is the room width in world pixels.
func (r *Room) PixelWidth() int {
	return r.Grid.Width() * r.TileSize
}

// PixelHeight is the room height in world pixels.
func (r *Room) PixelHeight() int {
	return r.Grid.Height() * r.TileSize
}
