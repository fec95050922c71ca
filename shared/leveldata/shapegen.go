package leveldata

// Mask marks the cells covered by a room shape, indexed [y][x].
type Mask [][]bool

// DefaultFloor is the background tile id used for mask interiors.
const DefaultFloor = 127

// DefaultWallTiles is the wall palette of the bundled castle tileset.
var DefaultWallTiles = WallTiles{
	TL: 6, T: 37, TR: 7,
	L: 20, R: 18,
	BL: 24, B: 1, BR: 25,
	InnerTL: 0, InnerTR: 2, InnerBL: 36, InnerBR: 38,
}

// NewMask returns a w×h mask filled with initial.
func NewMask(w, h int, initial bool) Mask {
	m := make(Mask, h)
	for y := range m {
		m[y] = make([]bool, w)
		if initial {
			for x := range m[y] {
				m[y][x] = true
			}
		}
	}
	return m
}

// FillRect sets a w×h block at (x0, y0), clipping anything outside the mask.
func (m Mask) FillRect(x0, y0, w, h int, value bool) {
	for y := y0; y < y0+h; y++ {
		if y < 0 || y >= len(m) {
			continue
		}
		for x := x0; x < x0+w; x++ {
			if x < 0 || x >= len(m[y]) {
				continue
			}
			m[y][x] = value
		}
	}
}

func (m Mask) at(x, y int) bool {
	return y >= 0 && y < len(m) && x >= 0 && x < len(m[y]) && m[y][x]
}

// MakeMapFromMask autotiles a mask. Cells outside the mask become empty,
// fully enclosed cells become floor, and edge cells get the matching wall or
// inner-corner tile from the palette.
func MakeMapFromMask(mask Mask, floor int, wall WallTiles, empty int) [][]int {
	h := len(mask)
	if h == 0 {
		return nil
	}
	w := len(mask[0])

	out := make([][]int, h)
	for y := 0; y < h; y++ {
		out[y] = make([]int, w)
		for x := 0; x < w; x++ {
			out[y][x] = empty
			if !mask[y][x] {
				continue
			}
			out[y][x] = pickWallTile(mask, x, y, floor, wall)
		}
	}
	return out
}

func pickWallTile(mask Mask, x, y, floor int, wall WallTiles) int {
	top := mask.at(x, y-1)
	bottom := mask.at(x, y+1)
	left := mask.at(x-1, y)
	right := mask.at(x+1, y)

	// Concave corners: both orthogonal neighbours present, diagonal missing.
	switch {
	case top && left && !mask.at(x-1, y-1):
		return wall.InnerBR
	case top && right && !mask.at(x+1, y-1):
		return wall.InnerBL
	case bottom && left && !mask.at(x-1, y+1):
		return wall.InnerTR
	case bottom && right && !mask.at(x+1, y+1):
		return wall.InnerTL
	}

	if top && bottom && left && right {
		return floor
	}

	switch {
	case !top && !left:
		return wall.TL
	case !top && !right:
		return wall.TR
	case !bottom && !left:
		return wall.BL
	case !bottom && !right:
		return wall.BR
	case !top:
		return wall.T
	case !bottom:
		return wall.B
	case !left:
		return wall.L
	case !right:
		return wall.R
	}
	return floor
}

// MakeRoomMap builds a plain rectangular room: a one-tile wall ring around
// a floor interior.
func MakeRoomMap(width, height, floor int, wall WallTiles) [][]int {
	out := make([][]int, height)
	for y := 0; y < height; y++ {
		out[y] = make([]int, width)
		for x := 0; x < width; x++ {
			isLeft, isRight := x == 0, x == width-1
			isTop, isBottom := y == 0, y == height-1
			switch {
			case isTop && isLeft:
				out[y][x] = wall.TL
			case isTop && isRight:
				out[y][x] = wall.TR
			case isBottom && isLeft:
				out[y][x] = wall.BL
			case isBottom && isRight:
				out[y][x] = wall.BR
			case isTop:
				out[y][x] = wall.T
			case isBottom:
				out[y][x] = wall.B
			case isLeft:
				out[y][x] = wall.L
			case isRight:
				out[y][x] = wall.R
			default:
				out[y][x] = floor
			}
		}
	}
	return out
}

// MakeSampleShapeMap returns the bundled L-shaped castle room: a large hall
// joined to a low corridor on its left.
func MakeSampleShapeMap(width, height, floor int, wall WallTiles) [][]int {
	mask := NewMask(width, height, false)
	mask.FillRect(10, 3, 13, 9, true)
	mask.FillRect(2, 3, 9, 5, true)
	mask.FillRect(9, 6, 2, 2, true)
	return MakeMapFromMask(mask, floor, wall, Empty)
}

// SampleRoom builds the default room used when no room file is given.
func SampleRoom(tileSize int) *Room {
	grid := MustTileGrid(MakeSampleShapeMap(25, 15, DefaultFloor, DefaultWallTiles))
	return &Room{
		Name:        "sample",
		Grid:        grid,
		Solid:       MakeSolidSet(DefaultWallTiles),
		TileSize:    tileSize,
		Objects:     append([]MapObject(nil), DefaultObjects...),
		PlayerSpawn: SpawnPoint{X: 400, Y: 326},
		EnemySpawn:  SpawnPoint{X: 600, Y: 326},
	}
}
