package gamemath

import "math"

// Vec is a point or displacement in world pixels.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned box with a top-left origin, y growing down.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rect.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// FootAnchor is the bottom-center of the rect shifted by off and rounded to
// whole pixels. Sprites are drawn from this point.
func (r Rect) FootAnchor(off Vec) (int, int) {
	return int(math.Round(r.X + r.W/2 + off.X)), int(math.Round(r.Y + r.H + off.Y))
}

// TileSpan is the inclusive range of tile indices a rect overlaps.
type TileSpan struct {
	Left, Right, Top, Bottom int
}

// TileRange maps a rect to the tiles it covers. The far edges use w-1 and
// h-1 so a rect exactly flush with a tile boundary does not reach into the
// next tile.
func TileRange(r Rect, tileSize float64) TileSpan {
	return TileSpan{
		Left:   int(math.Floor(r.X / tileSize)),
		Right:  int(math.Floor((r.X + r.W - 1) / tileSize)),
		Top:    int(math.Floor(r.Y / tileSize)),
		Bottom: int(math.Floor((r.Y + r.H - 1) / tileSize)),
	}
}
