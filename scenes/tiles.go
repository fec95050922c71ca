package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// tileKind picks the palette for a placeholder tile.
type tileKind int

const (
	tileFloor tileKind = iota
	tileWall
	tileDecor
)

// tileCache draws flat-colored stand-ins for tileset tiles and keeps them
// so each id is rendered once.
type tileCache struct {
	size  int
	cache map[string]*ebiten.Image
}

func newTileCache(tileSize int) *tileCache {
	return &tileCache{size: tileSize, cache: make(map[string]*ebiten.Image)}
}

// tile returns the image for a tile id.
func (c *tileCache) tile(kind tileKind, id int) *ebiten.Image {
	key := fmt.Sprintf("%d/%d", kind, id)
	if img, ok := c.cache[key]; ok {
		return img
	}

	img := ebiten.NewImage(c.size, c.size)
	base := tileColor(kind, id)
	img.Fill(base)

	s := float32(c.size)
	edge := shade(base, 0.7)
	switch kind {
	case tileWall:
		// Brick seams.
		vector.FillRect(img, 0, s/2-1, s, 2, edge, false)
		vector.FillRect(img, s/2-1, 0, 2, s/2, edge, false)
	case tileDecor:
		vector.StrokeRect(img, 1, 1, s-2, s-2, 2, edge, false)
	}
	c.cache[key] = img
	return img
}

// tileColor is the placeholder color of a tile. Ids vary the shade so
// neighbouring tiles of different types stay distinguishable.
func tileColor(kind tileKind, id int) color.RGBA {
	v := uint8(id*37%24) // small per-id variation
	switch kind {
	case tileWall:
		return color.RGBA{R: 90 + v, G: 84 + v, B: 96 + v, A: 255}
	case tileDecor:
		return color.RGBA{R: 120 + v, G: 90 + v/2, B: 60, A: 220}
	}
	return color.RGBA{R: 28, G: 26 + v/3, B: 40 + v/2, A: 255}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
