package leveldata

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid  = errors.New("leveldata: grid has no tiles")
	ErrRaggedGrid = errors.New("leveldata: grid rows differ in length")
)

// NewTileGrid copies rows into a new grid. Rows must be non-empty and of
// equal length.
func NewTileGrid(rows [][]int) (*TileGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	cp := make([][]int, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d: %w", y, len(row), width, ErrRaggedGrid)
		}
		cp[y] = append([]int(nil), row...)
	}
	return &TileGrid{rows: cp, width: width}, nil
}

// MustTileGrid is NewTileGrid for static data; it panics on error.
func MustTileGrid(rows [][]int) *TileGrid {
	g, err := NewTileGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *TileGrid) Width() int  { return g.width }
func (g *TileGrid) Height() int { return len(g.rows) }

// InBounds reports whether (tx, ty) addresses a cell of the grid.
func (g *TileGrid) InBounds(tx, ty int) bool {
	return ty >= 0 && ty < len(g.rows) && tx >= 0 && tx < g.width
}

// At returns the tile id at (tx, ty), or Empty when out of bounds.
func (g *TileGrid) At(tx, ty int) int {
	if !g.InBounds(tx, ty) {
		return Empty
	}
	return g.rows[ty][tx]
}

// Rows returns a copy of the grid contents.
func (g *TileGrid) Rows() [][]int {
	out := make([][]int, len(g.rows))
	for y, row := range g.rows {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// IsSolidAt reports whether the cell blocks movement. Cells outside the grid
// are always solid: the grid is implicitly walled.
func (g *TileGrid) IsSolidAt(solid SolidSet, tx, ty int) bool {
	if !g.InBounds(tx, ty) {
		return true
	}
	v := g.rows[ty][tx]
	return v >= 0 && solid.Has(v)
}

// NewSolidSet builds a solid set from explicit ids.
func NewSolidSet(ids ...int) SolidSet {
	s := SolidSet{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// MakeSolidSet marks every id of the wall palette as solid.
func MakeSolidSet(wall WallTiles) SolidSet {
	return NewSolidSet(
		wall.TL, wall.T, wall.TR,
		wall.L, wall.R,
		wall.BL, wall.B, wall.BR,
		wall.InnerTL, wall.InnerTR, wall.InnerBL, wall.InnerBR,
	)
}

func (s SolidSet) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

func (s SolidSet) Len() int { return len(s.ids) }
