package gamemath

import "github.com/automoto/tilebrawl/shared/leveldata"

// TileMoveResult is the outcome of moving a rect through a tile grid.
type TileMoveResult struct {
	Rect     Rect
	VX, VY   float64
	Grounded bool
}

// ResolveTileMove moves rect by (vx, vy)*dt against the solid cells of grid.
//
// The x axis is resolved first, then y. Each axis gets at most one
// correction: the first blocking cell in ascending scan order snaps the rect
// flush against it and zeroes that velocity component. Cells outside the
// grid are solid. After both axes a one-pixel probe below the rect sets
// Grounded even when the actor did not move down this tick.
//
// There is no sub-stepping; a displacement larger than one tile in a single
// call can pass through a one-tile wall.
func ResolveTileMove(grid *leveldata.TileGrid, solid leveldata.SolidSet, tileSize float64, rect Rect, vx, vy, dt float64) TileMoveResult {
	res := TileMoveResult{Rect: rect, VX: vx, VY: vy}

	res.Rect.X += vx * dt
	span := TileRange(res.Rect, tileSize)
	switch {
	case vx > 0:
		for ty := span.Top; ty <= span.Bottom; ty++ {
			if grid.IsSolidAt(solid, span.Right, ty) {
				res.Rect.X = float64(span.Right)*tileSize - res.Rect.W
				res.VX = 0
				break
			}
		}
	case vx < 0:
		for ty := span.Top; ty <= span.Bottom; ty++ {
			if grid.IsSolidAt(solid, span.Left, ty) {
				res.Rect.X = float64(span.Left+1) * tileSize
				res.VX = 0
				break
			}
		}
	}

	res.Rect.Y += vy * dt
	span = TileRange(res.Rect, tileSize)
	switch {
	case vy > 0:
		for tx := span.Left; tx <= span.Right; tx++ {
			if grid.IsSolidAt(solid, tx, span.Bottom) {
				res.Rect.Y = float64(span.Bottom)*tileSize - res.Rect.H
				res.VY = 0
				res.Grounded = true
				break
			}
		}
	case vy < 0:
		for tx := span.Left; tx <= span.Right; tx++ {
			if grid.IsSolidAt(solid, tx, span.Top) {
				res.Rect.Y = float64(span.Top+1) * tileSize
				res.VY = 0
				break
			}
		}
	}

	res.Grounded = res.Grounded || TouchesGround(grid, solid, tileSize, res.Rect)
	return res
}

// TouchesGround reports whether a solid cell lies within one pixel below
// rect.
func TouchesGround(grid *leveldata.TileGrid, solid leveldata.SolidSet, tileSize float64, rect Rect) bool {
	probe := rect
	probe.Y++
	span := TileRange(probe, tileSize)
	for tx := span.Left; tx <= span.Right; tx++ {
		if grid.IsSolidAt(solid, tx, span.Bottom) {
			return true
		}
	}
	return false
}
