package factory

import (
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/tags"
	"github.com/solarlune/resolv"
)

// CreateSpace mirrors the room's solid tiles into a resolv space. Runs of
// solid tiles on the same row become one object.
func CreateSpace(room *leveldata.Room) *resolv.Space {
	ts := room.TileSize
	space := resolv.NewSpace(room.PixelWidth(), room.PixelHeight(), ts, ts)

	grid := room.Grid
	for ty := 0; ty < grid.Height(); ty++ {
		runStart := -1
		for tx := 0; tx <= grid.Width(); tx++ {
			solid := tx < grid.Width() && grid.IsSolidAt(room.Solid, tx, ty)
			switch {
			case solid && runStart < 0:
				runStart = tx
			case !solid && runStart >= 0:
				x := float64(runStart * ts)
				y := float64(ty * ts)
				w := float64((tx - runStart) * ts)
				h := float64(ts)
				obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
				obj.SetShape(resolv.NewRectangle(0, 0, w, h))
				space.Add(obj)
				runStart = -1
			}
		}
	}
	return space
}
