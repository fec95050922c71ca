package scenes

import (
	"image/color"

	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/sim"
	"github.com/automoto/tilebrawl/tags"
	"github.com/automoto/tilebrawl/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

var (
	kingColor  = color.RGBA{R: 230, G: 196, B: 80, A: 255}
	pigColor   = color.RGBA{R: 126, G: 196, B: 110, A: 255}
	doorColor  = color.RGBA{R: 110, G: 70, B: 40, A: 255}
	white      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hitboxCol  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	solidCol   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	probeCol   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	reachCol   = color.RGBA{R: 255, G: 220, B: 0, A: 120}
	background = color.RGBA{R: 10, G: 10, B: 14, A: 255}
)

func actorConfig(kind netconfig.ActorKind) *cfg.ActorConfig {
	if kind == netconfig.KindEnemy {
		return &cfg.Enemy
	}
	return &cfg.Player
}

// roomRenderer draws a room and the actors in it with placeholder art.
type roomRenderer struct {
	room  *leveldata.Room
	tiles *tileCache
	decor []leveldata.DecorTile
	offX  float64
	offY  float64
}

func newRoomRenderer(room *leveldata.Room) (*roomRenderer, error) {
	decor, err := leveldata.ExpandPrefabs(room.Objects, leveldata.DecorPrefabs)
	if err != nil {
		return nil, err
	}
	return &roomRenderer{
		room:  room,
		tiles: newTileCache(room.TileSize),
		decor: decor,
	}, nil
}

// layout centres rooms smaller than the screen.
func (r *roomRenderer) layout(screenW, screenH int) {
	r.offX = max(0, float64(screenW-r.room.PixelWidth())/2)
	r.offY = max(0, float64(screenH-r.room.PixelHeight())/2)
}

func (r *roomRenderer) drawRoom(screen *ebiten.Image) {
	ts := float64(r.room.TileSize)
	grid := r.room.Grid
	for ty := 0; ty < grid.Height(); ty++ {
		for tx := 0; tx < grid.Width(); tx++ {
			id := grid.At(tx, ty)
			if id == leveldata.Empty {
				continue
			}
			kind := tileFloor
			if r.room.Solid.Has(id) {
				kind = tileWall
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(r.offX+float64(tx)*ts, r.offY+float64(ty)*ts)
			screen.DrawImage(r.tiles.tile(kind, id), op)
		}
	}

	for _, d := range r.decor {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(r.offX+d.TX*ts, r.offY+d.TY*ts)
		screen.DrawImage(r.tiles.tile(tileDecor, d.ID), op)
	}

	for _, o := range r.room.Objects {
		if o.Kind != leveldata.ObjectDoor {
			continue
		}
		x, y := r.offX+o.TX*ts, r.offY+o.TY*ts
		vector.FillRect(screen, float32(x), float32(y), float32(ts*1.5), float32(ts*2), doorColor, false)
	}
}

// drawActor draws a body block at the hitbox, a facing nub, and a reach
// bar on attack frames.
func (r *roomRenderer) drawActor(screen *ebiten.Image, v sim.ActorView, frame int) {
	ac := actorConfig(v.Kind)
	body := kingColor
	if v.Kind == netconfig.KindEnemy {
		body = pigColor
	}
	body = tint(body, ac.TintColor)

	rect := v.Hitbox
	x, y := r.offX+rect.X, r.offY+rect.Y
	w, h := rect.W, rect.H

	switch v.Label {
	case netconfig.Dead:
		y += h * 0.6
		h *= 0.4
		body = tint(body, color.RGBA{R: 120, G: 120, B: 120, A: 255})
	case netconfig.Hit:
		if frame%2 == 0 {
			body = white
		}
	case netconfig.Running:
		if frame%2 == 1 {
			y--
		}
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), body, false)

	nubX := x + w
	if v.FlipX {
		nubX = x - 3
	}
	vector.FillRect(screen, float32(nubX), float32(y+4), 3, 4, white, false)

	if v.Label == netconfig.Attack && frame > 0 {
		cx := x + w/2
		reach := cfg.Combat.RangeX
		left := cx
		if v.FlipX {
			left = cx - reach
		}
		vector.FillRect(screen, float32(left), float32(y+h/3), float32(reach), 3, reachCol, false)
	}
}

func (r *roomRenderer) drawHPBar(screen *ebiten.Image, bar *ui.HPBar, v sim.ActorView) {
	bar.Draw(screen, int(r.offX)+v.AnchorX, int(r.offY)+v.AnchorY, v.FlipX)
}

func (r *roomRenderer) strokeRect(screen *ebiten.Image, rect gamemath.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.offX+rect.X), float32(r.offY+rect.Y), float32(rect.W), float32(rect.H), 1, c, false)
}

// drawSpace outlines the resolv mirror of the room: merged solid runs and
// the enemy's ledge probe.
func (r *roomRenderer) drawSpace(screen *ebiten.Image, space *resolv.Space) {
	if space == nil {
		return
	}
	for _, obj := range space.Objects() {
		c := color.Color(probeCol)
		if obj.HasTags(tags.ResolvSolid) {
			c = solidCol
		}
		r.strokeRect(screen, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, c)
	}
}

func (r *roomRenderer) drawHitboxes(screen *ebiten.Image, views []sim.ActorView) {
	for _, v := range views {
		r.strokeRect(screen, v.Hitbox, hitboxCol)
	}
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func tint(c, t color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(t.R) / 255),
		G: uint8(uint16(c.G) * uint16(t.G) / 255),
		B: uint8(uint16(c.B) * uint16(t.B) / 255),
		A: c.A,
	}
}
