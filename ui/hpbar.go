package ui

import (
	"image/color"
	"math"

	cfg "github.com/automoto/tilebrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// HPRatio is hp/maxHP clamped to [0, 1]; a non-positive max reads as empty.
func HPRatio(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(hp)/float64(maxHP)))
}

// FillWidth is the filled part of a bar of the given width, in whole pixels.
func FillWidth(ratio, width float64) float64 {
	return math.Round(width * ratio)
}

// HPBarOrigin is where a bar is drawn relative to an actor's foot anchor:
// the horizontal centre and the top edge. The horizontal offset follows the
// sprite's facing so the bar sits over the head when flipped.
func HPBarOrigin(anchorX, anchorY int, flipX bool) (cx, top float64) {
	off := cfg.UI.HPBarOffsetX
	if !flipX {
		off = -off
	}
	return float64(anchorX) + off, float64(anchorY) - cfg.UI.HPBarOffsetY
}

// HPBar eases its displayed fill toward the actor's current health.
type HPBar struct {
	shown  float64
	target float64
	tween  *gween.Tween
}

func NewHPBar(hp, maxHP int) *HPBar {
	r := HPRatio(hp, maxHP)
	return &HPBar{shown: r, target: r}
}

// Set retargets the bar. A full refill (respawn) snaps instead of easing.
func (b *HPBar) Set(hp, maxHP int) {
	r := HPRatio(hp, maxHP)
	if r == b.target {
		return
	}
	b.target = r
	if r >= 1 || cfg.UI.HPBarEaseTime <= 0 {
		b.shown = r
		b.tween = nil
		return
	}
	b.tween = gween.New(float32(b.shown), float32(r), cfg.UI.HPBarEaseTime, ease.OutQuad)
}

// Update advances the easing by dt seconds.
func (b *HPBar) Update(dt float64) {
	if b.tween == nil {
		return
	}
	v, done := b.tween.Update(float32(dt))
	b.shown = float64(v)
	if done {
		b.shown = b.target
		b.tween = nil
	}
}

// Shown is the ratio currently drawn.
func (b *HPBar) Shown() float64 { return b.shown }

// Target is the ratio the bar is heading to.
func (b *HPBar) Target() float64 { return b.target }

func (b *HPBar) fillColor() color.RGBA {
	if b.target <= cfg.UI.HPBarLowRatio {
		return cfg.UI.HPBarLow
	}
	return cfg.UI.HPBarFill
}

// Draw renders the bar for an actor anchored at (anchorX, anchorY) in
// screen space.
func (b *HPBar) Draw(screen *ebiten.Image, anchorX, anchorY int, flipX bool) {
	w, h := cfg.UI.HPBarWidth, cfg.UI.HPBarHeight
	cx, top := HPBarOrigin(anchorX, anchorY, flipX)
	left := cx - w/2

	vector.FillRect(screen, float32(left), float32(top), float32(w), float32(h), cfg.UI.HPBarBack, false)
	if fill := FillWidth(b.shown, w); fill > 0 {
		vector.FillRect(screen, float32(left+1), float32(top+1), float32(math.Max(0, fill-2)), float32(h-2), b.fillColor(), false)
	}
	vector.StrokeRect(screen, float32(left), float32(top), float32(w), float32(h), 1, color.RGBA{R: 255, G: 255, B: 255, A: 230}, false)
}
