package sim

import (
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/automoto/tilebrawl/shared/netconfig"
)

// ViewFromNet rebuilds an actor view from replicated components so a
// remote game renders through the same path as a local one. Hitbox size
// and render offset come from the local tuning for the actor's kind.
func ViewFromNet(pos netcomponents.NetPositionData, actor netcomponents.NetActorData) ActorView {
	ac := &cfg.Player
	if actor.Kind == netconfig.KindEnemy {
		ac = &cfg.Enemy
	}
	rect := gamemath.Rect{X: pos.X, Y: pos.Y, W: ac.CollisionWidth, H: ac.CollisionHeight}
	ax, ay := rect.FootAnchor(gamemath.Vec{X: ac.RenderOffsetX, Y: ac.RenderOffsetY})
	return ActorView{
		ID:       actor.ActorID,
		Kind:     actor.Kind,
		Label:    actor.StateID,
		Entry:    actor.Entry,
		Hitbox:   rect,
		AnchorX:  ax,
		AnchorY:  ay,
		Facing:   actor.Facing,
		FlipX:    actor.Facing < 0,
		HP:       actor.HP,
		MaxHP:    actor.MaxHP,
		Sequence: actor.LastSequence,
	}
}
