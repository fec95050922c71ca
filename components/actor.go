package components

import (
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/yohamta/donburi"
)

// ActorData is the fixed identity and tuning of a character.
type ActorData struct {
	ID   netconfig.ActorID
	Kind netconfig.ActorKind

	Spawn        gamemath.Vec // hitbox top-left at spawn
	RenderOffset gamemath.Vec // added to the foot anchor when drawing

	MoveSpeed      float64
	Damage         int
	AttackCooldown float64
	SpriteSheetKey string
}

var Actor = donburi.NewComponentType[ActorData]()
