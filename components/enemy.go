package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// EnemyAIData is the placeholder enemy policy's memory. The walking
// direction chosen in one tick is applied as intent in the next.
type EnemyAIData struct {
	Chasing bool
	Dir     int
	// Probe mirrors the enemy hitbox in the level space for ledge checks.
	Probe *resolv.Object
}

var EnemyAI = donburi.NewComponentType[EnemyAIData]()
