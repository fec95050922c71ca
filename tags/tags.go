package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for the level space
const (
	ResolvSolid = "solid"
	ResolvEnemy = "Enemy"
)
