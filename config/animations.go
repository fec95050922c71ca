package config

import "github.com/automoto/tilebrawl/shared/netconfig"

type StateID = netconfig.StateID

// AnimationDef describes one sprite sheet strip.
type AnimationDef struct {
	Frames int
	Loop   bool
}

// CharacterAnimations maps a sprite sheet key to its strips. Attack and hit
// are one-shot and report completion to the simulation.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"king": {
		netconfig.Idle:    {Frames: 11, Loop: true},
		netconfig.Running: {Frames: 8, Loop: true},
		netconfig.Jump:    {Frames: 1, Loop: true},
		netconfig.Attack:  {Frames: 3},
		netconfig.Hit:     {Frames: 2},
		netconfig.Dead:    {Frames: 4},
	},
	"pig": {
		netconfig.Idle:    {Frames: 11, Loop: true},
		netconfig.Running: {Frames: 6, Loop: true},
		netconfig.Jump:    {Frames: 1, Loop: true},
		netconfig.Attack:  {Frames: 5},
		netconfig.Hit:     {Frames: 2},
		netconfig.Dead:    {Frames: 4},
	},
}
