package components

import "github.com/yohamta/donburi"

// IntentData is what an actor wants to do this tick, from player input or
// the enemy policy.
type IntentData struct {
	Dir      int  // -1, 0, 1
	Face     int  // facing wanted while Dir is 0; 0 keeps the current one
	JumpHeld bool // level; jump triggers on press while unlocked
	Attack   bool // edge; consumed by the tick that reads it
	Sequence uint32
}

var Intent = donburi.NewComponentType[IntentData]()
