package components

import (
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is an actor's kinematic state. X and Y are the hitbox
// top-left in world pixels.
type PhysicsData struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	Grounded bool
	Facing   int // -1 or 1
	// JumpLock is set when a jump starts and cleared once jump is released,
	// so holding jump does not bunny-hop.
	JumpLock bool
}

// Rect is the actor's hitbox.
func (p *PhysicsData) Rect() gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Center is the hitbox center used for melee range checks.
func (p *PhysicsData) Center() gamemath.Vec {
	return p.Rect().Center()
}

// ResetTo puts the actor back at spawn, standing still on the ground.
func (p *PhysicsData) ResetTo(spawn gamemath.Vec) {
	p.X, p.Y = spawn.X, spawn.Y
	p.VX, p.VY = 0, 0
	p.Grounded = true
	p.JumpLock = false
}

// Finite reports whether position and velocity are all real numbers.
func (p *PhysicsData) Finite() bool {
	return gamemath.IsFinite(p.X, p.Y, p.VX, p.VY)
}

var Physics = donburi.NewComponentType[PhysicsData]()
