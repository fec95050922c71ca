package components

import "github.com/yohamta/donburi"

// CombatTimersData holds the melee clocks of one actor. All values are
// seconds and never negative.
type CombatTimersData struct {
	AtkElapsed           float64 // time since the current swing started
	DidHitThisSwing      bool
	IFramesRemaining     float64
	AtkCooldownRemaining float64
}

// Tick advances the clocks by dt. attacking is the actor's state at the
// start of the tick; when false the swing clock and hit flag reset.
func (c *CombatTimersData) Tick(dt float64, attacking bool) {
	c.IFramesRemaining = max(0, c.IFramesRemaining-dt)
	c.AtkCooldownRemaining = max(0, c.AtkCooldownRemaining-dt)
	if attacking {
		c.AtkElapsed += dt
	} else {
		c.AtkElapsed = 0
		c.DidHitThisSwing = false
	}
}

// StartAttack begins a fresh swing and arms the cooldown.
func (c *CombatTimersData) StartAttack(cooldown float64) {
	c.AtkElapsed = 0
	c.DidHitThisSwing = false
	c.AtkCooldownRemaining = max(0, cooldown)
}

// CanAct reports whether the attack cooldown has run out.
func (c *CombatTimersData) CanAct() bool {
	return c.AtkCooldownRemaining <= 0
}

// InActiveWindow reports whether the swing is inside [windup, windup+active].
func (c *CombatTimersData) InActiveWindow(windup, active float64) bool {
	return c.AtkElapsed >= windup && c.AtkElapsed <= windup+active
}

// Vulnerable reports whether invulnerability has expired.
func (c *CombatTimersData) Vulnerable() bool {
	return c.IFramesRemaining <= 0
}

var CombatTimers = donburi.NewComponentType[CombatTimersData]()
