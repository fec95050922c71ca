package scenes

import (
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps one action to keys and standard-layout gamepad buttons.
type Binding struct {
	Keys           []ebiten.Key
	GamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is the default control layout.
var Bindings = map[netconfig.ActionID]Binding{
	netconfig.ActionMoveLeft: {
		Keys:           []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	netconfig.ActionMoveRight: {
		Keys:           []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	netconfig.ActionJump: {
		Keys:           []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
		GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	netconfig.ActionAttack: {
		Keys:           []ebiten.Key{ebiten.KeyJ, ebiten.KeyX},
		GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	netconfig.ActionDebugHit:       {Keys: []ebiten.Key{ebiten.KeyH}},
	netconfig.ActionDebugKill:      {Keys: []ebiten.Key{ebiten.KeyK}},
	netconfig.ActionToggleHitboxes: {Keys: []ebiten.Key{ebiten.KeyF1}},
	netconfig.ActionRestart: {
		Keys:           []ebiten.Key{ebiten.KeyR},
		GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

// Controls double-buffers action state so presses can be told from holds.
type Controls struct {
	Current  [netconfig.ActionCount]bool
	Previous [netconfig.ActionCount]bool
	seq      uint32
}

var gamepadIDs []ebiten.GamepadID

// Poll samples the keyboard and gamepads. Call once per frame.
func (c *Controls) Poll() {
	var pressed [netconfig.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, b := range Bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[action] = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range b.GamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					pressed[action] = true
				}
			}
		}
	}
	c.Advance(pressed)
}

// Advance swaps buffers with an already sampled frame.
func (c *Controls) Advance(pressed [netconfig.ActionCount]bool) {
	c.Previous = c.Current
	c.Current = pressed
	c.seq++
}

func (c *Controls) Held(a netconfig.ActionID) bool {
	return c.Current[a]
}

func (c *Controls) JustPressed(a netconfig.ActionID) bool {
	return c.Current[a] && !c.Previous[a]
}

// SimInput is this frame's controls for a local simulation.
func (c *Controls) SimInput() sim.InputState {
	return sim.InputFromActions(c.actions(), c.JustPressed(netconfig.ActionAttack), c.seq)
}

// PlayerInput is this frame's controls for the server. Attack is sent as
// held; the server derives the edge.
func (c *Controls) PlayerInput(timestamp int64) messages.PlayerInput {
	in := messages.NewPlayerInput(c.seq)
	in.Actions = c.actions()
	in.Timestamp = timestamp
	return in
}

func (c *Controls) actions() map[netconfig.ActionID]bool {
	out := make(map[netconfig.ActionID]bool, 4)
	for _, a := range []netconfig.ActionID{
		netconfig.ActionMoveLeft,
		netconfig.ActionMoveRight,
		netconfig.ActionJump,
		netconfig.ActionAttack,
	} {
		if c.Current[a] {
			out[a] = true
		}
	}
	return out
}
