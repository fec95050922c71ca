package animations

import (
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/netconfig"
)

// Animation is a frame clock over one sprite strip.
type Animation struct {
	Frames           int
	FrameTime        float64 // seconds per frame
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // stay on the last frame instead of looping
}

// Update advances the clock by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.Frames <= 0 || a.FrameTime <= 0 || dt <= 0 {
		return
	}
	if a.FreezeOnComplete && a.Looped {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameTime {
		a.elapsed -= a.FrameTime
		a.frame++
		if a.frame >= a.Frames {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Frames - 1
				a.elapsed = 0
				return
			}
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(frames int, fps float64, loop bool) *Animation {
	frameTime := 0.0
	if fps > 0 {
		frameTime = 1 / fps
	}
	return &Animation{
		Frames:           frames,
		FrameTime:        frameTime,
		FreezeOnComplete: !loop,
	}
}

// Player plays one character's strips and follows the label the
// simulation derives for it.
type Player struct {
	strips  map[netconfig.StateID]*Animation
	current netconfig.StateID
	entry   uint32
	done    bool
}

// NewPlayer builds a player for a sprite sheet key from
// config.CharacterAnimations at config.Animation.FPS.
func NewPlayer(sheet string) *Player {
	p := &Player{
		strips:  make(map[netconfig.StateID]*Animation),
		current: netconfig.StateNone,
	}
	for id, def := range cfg.CharacterAnimations[sheet] {
		p.strips[id] = NewAnimation(def.Frames, cfg.Animation.FPS, def.Loop)
	}
	return p
}

// Update switches to label if it changed, or restarts it when entry moved
// on, and advances the current strip. It returns true once per entry, on
// the frame a one-shot strip (attack, hit) finishes; the caller forwards
// that to the simulation.
func (p *Player) Update(label netconfig.StateID, entry uint32, dt float64) bool {
	if label != p.current || entry != p.entry {
		p.current = label
		p.entry = entry
		p.done = false
		if a := p.strips[label]; a != nil {
			a.Restart()
		}
	}

	a := p.strips[p.current]
	if a == nil {
		// No strip to play; finish one-shots right away so the
		// simulation never waits on art that does not exist.
		if p.current.OneShot() && !p.done {
			p.done = true
			return true
		}
		return false
	}

	a.Update(dt)
	if a.Looped && p.current.OneShot() && !p.done {
		p.done = true
		return true
	}
	return false
}

func (p *Player) Label() netconfig.StateID { return p.current }

// Frame is the strip frame to draw.
func (p *Player) Frame() int {
	if a := p.strips[p.current]; a != nil {
		return a.Frame()
	}
	return 0
}
