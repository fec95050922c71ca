package core

import (
	"context"
	"time"

	"github.com/automoto/tilebrawl/logger"
)

// Ticker is one step of server work, run on the loop goroutine.
type Ticker interface {
	Tick(elapsedMs float64)
}

type GameLoop struct {
	target   Ticker
	tickRate int
}

func NewGameLoop(target Ticker, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{target: target, tickRate: tickRate}
}

// Run ticks the target at the loop's rate until ctx is cancelled. Each
// tick is passed the measured wall time since the previous one.
func (g *GameLoop) Run(ctx context.Context) {
	log := logger.For("loop")
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.WithField("tickRate", g.tickRate).Info("game loop started")

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Info("game loop stopped")
			return
		case now := <-ticker.C:
			g.target.Tick(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now
		}
	}
}
