package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/tilebrawl/assets"
	"github.com/automoto/tilebrawl/assets/animations"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/fonts"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/settings"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/sim"
	"github.com/automoto/tilebrawl/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
)

// WorldOptions configures a local game.
type WorldOptions struct {
	Rooms    *assets.RoomSet
	Room     string
	Settings *settings.Manager

	// Watcher and Reload enable hot reloading of room files.
	Watcher *leveldata.Watcher
	Reload  func() (*assets.RoomSet, error)
}

// WorldScene plays one room against the local simulation.
type WorldScene struct {
	sceneChanger SceneChanger
	opts         WorldOptions

	roomName string
	sim      *sim.Simulation
	render   *roomRenderer
	controls Controls
	actors   map[netconfig.ActorID]*actorFX

	gameOver     *ui.GameOverUI
	showGameOver bool
	hudFace      text.Face

	log  *logrus.Entry
	once sync.Once
}

// actorFX is the presentation state kept per actor.
type actorFX struct {
	anim *animations.Player
	bar  *ui.HPBar
}

func NewWorldScene(sc SceneChanger, opts WorldOptions) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		opts:         opts,
		roomName:     opts.Room,
		log:          logger.For("world"),
	}
}

func (ws *WorldScene) configure() {
	ws.hudFace = text.NewGoXFace(fonts.HUD.Get())
	ws.gameOver = ui.NewGameOverUI(ws.restart, ws.nextRoom, ws.toggleAI)
	if err := ws.loadRoom(ws.roomName); err != nil {
		ws.log.WithError(err).Warn("falling back to the first bundled room")
		if err := ws.loadRoom(""); err != nil {
			logger.Log.Fatalf("no playable room: %v", err)
		}
	}
}

func (ws *WorldScene) loadRoom(name string) error {
	room, err := ws.opts.Rooms.Get(name)
	if err != nil {
		return err
	}
	render, err := newRoomRenderer(room)
	if err != nil {
		return fmt.Errorf("room %s: %w", room.Name, err)
	}

	ws.roomName = room.Name
	ws.render = render
	ws.sim = sim.New(room, sim.WithEnemyAI(cfg.EnemyAI.Enabled))
	ws.resetFX()
	ws.saveSettings()

	ws.log.WithFields(logrus.Fields{
		"room":  room.Name,
		"tiles": fmt.Sprintf("%dx%d", room.Grid.Width(), room.Grid.Height()),
		"ai":    cfg.EnemyAI.Enabled,
	}).Info("room loaded")
	return nil
}

func (ws *WorldScene) resetFX() {
	ws.actors = make(map[netconfig.ActorID]*actorFX)
	for _, v := range ws.sim.Snapshot() {
		ws.actors[v.ID] = &actorFX{
			anim: animations.NewPlayer(actorConfig(v.Kind).SpriteSheetKey),
			bar:  ui.NewHPBar(v.HP, v.MaxHP),
		}
	}
	ws.showGameOver = false
}

func (ws *WorldScene) restart() {
	ws.sim.Reset()
	ws.resetFX()
}

func (ws *WorldScene) nextRoom() {
	if err := ws.loadRoom(ws.opts.Rooms.Next(ws.roomName)); err != nil {
		ws.log.WithError(err).Warn("could not switch room")
	}
}

func (ws *WorldScene) toggleAI() bool {
	cfg.EnemyAI.Enabled = !cfg.EnemyAI.Enabled
	if err := ws.loadRoom(ws.roomName); err != nil {
		ws.log.WithError(err).Warn("could not rebuild room")
	}
	return cfg.EnemyAI.Enabled
}

func (ws *WorldScene) saveSettings() {
	if ws.opts.Settings == nil {
		return
	}
	if err := ws.opts.Settings.Save(settings.Current(ws.roomName)); err != nil {
		ws.log.WithError(err).Warn("could not save settings")
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.pollWatcher()
	ws.controls.Poll()

	if ws.controls.JustPressed(netconfig.ActionRestart) {
		ws.restart()
	}
	if ws.controls.JustPressed(netconfig.ActionToggleHitboxes) {
		cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
		ws.saveSettings()
	}
	if cfg.Debug.DebugKeys {
		if ws.controls.JustPressed(netconfig.ActionDebugHit) {
			ws.sim.DebugDamage(cfg.Debug.DebugDamage)
		}
		if ws.controls.JustPressed(netconfig.ActionDebugKill) {
			ws.sim.DebugKill()
		}
	}

	ms := 1000 / float64(ebiten.TPS())
	ws.sim.SetInput(ws.controls.SimInput())
	ws.handleEvents(ws.sim.Tick(ms))

	dt := ms / 1000
	for _, v := range ws.sim.Snapshot() {
		fx := ws.actors[v.ID]
		if fx.anim.Update(v.Label, v.Entry, dt) {
			ws.sim.NotifyAnimationComplete(v.ID, v.Label)
		}
		fx.bar.Set(v.HP, v.MaxHP)
		fx.bar.Update(dt)
	}

	if ws.showGameOver {
		ws.gameOver.Update()
	}
}

func (ws *WorldScene) handleEvents(events []messages.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case messages.HitEvent:
			ws.log.WithFields(logrus.Fields{
				"attacker": e.AttackerID,
				"target":   e.TargetID,
				"hp":       e.HPAfter,
			}).Debug("hit")
		case messages.MatchOverEvent:
			ws.showGameOver = true
			ws.gameOver.Show(e.Outcome, ws.stats(), ws.sim.AIEnabled())
		}
	}
}

func (ws *WorldScene) stats() ui.GameOverStats {
	s := ui.GameOverStats{Room: ws.roomName, Elapsed: ws.sim.Elapsed()}
	if p, ok := ws.sim.Actor(netconfig.PlayerID); ok {
		s.PlayerHP = p.HP
	}
	if e, ok := ws.sim.Actor(netconfig.EnemyID); ok {
		s.EnemyHP = e.HP
	}
	return s
}

// pollWatcher reloads the room set when a watched room file changes.
func (ws *WorldScene) pollWatcher() {
	if ws.opts.Watcher == nil || ws.opts.Reload == nil {
		return
	}
	select {
	case path, ok := <-ws.opts.Watcher.Events:
		if !ok {
			return
		}
		rooms, err := ws.opts.Reload()
		if err != nil {
			ws.log.WithError(err).WithField("path", path).Warn("room reload failed, keeping current room")
			return
		}
		ws.opts.Rooms = rooms
		if err := ws.loadRoom(ws.roomName); err != nil {
			ws.log.WithError(err).Warn("reloaded room missing, loading first room")
			_ = ws.loadRoom("")
		}
	case err, ok := <-ws.opts.Watcher.Errors:
		if ok {
			ws.log.WithError(err).Warn("room watcher error")
		}
	default:
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if ws.sim == nil {
		return
	}

	b := screen.Bounds()
	ws.render.layout(b.Dx(), b.Dy())
	ws.render.drawRoom(screen)

	views := ws.sim.Snapshot()
	for _, v := range views {
		ws.render.drawActor(screen, v, ws.actors[v.ID].anim.Frame())
	}
	for _, v := range views {
		ws.render.drawHPBar(screen, ws.actors[v.ID].bar, v)
	}
	if cfg.Debug.DrawHitboxes {
		ws.render.drawSpace(screen, ws.sim.Space())
		ws.render.drawHitboxes(screen, views)
	}

	ws.drawHUD(screen, views)
	if ws.showGameOver {
		ws.gameOver.UI.Draw(screen)
	}
}

func (ws *WorldScene) drawHUD(screen *ebiten.Image, views []sim.ActorView) {
	drawText(screen, ws.roomName, ws.hudFace, 6, 4, white)
	if len(views) > 0 {
		p := views[0]
		drawText(screen, fmt.Sprintf("HP %d/%d", p.HP, p.MaxHP), ws.hudFace, 6, 20, white)
	}
	if cfg.Debug.DrawHitboxes {
		drawText(screen, "F1 hitboxes  R restart  H hurt  K kill", ws.hudFace, 6, float64(screen.Bounds().Dy())-18, white)
	}
}
