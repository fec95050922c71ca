package scenes

import (
	"fmt"
	"sync"
	"time"

	"github.com/automoto/tilebrawl/assets"
	"github.com/automoto/tilebrawl/assets/animations"
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/fonts"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/network"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netcomponents"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/sim"
	"github.com/automoto/tilebrawl/systems"
	"github.com/automoto/tilebrawl/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RemoteScene renders a round simulated by a server and forwards the
// local controls to it. It keeps a client-side copy of the replicated
// entities; nothing is predicted locally.
type RemoteScene struct {
	sceneChanger SceneChanger
	netClient    *network.Client
	rooms        *assets.RoomSet
	fallback     func() Scene

	ecsWorld   *ecs.ECS
	presentIDs map[esync.NetworkId]bool

	roomName string
	render   *roomRenderer
	controls Controls
	actors   map[netconfig.ActorID]*actorFX
	match    netcomponents.NetMatchData

	gameOver     *ui.GameOverUI
	showGameOver bool
	hudFace      text.Face

	log  *logrus.Entry
	once sync.Once
}

// NewRemoteScene plays on a connected client. fallback builds the scene
// to return to when the connection drops.
func NewRemoteScene(sc SceneChanger, client *network.Client, rooms *assets.RoomSet, fallback func() Scene) *RemoteScene {
	return &RemoteScene{
		sceneChanger: sc,
		netClient:    client,
		rooms:        rooms,
		fallback:     fallback,
		presentIDs:   make(map[esync.NetworkId]bool),
		actors:       make(map[netconfig.ActorID]*actorFX),
		log:          logger.For("remote"),
	}
}

func (rs *RemoteScene) configure() {
	rs.hudFace = text.NewGoXFace(fonts.HUD.Get())
	rs.gameOver = ui.NewGameOverUI(rs.requestRestart, nil, nil)

	rs.ecsWorld = ecs.NewECS(donburi.NewWorld())
	rs.ecsWorld.AddSystem(systems.NewNetInterpSystem(rs.netClient.TickRate, 1/float64(ebiten.TPS())))
}

func (rs *RemoteScene) Update() {
	rs.once.Do(rs.configure)

	state := rs.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		rs.log.WithError(rs.netClient.LastError()).WithField("state", state).Warn("connection lost, playing locally")
		rs.netClient.Disconnect()
		rs.sceneChanger.ChangeScene(rs.fallback())
		return
	}
	if state != network.StateJoinedGame {
		return
	}
	rs.syncRoom()

	if snap := rs.netClient.LatestSnapshot(); snap != nil {
		rs.applySnapshot(*snap)
	}
	rs.ecsWorld.Update()

	rs.controls.Poll()
	if err := rs.netClient.SendMessage(rs.controls.PlayerInput(time.Now().UnixMilli())); err != nil {
		rs.log.WithError(err).Debug("input not sent")
	}
	if rs.controls.JustPressed(netconfig.ActionRestart) {
		rs.requestRestart()
	}
	if rs.controls.JustPressed(netconfig.ActionToggleHitboxes) {
		cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
	}

	rs.handleEvents(rs.netClient.DrainEvents())
	rs.updateFX()

	if rs.showGameOver {
		rs.gameOver.Update()
	}
}

// syncRoom loads the server's room the first time it is known.
func (rs *RemoteScene) syncRoom() {
	name := rs.netClient.Room()
	if rs.render != nil && name == rs.roomName {
		return
	}
	room, err := rs.rooms.Get(name)
	if err != nil {
		rs.log.WithError(err).Warn("server room not bundled, drawing the first room")
		if room, err = rs.rooms.Get(""); err != nil {
			return
		}
	}
	render, err := newRoomRenderer(room)
	if err != nil {
		rs.log.WithError(err).Warn("cannot draw room")
		return
	}
	rs.roomName = name
	rs.render = render
	rs.log.WithFields(logrus.Fields{
		"server": rs.netClient.ServerName(),
		"room":   name,
	}).Info("joined remote game")
}

func (rs *RemoteScene) requestRestart() {
	if err := rs.netClient.SendMessage(messages.RestartRequest{}); err != nil {
		rs.log.WithError(err).Warn("restart not sent")
	}
}

func (rs *RemoteScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := rs.ecsWorld.World
	clear(rs.presentIDs)

	for _, ent := range snapshot {
		rs.presentIDs[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entity = world.Create(componentTypesFromInstances(compData)...)
			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
		}
		applySnapshotEntry(world.Entry(entity), compData)
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !rs.presentIDs[*id] {
			entry.Remove()
		}
	})
}

// applySnapshotEntry writes one entity's state. Positions are eased by
// the interpolation system rather than set.
func applySnapshotEntry(entry *donburi.Entry, compData []any) {
	var vel netcomponents.NetVelocityData
	for _, data := range compData {
		if v, ok := data.(netcomponents.NetVelocityData); ok {
			vel = v
		}
	}

	for _, data := range compData {
		switch v := data.(type) {
		case netcomponents.NetPositionData:
			if !entry.HasComponent(netcomponents.NetPosition) {
				entry.AddComponent(netcomponents.NetPosition)
			}
			if !entry.HasComponent(components.NetInterp) {
				entry.AddComponent(components.NetInterp)
			}
			interp := components.NetInterp.Get(entry)
			interp.Receive(*netcomponents.NetPosition.Get(entry), v, vel)
			if interp.T >= 1 {
				netcomponents.NetPosition.SetValue(entry, v)
			}
		case netcomponents.NetVelocityData:
			if !entry.HasComponent(netcomponents.NetVelocity) {
				entry.AddComponent(netcomponents.NetVelocity)
			}
			netcomponents.NetVelocity.SetValue(entry, v)
		case netcomponents.NetActorData:
			if !entry.HasComponent(netcomponents.NetActor) {
				entry.AddComponent(netcomponents.NetActor)
			}
			netcomponents.NetActor.SetValue(entry, v)
		case netcomponents.NetMatchData:
			if !entry.HasComponent(netcomponents.NetMatch) {
				entry.AddComponent(netcomponents.NetMatch)
			}
			netcomponents.NetMatch.SetValue(entry, v)
		}
	}
}

func componentTypesFromInstances(compData []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range compData {
		switch data.(type) {
		case netcomponents.NetPositionData:
			ctypes = append(ctypes, netcomponents.NetPosition, components.NetInterp)
		case netcomponents.NetVelocityData:
			ctypes = append(ctypes, netcomponents.NetVelocity)
		case netcomponents.NetActorData:
			ctypes = append(ctypes, netcomponents.NetActor)
		case netcomponents.NetMatchData:
			ctypes = append(ctypes, netcomponents.NetMatch)
		}
	}
	return ctypes
}

// views returns the replicated actors, player first.
func (rs *RemoteScene) views() []sim.ActorView {
	return remoteViews(rs.ecsWorld.World)
}

func remoteViews(world donburi.World) []sim.ActorView {
	var out []sim.ActorView
	netcomponents.NetActor.Each(world, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetPosition) {
			return
		}
		v := sim.ViewFromNet(*netcomponents.NetPosition.Get(entry), *netcomponents.NetActor.Get(entry))
		if v.ID == netconfig.PlayerID {
			out = append([]sim.ActorView{v}, out...)
			return
		}
		out = append(out, v)
	})
	return out
}

func (rs *RemoteScene) handleEvents(events []messages.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case messages.HitEvent:
			rs.log.WithFields(logrus.Fields{
				"attacker": e.AttackerID,
				"target":   e.TargetID,
				"hp":       e.HPAfter,
			}).Debug("hit")
		case messages.MatchOverEvent:
			rs.showOutcome(e.Outcome)
		}
	}
}

func (rs *RemoteScene) showOutcome(state netconfig.MatchStateID) {
	stats := ui.GameOverStats{Room: rs.roomName, Elapsed: float64(rs.match.Tick) / float64(max(rs.netClient.TickRate(), 1))}
	for _, v := range rs.views() {
		if v.ID == netconfig.PlayerID {
			stats.PlayerHP = v.HP
		} else {
			stats.EnemyHP = v.HP
		}
	}
	rs.showGameOver = true
	rs.gameOver.Show(state, stats, false)
}

// updateFX steps animations and HP bars and follows the replicated match
// state, which also covers rounds restarted by another client.
func (rs *RemoteScene) updateFX() {
	if entry, ok := netcomponents.NetMatch.First(rs.ecsWorld.World); ok {
		rs.match = *netcomponents.NetMatch.Get(entry)
	}
	switch {
	case rs.match.State == netconfig.MatchStatePlaying && rs.showGameOver:
		rs.showGameOver = false
	case rs.match.State != netconfig.MatchStatePlaying && !rs.showGameOver:
		rs.showOutcome(rs.match.State)
	}

	dt := 1 / float64(ebiten.TPS())
	for _, v := range rs.views() {
		fx, ok := rs.actors[v.ID]
		if !ok {
			fx = &actorFX{
				anim: animations.NewPlayer(actorConfig(v.Kind).SpriteSheetKey),
				bar:  ui.NewHPBar(v.HP, v.MaxHP),
			}
			rs.actors[v.ID] = fx
		}
		fx.anim.Update(v.Label, v.Entry, dt)
		fx.bar.Set(v.HP, v.MaxHP)
		fx.bar.Update(dt)
	}
}

func (rs *RemoteScene) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if rs.hudFace == nil {
		return
	}
	if rs.render == nil {
		drawText(screen, fmt.Sprintf("connecting: %s", rs.netClient.State()), rs.hudFace, 6, 4, white)
		return
	}

	b := screen.Bounds()
	rs.render.layout(b.Dx(), b.Dy())
	rs.render.drawRoom(screen)

	views := rs.views()
	for _, v := range views {
		if fx, ok := rs.actors[v.ID]; ok {
			rs.render.drawActor(screen, v, fx.anim.Frame())
		}
	}
	for _, v := range views {
		if fx, ok := rs.actors[v.ID]; ok {
			rs.render.drawHPBar(screen, fx.bar, v)
		}
	}
	if cfg.Debug.DrawHitboxes {
		rs.render.drawHitboxes(screen, views)
	}

	drawText(screen, fmt.Sprintf("%s  %s", rs.netClient.ServerName(), rs.roomName), rs.hudFace, 6, 4, white)
	if len(views) > 0 && views[0].ID == netconfig.PlayerID {
		p := views[0]
		drawText(screen, fmt.Sprintf("HP %d/%d", p.HP, p.MaxHP), rs.hudFace, 6, 20, white)
	}
	if rs.showGameOver {
		rs.gameOver.UI.Draw(screen)
	}
}
