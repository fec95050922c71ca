package main

import (
	"flag"
	"image"

	"github.com/automoto/tilebrawl/assets"
	"github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/fonts"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/network"
	"github.com/automoto/tilebrawl/scenes"
	"github.com/automoto/tilebrawl/settings"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/shared/protocol"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	room := flag.String("room", "", "Room to start in (default: last played)")
	roomDir := flag.String("rooms", "", "Directory of room files to play instead of the bundled rooms")
	watch := flag.Bool("watch", false, "Reload rooms from -rooms when their files change")
	tuning := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	connect := flag.String("connect", "", "Server address (host:port) to play on")
	name := flag.String("name", "player", "Player name sent to the server")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	if *tuning != "" {
		if err := config.LoadOverrides(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	store := settings.Open("tilebrawl")
	saved, err := store.Load()
	if err != nil {
		log.WithError(err).Warn("ignoring saved settings")
	}
	if saved != nil {
		saved.Apply()
		if *room == "" {
			*room = saved.LastRoom
		}
	}

	reload := assets.LoadRooms
	if *roomDir != "" {
		dir := *roomDir
		reload = func() (*assets.RoomSet, error) { return assets.LoadRoomsDir(dir) }
	}
	rooms, err := reload()
	if err != nil {
		log.Fatalf("Failed to load rooms: %v", err)
	}

	opts := scenes.WorldOptions{
		Rooms:    rooms,
		Room:     *room,
		Settings: store,
	}
	if *watch {
		if *roomDir == "" {
			log.Fatal("-watch needs -rooms")
		}
		watcher, err := leveldata.NewWatcher(*roomDir)
		if err != nil {
			log.Fatalf("Failed to watch rooms: %v", err)
		}
		defer watcher.Close()
		opts.Watcher = watcher
		opts.Reload = reload
	}

	g := &Game{}
	local := func() scenes.Scene { return scenes.NewWorldScene(g, opts) }
	g.scene = local()

	if *connect != "" {
		client := network.NewClient()
		client.Connect(*connect, netconfig.ProtocolVersion, *name)
		g.scene = scenes.NewRemoteScene(g, client, rooms, local)
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
