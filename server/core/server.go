package core

import (
	"fmt"
	"sync"

	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/messages"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/sim"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// Peer is a connected client as the server sees it.
type Peer interface {
	Id() string
	SendMessage(msg any) error
}

type Options struct {
	Name     string
	Version  string
	TickRate int
	RoomDir  string // empty for the bundled rooms
	Room     string
	EnemyAI  bool
}

// Server runs one authoritative round and replicates it to every joined
// client. The first client to join controls the player; later ones watch.
type Server struct {
	opts      Options
	world     donburi.World
	game      *Game
	input     InputSlot
	loop      *GameLoop
	transport *transports.WsServerTransport
	doSync    func() error
	log       *logrus.Entry

	mu         sync.Mutex
	peers      map[string]Peer
	controller string
	restart    bool
}

// NewServer loads the room, builds the round and registers the router
// callbacks.
func NewServer(opts Options) (*Server, error) {
	room, name, err := LoadRoom(opts.RoomDir, opts.Room)
	if err != nil {
		return nil, err
	}
	opts.Room = name

	world := donburi.NewWorld()
	srvsync.UseEsync(world)

	s, err := newServer(opts, room, world, SrvSync, srvsync.DoSync)
	if err != nil {
		return nil, err
	}
	s.setupRouterCallbacks()
	return s, nil
}

func newServer(opts Options, room *leveldata.Room, world donburi.World, syncFn SyncFunc, doSync func() error) (*Server, error) {
	game, err := NewGame(room, opts.Room, world, syncFn, sim.WithEnemyAI(opts.EnemyAI))
	if err != nil {
		return nil, fmt.Errorf("build round: %w", err)
	}
	s := &Server{
		opts:   opts,
		world:  world,
		game:   game,
		doSync: doSync,
		log:    logger.For("server"),
		peers:  make(map[string]Peer),
	}
	s.loop = NewGameLoop(s, opts.TickRate)
	return s, nil
}

// Start serves websocket clients on port. It blocks until the transport
// fails; run the loop separately with Loop().Run.
func (s *Server) Start(port uint) error {
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

func (s *Server) Loop() *GameLoop { return s.loop }
func (s *Server) Game() *Game     { return s.game }

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.log.WithField("client", client.Id()).Info("client connected")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.handleDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.handleJoin(client, req)
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.handleInput(client, input)
	})

	router.On(func(client *router.NetworkClient, _ messages.RestartRequest) {
		s.handleRestart(client)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.WithField("client", client.Id()).WithError(err).Warn("client error")
	})
}

func (s *Server) handleJoin(peer Peer, req messages.JoinRequest) {
	log := s.log.WithFields(logrus.Fields{
		"client": peer.Id(),
		"name":   req.PlayerName,
	})

	if s.opts.Version != "" && req.Version != s.opts.Version {
		log.WithField("version", req.Version).Warn("join rejected")
		s.send(peer, messages.JoinRejected{
			Reason: fmt.Sprintf("version mismatch: server %s, client %s", s.opts.Version, req.Version),
		})
		return
	}

	s.mu.Lock()
	s.peers[peer.Id()] = peer
	controls := s.controller == ""
	if controls {
		s.controller = peer.Id()
	}
	s.mu.Unlock()

	if controls {
		s.input.Reset()
	}
	log.WithField("controls", controls).Info("client joined")

	s.send(peer, messages.JoinAccepted{
		NetworkID:  s.networkID(netconfig.PlayerID),
		ServerName: s.opts.Name,
		Room:       s.opts.Room,
		TickRate:   s.loop.tickRate,
	})
}

func (s *Server) handleDisconnect(peer Peer, err error) {
	log := s.log.WithField("client", peer.Id())
	if err != nil {
		log = log.WithError(err)
	}

	s.mu.Lock()
	delete(s.peers, peer.Id())
	lostController := s.controller == peer.Id()
	if lostController {
		s.controller = ""
		// Any remaining watcher takes over.
		for id := range s.peers {
			s.controller = id
			break
		}
	}
	next := s.controller
	s.mu.Unlock()

	if lostController {
		s.input.Reset()
		log.WithField("controller", next).Info("controller left")
		return
	}
	log.Info("client disconnected")
}

func (s *Server) handleInput(peer Peer, input messages.PlayerInput) {
	if !s.isController(peer) {
		return
	}
	s.input.Offer(input)
}

func (s *Server) handleRestart(peer Peer) {
	if !s.isController(peer) {
		return
	}
	s.mu.Lock()
	s.restart = true
	s.mu.Unlock()
}

func (s *Server) isController(peer Peer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller != "" && s.controller == peer.Id()
}

// Tick advances the round. It runs on the loop goroutine only.
func (s *Server) Tick(elapsedMs float64) {
	s.mu.Lock()
	restart := s.restart
	s.restart = false
	s.mu.Unlock()

	if restart {
		s.game.Restart()
		s.input.Reset()
		s.log.WithField("room", s.opts.Room).Info("round restarted")
	}

	events := s.game.Step(s.input.Take(), elapsedMs)
	s.broadcast(events)

	if s.doSync != nil {
		if err := s.doSync(); err != nil {
			s.log.WithError(err).Warn("sync failed")
		}
	}
}

// broadcast relays the events clients react to. Label changes travel in
// the replicated state instead.
func (s *Server) broadcast(events []messages.Event) {
	for _, ev := range events {
		switch ev.(type) {
		case messages.HitEvent, messages.DeathEvent, messages.MatchOverEvent:
			s.sendAll(ev)
		}
	}
}

func (s *Server) sendAll(msg any) {
	s.mu.Lock()
	peers := make([]Peer, 0, len(s.peers))
	for _, p := range s.peers {
		peers = append(peers, p)
	}
	s.mu.Unlock()

	for _, p := range peers {
		s.send(p, msg)
	}
}

func (s *Server) send(peer Peer, msg any) {
	if err := peer.SendMessage(msg); err != nil {
		s.log.WithField("client", peer.Id()).WithError(err).Warn("send failed")
	}
}

func (s *Server) networkID(id netconfig.ActorID) esync.NetworkId {
	entity, ok := s.game.Mirror().Entity(id)
	if !ok || !s.world.Valid(entity) {
		return 0
	}
	if nid := esync.GetNetworkId(s.world.Entry(entity)); nid != nil {
		return *nid
	}
	return 0
}

// PlayerCount returns the number of joined clients.
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.peers)
}

// Controller returns the id of the client driving the player, if any.
func (s *Server) Controller() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller
}
