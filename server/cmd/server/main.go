package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/logger"
	"github.com/automoto/tilebrawl/server/core"
	"github.com/automoto/tilebrawl/shared/netconfig"
	"github.com/automoto/tilebrawl/shared/protocol"
	"github.com/sirupsen/logrus"
)

func main() {
	tuning := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	port := flag.Uint("port", uint(cfg.Server.Port), "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", cfg.Server.Name, "Server display name")
	version := flag.String("version", netconfig.ProtocolVersion, "Required client version (empty = accept any)")
	rooms := flag.String("rooms", "", "Directory of room files (default: bundled rooms)")
	room := flag.String("room", "", "Room to play (default: first room)")
	enemyAI := flag.Bool("ai", true, "Run the enemy policy")
	flag.Parse()

	logger.Init()
	log := logger.For("server")

	if *tuning != "" {
		if err := cfg.LoadOverrides(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server, err := core.NewServer(core.Options{
		Name:     *name,
		Version:  *version,
		TickRate: *tickRate,
		RoomDir:  *rooms,
		Room:     *room,
		EnemyAI:  *enemyAI,
	})
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go server.Loop().Run(ctx)

	go func() {
		log.WithFields(logrus.Fields{
			"name":     *name,
			"port":     *port,
			"tickRate": *tickRate,
			"version":  *version,
			"room":     server.Game().Room(),
		}).Info("starting server")
		if err := server.Start(*port); err != nil {
			log.Errorf("Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")
}
