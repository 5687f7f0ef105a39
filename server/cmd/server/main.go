package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/ledger"
	"github.com/automoto/doomerang-hostiles/server/core"
	"github.com/automoto/doomerang-hostiles/shared/protocol"
	"github.com/automoto/doomerang-hostiles/sim"
	"github.com/automoto/doomerang-hostiles/systems"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 0, "Simulation tick rate (0 = config value)")
	assets := flag.String("assets", "assets", "Directory containing levels/*.tmx")
	level := flag.String("level", "", "Starting level (empty = first by name)")
	configPath := flag.String("config", "", "YAML file overriding built-in enemy and player settings")
	saveName := flag.String("save", "doomerang-hostiles", "Save-data app name for the defeat ledger (empty = in memory)")
	newGame := flag.Bool("newgame", false, "Forget every defeated boss before starting")
	debug := flag.Bool("debug", false, "Log enemy state transitions")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	systems.EnableDebugLogging(*debug)

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	defeated := ledger.New()
	if *saveName != "" {
		var err error
		defeated, err = ledger.OpenSaveData(*saveName)
		if err != nil {
			log.Fatalf("Failed to open save data: %v", err)
		}
	}
	if *newGame {
		if err := defeated.Clear(); err != nil {
			slog.Warn("could not clear defeat ledger", "error", err)
		}
	}

	world := sim.NewWorld(defeated, nil)
	if err := core.LoadLevels(world, *assets, *level); err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := core.NewServer(world, *tickRate)

	slog.Info("starting server",
		"port", *port,
		"level", world.CurrentLevelID(),
		"defeated_bosses", defeated.Len())
	if err := server.Run(ctx, *port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	slog.Info("server stopped")
}
