package core

import (
	"context"
	"log/slog"
	"time"

	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop steps the simulation at a fixed rate and pushes the result to
// connected clients.
type GameLoop struct {
	server   *Server
	tickRate int
	ticks    uint64
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = cfg.Sim.TickRate
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
	}
}

// Run ticks until ctx is canceled.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	slog.Info("game loop started", "tick_rate", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			slog.Info("game loop stopped")
			return nil
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) tick() {
	start := time.Now()
	interval := time.Second / time.Duration(g.tickRate)
	g.ticks++

	g.server.processCommands()
	g.server.sim.Step(interval.Seconds())
	g.server.mirror.Sync()

	if err := srvsync.DoSync(); err != nil {
		slog.Warn("sync error", "tick", g.ticks, "error", err)
	}

	if elapsed := time.Since(start); elapsed > interval {
		slog.Warn("tick overran", "tick", g.ticks, "elapsed", elapsed, "budget", interval)
	}
}
