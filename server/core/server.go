package core

import (
	"context"
	"log/slog"
	"sync"

	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/automoto/doomerang-hostiles/sim"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"golang.org/x/sync/errgroup"
)

// Server hosts one simulation session and mirrors its enemies to clients.
type Server struct {
	sim       *sim.World
	loop      *GameLoop
	mirror    *Mirror
	transport *transports.WsServerTransport

	clients map[*router.NetworkClient]struct{}

	// Commands arrive on transport goroutines and are applied on the tick
	pending *messages.PlayerCommand
	travel  *messages.TravelCommand
	mu      sync.Mutex
}

// NewServer creates a server around world, ticking tickRate times per second.
func NewServer(world *sim.World, tickRate int) *Server {
	s := &Server{
		sim:     world,
		clients: make(map[*router.NetworkClient]struct{}),
	}
	s.loop = NewGameLoop(s, tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world.ECS().World)
	s.mirror = NewMirror(world)

	// Register router callbacks
	s.setupRouterCallbacks()

	return s
}

// Run serves port until ctx is canceled or the transport fails.
func (s *Server) Run(ctx context.Context, port uint) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.loop.Run(ctx)
	})

	g.Go(func() error {
		s.transport = transports.NewWsServerTransport(port, "", nil)
		errCh := make(chan error, 1)
		go func() { errCh <- s.transport.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			return nil
		}
	})

	return g.Wait()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.mu.Lock()
		s.clients[client] = struct{}{}
		s.mu.Unlock()
		slog.Info("client connected", "client", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.mu.Lock()
		delete(s.clients, client)
		s.mu.Unlock()
		if err != nil {
			slog.Warn("client disconnected", "client", client.Id(), "error", err)
			return
		}
		slog.Info("client disconnected", "client", client.Id())
	})

	router.On(func(client *router.NetworkClient, cmd messages.PlayerCommand) {
		s.QueueCommand(cmd)
	})

	router.On(func(client *router.NetworkClient, cmd messages.TravelCommand) {
		s.QueueTravel(cmd)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		slog.Warn("client error", "error", err)
	})
}

// QueueCommand stores the latest player command for the next tick.
func (s *Server) QueueCommand(cmd messages.PlayerCommand) {
	s.mu.Lock()
	s.pending = &cmd
	s.mu.Unlock()
}

// QueueTravel stores a level change for the next tick.
func (s *Server) QueueTravel(cmd messages.TravelCommand) {
	s.mu.Lock()
	s.travel = &cmd
	s.mu.Unlock()
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// World returns the ECS world the simulation and its mirrors live in.
func (s *Server) World() donburi.World {
	return s.sim.ECS().World
}
