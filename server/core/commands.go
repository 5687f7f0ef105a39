package core

import (
	"log/slog"

	cfg "github.com/automoto/doomerang-hostiles/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// processCommands applies the queued travel and player commands.
func (s *Server) processCommands() {
	s.mu.Lock()
	cmd, travel := s.pending, s.travel
	s.pending, s.travel = nil, nil
	s.mu.Unlock()

	if travel != nil {
		s.sim.SetNextSpawnPoint(travel.SpawnPoint)
		if err := s.sim.ActivateLevel(travel.Level); err != nil {
			slog.Warn("travel failed", "level", travel.Level, "error", err)
			s.sim.SetNextSpawnPoint("")
		}
	}

	if cmd == nil {
		return
	}

	move := dmath.NewVec2(clampUnit(cmd.MoveX), clampUnit(cmd.MoveY))
	if move.X != 0 {
		facing := cfg.DirectionRight
		if move.X < 0 {
			facing = cfg.DirectionLeft
		}
		s.sim.SetPlayerFacing(facing)
	}
	s.sim.SetPlayerVelocity(move.MulScalar(cfg.Player.Speed))

	if cmd.Attack {
		s.sim.PlayerAttack()
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
