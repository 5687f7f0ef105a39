package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/shared/leveldata"
	"github.com/automoto/doomerang-hostiles/systems"
	"github.com/automoto/doomerang-hostiles/systems/factory"
	"github.com/automoto/doomerang-hostiles/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ActivateLevel tears down the current level and builds level id: a fresh
// space, its walls and enemies, defeated bosses excluded. The player keeps
// its health and lands on the pending spawn point if one was set, otherwise
// on the level's default spawn. The pending spawn point is cleared either way.
func (w *World) ActivateLevel(id string) error {
	level, ok := w.levels[id]
	if !ok {
		return fmt.Errorf("activate %q: %w", id, ErrUnknownLevel)
	}

	w.teardown()

	space := factory.CreateSpace(level.MapWidth, level.MapHeight)
	w.env.Space = space
	w.env.Bounds = dmath.NewVec2(float64(level.MapWidth), float64(level.MapHeight))
	if level.MapWidth <= 0 || level.MapHeight <= 0 {
		w.env.Bounds = dmath.NewVec2(float64(cfg.Sim.DefaultWidth), float64(cfg.Sim.DefaultHeight))
	}

	for _, r := range level.SolidRects {
		factory.CreateWall(w.ecs, space, r.X, r.Y, r.W, r.H)
	}

	spawned, skipped := 0, 0
	for _, es := range level.EnemySpawns {
		facing := cfg.DirectionRight
		if es.FaceLeft {
			facing = cfg.DirectionLeft
		}
		_, err := factory.CreateEnemy(w.ecs, space, w.env.Ledger, factory.EnemySpawn{
			ID:       es.BossID,
			TypeName: es.Type,
			X:        es.X,
			Y:        es.Y,
			Boss:     es.Boss,
			Facing:   facing,
		})
		switch {
		case errors.Is(err, factory.ErrDefeated):
			skipped++
		case err != nil:
			slog.Warn("could not spawn enemy", "level", id, "type", es.Type, "error", err)
		default:
			spawned++
		}
	}

	w.placePlayer(level)
	w.current = id

	slog.Info("level activated",
		"level", id,
		"walls", len(level.SolidRects),
		"enemies", spawned,
		"defeated_bosses_skipped", skipped)
	return nil
}

// teardown removes every enemy and wall of the active level. Enemy teardown
// cancels pending respawn and stun timers.
func (w *World) teardown() {
	var enemies, walls []*donburi.Entry
	tags.Enemy.Each(w.ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	tags.Wall.Each(w.ecs.World, func(e *donburi.Entry) {
		walls = append(walls, e)
	})

	for _, e := range enemies {
		systems.DespawnEnemy(w.env, e)
	}
	for _, e := range walls {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		w.ecs.World.Remove(e.Entity())
	}

	if w.player != nil && w.player.Valid() {
		obj := components.Object.Get(w.player)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
}

// placePlayer moves the player into the new space, consuming the pending
// spawn point.
func (w *World) placePlayer(level *leveldata.LevelData) {
	spawn := level.DefaultSpawn()
	if w.nextSpawnPoint != "" {
		if sp, ok := level.SpawnPoint(w.nextSpawnPoint); ok {
			spawn = sp
		} else {
			slog.Warn("spawn point not found, using default",
				"level", level.ID,
				"spawn_point", w.nextSpawnPoint)
		}
		w.nextSpawnPoint = ""
	}

	if w.player == nil || !w.player.Valid() {
		w.player = factory.CreatePlayer(w.ecs, w.env.Space, spawn.X, spawn.Y)
		return
	}

	// A stun from the old level does not follow the player
	systems.StopKnockback(w.player)

	obj := components.Object.Get(w.player)
	w.env.Space.Add(obj.Object)
	obj.SetPosition(dmath.NewVec2(spawn.X, spawn.Y))
	components.Physics.Get(w.player).Velocity = dmath.NewVec2(0, 0)
}
