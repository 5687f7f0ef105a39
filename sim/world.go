// Package sim drives the hostile-entity systems with an explicit step
// function and owns what outlives a single level: the defeat ledger, the
// timers and the pending spawn-point handoff.
package sim

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"

	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/ledger"
	"github.com/automoto/doomerang-hostiles/shared/leveldata"
	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/automoto/doomerang-hostiles/systems"
	"github.com/automoto/doomerang-hostiles/systems/factory"
	"github.com/automoto/doomerang-hostiles/tags"
	"github.com/automoto/doomerang-hostiles/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrUnknownLevel is returned by ActivateLevel for ids that were never loaded.
var ErrUnknownLevel = errors.New("unknown level")

// World is one play session.
type World struct {
	ecs *ecs.ECS
	env *systems.Env

	levels   map[string]*leveldata.LevelData
	levelIDs []string
	current  string

	nextSpawnPoint string
	player         *donburi.Entry
}

// NewWorld creates a session with an empty default-sized space. A nil
// ledger gives an in-memory one; a nil rng is seeded from the clock.
func NewWorld(defeated *ledger.Ledger, rng *rand.Rand) *World {
	space := factory.CreateSpace(0, 0)
	env := systems.NewEnv(space, timer.NewScheduler(), defeated, rng)
	env.Bounds = dmath.NewVec2(float64(cfg.Sim.DefaultWidth), float64(cfg.Sim.DefaultHeight))

	return &World{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		env:    env,
		levels: make(map[string]*leveldata.LevelData),
	}
}

// ECS returns the underlying entity system.
func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

// Env returns the collaborators the systems run with.
func (w *World) Env() *systems.Env {
	return w.env
}

// Ledger returns the session's defeat ledger.
func (w *World) Ledger() *ledger.Ledger {
	return w.env.Ledger
}

// Now returns the elapsed simulation time.
func (w *World) Now() float64 {
	return w.env.Timers.Now().Seconds()
}

// Step advances the simulation by dt seconds. Due timers fire first, then
// every enemy runs its behavior against a snapshot of player positions taken
// before anything moves, finished swings land, then knockback and movement
// are integrated and queued events are delivered.
func (w *World) Step(dt float64) {
	w.env.Timers.AdvanceSeconds(dt)

	view := w.env.Space.Snapshot(tags.ResolvPlayer)
	systems.UpdateEnemies(w.ecs, w.env, view, dt)
	systems.UpdateAttacks(w.ecs, w.env)
	systems.UpdateKnockback(w.ecs, dt)
	systems.UpdateMovement(w.ecs, w.env, dt)

	messages.Dispatch(w.ecs.World)
}

// DispatchEvents delivers queued events without advancing time.
func (w *World) DispatchEvents() {
	messages.Dispatch(w.ecs.World)
}

// LoadLevels parses every TMX file in dir and makes them available to
// ActivateLevel. Returns the sorted level ids.
func (w *World) LoadLevels(fsys fs.FS, dir string) ([]string, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	for _, name := range names {
		w.AddLevel(levels[name])
	}
	return w.levelIDs, nil
}

// AddLevel registers parsed level data under its id.
func (w *World) AddLevel(level *leveldata.LevelData) {
	if _, exists := w.levels[level.ID]; !exists {
		w.levelIDs = append(w.levelIDs, level.ID)
	}
	w.levels[level.ID] = level
}

// CurrentLevelID returns the active level id, empty before the first
// activation.
func (w *World) CurrentLevelID() string {
	return w.current
}

// SetNextSpawnPoint names the spawn point the player is moved to when the
// next level activates.
func (w *World) SetNextSpawnPoint(id string) {
	w.nextSpawnPoint = id
}

// NextSpawnPoint returns the pending spawn-point id.
func (w *World) NextSpawnPoint() string {
	return w.nextSpawnPoint
}
