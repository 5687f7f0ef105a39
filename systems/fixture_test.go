package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/ledger"
	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/automoto/doomerang-hostiles/spatial"
	"github.com/automoto/doomerang-hostiles/systems/factory"
	"github.com/automoto/doomerang-hostiles/tags"
	"github.com/automoto/doomerang-hostiles/timer"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

type fixture struct {
	ecs *ecs.ECS
	env *Env
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Cleanup(cfg.Reset)

	env := NewEnv(spatial.NewSpace(512, 512, 16, 16), timer.NewScheduler(), ledger.New(), rand.New(rand.NewPCG(1, 2)))
	env.Bounds = dmath.NewVec2(512, 512)
	return &fixture{
		ecs: ecs.NewECS(donburi.NewWorld()),
		env: env,
	}
}

func (f *fixture) world() donburi.World {
	return f.ecs.World
}

func (f *fixture) spawnEnemy(t *testing.T, spawn factory.EnemySpawn) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateEnemy(f.ecs, f.env.Space, f.env.Ledger, spawn)
	require.NoError(t, err)
	return e
}

func (f *fixture) spawnSlime(t *testing.T, x, y float64) *donburi.Entry {
	return f.spawnEnemy(t, factory.EnemySpawn{TypeName: "Slime", X: x, Y: y, Facing: cfg.DirectionRight})
}

func (f *fixture) spawnPlayer(x, y float64) *donburi.Entry {
	return factory.CreatePlayer(f.ecs, f.env.Space, x, y)
}

// tick runs the behavior pass against a snapshot, as a step does.
func (f *fixture) tick(dt float64) {
	UpdateEnemies(f.ecs, f.env, f.env.Space.Snapshot(tags.ResolvPlayer), dt)
}

// withEnemyType registers typ for the duration of the test.
func withEnemyType(typ cfg.EnemyTypeConfig) {
	if typ.CollisionWidth == 0 {
		typ.CollisionWidth, typ.CollisionHeight = 1, 1
	}
	cfg.Enemy.Types[typ.Name] = typ
}

func moveTo(e *donburi.Entry, x, y float64) {
	components.Object.Get(e).SetPosition(dmath.NewVec2(x, y))
}

func velocity(e *donburi.Entry) dmath.Vec2 {
	return components.Physics.Get(e).Velocity
}

func health(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

// recorder collects published events of one type.
type recorder[T any] struct {
	events []T
}

func record[T any](w donburi.World, et *events.EventType[T]) *recorder[T] {
	r := &recorder[T]{}
	et.Subscribe(w, func(_ donburi.World, ev T) {
		r.events = append(r.events, ev)
	})
	return r
}

func (f *fixture) dispatch() {
	messages.Dispatch(f.world())
}
