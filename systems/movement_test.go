package systems

import (
	"testing"

	"github.com/automoto/doomerang-hostiles/components"
	"github.com/automoto/doomerang-hostiles/systems/factory"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	f := newFixture(t)
	e := f.spawnSlime(t, 100, 100)
	components.Physics.Get(e).Velocity = dmath.NewVec2(2, -4)

	UpdateMovement(f.ecs, f.env, 0.5)
	assert.Equal(t, dmath.NewVec2(101, 98), components.Object.Get(e).Position())
}

func TestMovementClampsToBounds(t *testing.T) {
	f := newFixture(t)
	e := f.spawnSlime(t, 1, 510)
	components.Physics.Get(e).Velocity = dmath.NewVec2(-10, 10)

	UpdateMovement(f.ecs, f.env, 1)
	assert.Equal(t, dmath.NewVec2(0, 511), components.Object.Get(e).Position())
}

func TestMovementSkipsDisabledEnemies(t *testing.T) {
	f := newFixture(t)
	e := f.spawnSlime(t, 100, 100)
	components.Presence.Get(e).Movement = false
	components.Physics.Get(e).Velocity = dmath.NewVec2(5, 0)

	UpdateMovement(f.ecs, f.env, 1)
	assert.Equal(t, dmath.NewVec2(100, 100), components.Object.Get(e).Position())
}

func TestMovementMovesPlayer(t *testing.T) {
	f := newFixture(t)
	p := f.spawnPlayer(10, 10)
	components.Physics.Get(p).Velocity = dmath.NewVec2(3, 0)

	UpdateMovement(f.ecs, f.env, 1)
	assert.Equal(t, dmath.NewVec2(13, 10), components.Object.Get(p).Position())
}

func TestMovementStopsAtWalls(t *testing.T) {
	f := newFixture(t)
	factory.CreateWall(f.ecs, f.env.Space, 200, 0, 16, 512)
	e := f.spawnSlime(t, 100, 100)
	obj := components.Object.Get(e)
	components.Physics.Get(e).Velocity = dmath.NewVec2(300, 0)

	UpdateMovement(f.ecs, f.env, 1)
	assert.InDelta(t, 200-obj.W, obj.X, 1e-9)
	assert.Equal(t, 100.0, obj.Y)
}

func TestMovementIgnoresWallsOffTheLane(t *testing.T) {
	f := newFixture(t)
	factory.CreateWall(f.ecs, f.env.Space, 200, 400, 16, 16)
	e := f.spawnSlime(t, 100, 100)
	components.Physics.Get(e).Velocity = dmath.NewVec2(150, 0)

	UpdateMovement(f.ecs, f.env, 1)
	assert.Equal(t, 250.0, components.Object.Get(e).X)
}
