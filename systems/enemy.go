package systems

import (
	"math"

	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/spatial"
	"github.com/automoto/doomerang-hostiles/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies runs one behavior step for every live enemy. view answers the
// detection queries and should be the snapshot taken at the start of the step,
// so no enemy reacts to movement made earlier in the same pass.
func UpdateEnemies(ecs *ecs.ECS, env *Env, view spatial.Service, dt float64) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		// Dead enemies wait for their respawn timer
		if e.HasComponent(components.Death) {
			return
		}
		tickEnemy(e, view, dt)
	})
}

func tickEnemy(e *donburi.Entry, view spatial.Service, dt float64) {
	state := components.State.Get(e)
	state.StateTime += dt

	// The knockback effector owns movement until the stun expires
	if state.CurrentState == cfg.Knockback {
		return
	}

	enemy := components.Enemy.Get(e)
	physics := components.Physics.Get(e)
	pos := components.Object.Get(e).Position()

	enemy.AttackCooldown = math.Max(0, enemy.AttackCooldown-dt)

	target, found := detectPlayer(enemy, pos, view)
	if !found {
		physics.Velocity = dmath.NewVec2(0, 0)
		changeState(e, cfg.Idle)
		return
	}

	dist := view.Distance(pos, target)
	typ := enemy.TypeConfig
	if dist <= typ.AttackRange && enemy.AttackCooldown <= 0 {
		enemy.AttackCooldown = typ.AttackCooldown
		faceToward(enemy, target.X-pos.X)
		changeState(e, cfg.Attacking)
	} else if dist > typ.AttackRange && state.CurrentState != cfg.Attacking {
		changeState(e, cfg.Chasing)
	}

	switch state.CurrentState {
	case cfg.Chasing:
		chase(enemy, physics, pos, target)
	case cfg.Attacking, cfg.Idle:
		physics.Velocity = dmath.NewVec2(0, 0)
	}
}

// detectPlayer returns the first player the view reports around the enemy's
// detection anchor. The first result wins, not the nearest.
func detectPlayer(enemy *components.EnemyData, pos dmath.Vec2, view spatial.Service) (dmath.Vec2, bool) {
	typ := enemy.TypeConfig
	anchor := pos.Add(dmath.NewVec2(typ.DetectOffsetX*enemy.Facing, typ.DetectOffsetY))

	hits := view.QueryInRange(anchor, typ.DetectRange, tags.ResolvPlayer)
	if len(hits) == 0 {
		return dmath.Vec2{}, false
	}
	return hits[0].Position, true
}

func chase(enemy *components.EnemyData, physics *components.PhysicsData, pos, target dmath.Vec2) {
	diff := target.Sub(pos)
	if diff.Magnitude() == 0 {
		physics.Velocity = dmath.NewVec2(0, 0)
		return
	}

	faceToward(enemy, diff.X)
	physics.Velocity = diff.Normalized().MulScalar(enemy.TypeConfig.Speed)
}

// faceToward flips facing when it disagrees with the sign of dx.
func faceToward(enemy *components.EnemyData, dx float64) {
	if (dx > 0 && enemy.Facing < 0) || (dx < 0 && enemy.Facing > 0) {
		enemy.Facing = -enemy.Facing
	}
}

// UpdateAttacks completes every swing that has lasted its type's attack
// duration. Types without a duration wait for an explicit FinishAttack.
func UpdateAttacks(ecs *ecs.ECS, env *Env) {
	var done []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		state := components.State.Get(e)
		duration := components.Enemy.Get(e).TypeConfig.AttackDuration
		if state.CurrentState == cfg.Attacking && duration > 0 && state.StateTime >= duration {
			done = append(done, e)
		}
	})

	// Hits change the player's components, so resolve outside the query
	for _, e := range done {
		FinishAttack(env, e)
	}
}

// FinishAttack is the attack-completion signal: it resolves the swing against
// the player and ends the Attacking state. Returns true if a player was hit.
func FinishAttack(env *Env, e *donburi.Entry) bool {
	if !e.Valid() || e.HasComponent(components.Death) {
		return false
	}
	if components.State.Get(e).CurrentState != cfg.Attacking {
		return false
	}

	hit := ResolveEnemyAttack(env, e)
	changeState(e, cfg.Idle)
	return hit
}
