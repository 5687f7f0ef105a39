package systems

import (
	"log/slog"

	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/shared/messages"
	"github.com/automoto/doomerang-hostiles/timer"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ApplyDamage adds amount to the enemy's health. Negative amounts hurt,
// positive ones heal up to the maximum. Reaching zero kills the enemy.
// Damage against a dead or removed enemy is ignored.
func ApplyDamage(env *Env, e *donburi.Entry, amount int) {
	if !e.Valid() || IsDead(e) {
		return
	}

	health := components.Health.Get(e)
	health.Current += amount
	if health.Current > health.Max {
		health.Current = health.Max
	}

	lethal := health.Current <= 0
	if lethal {
		health.Current = 0
	}

	messages.HealthChanged.Publish(e.World, messages.HealthChangedEvent{
		Entity:  e.Entity(),
		Current: health.Current,
		Max:     health.Max,
	})

	if lethal {
		Die(env, e)
	}
}

// IsDead reports whether the enemy is waiting to respawn.
func IsDead(e *donburi.Entry) bool {
	return e.HasComponent(components.Death)
}

// Die runs the death transition once: rewards, loot, then either the
// permanent boss path or a scheduled respawn. Any stun is dropped and the
// behavior state goes back to Idle. Further calls are absorbed.
func Die(env *Env, e *donburi.Entry) {
	if !e.Valid() || IsDead(e) {
		return
	}

	enemy := components.Enemy.Get(e)
	pos := components.Object.Get(e).Position()

	cancelKnockback(e)
	components.Physics.Get(e).Velocity = dmath.NewVec2(0, 0)
	changeState(e, cfg.Idle)

	donburi.Add(e, components.Death, &components.DeathData{DiedAt: env.Timers.Now()})

	slog.Info("enemy defeated",
		"id", enemy.ID,
		"type", enemy.TypeName,
		"boss", enemy.Boss)

	messages.MonsterDefeated.Publish(e.World, messages.MonsterDefeatedEvent{
		Entity:   e.Entity(),
		ID:       enemy.ID,
		TypeName: enemy.TypeName,
		Boss:     enemy.Boss,
		Exp:      enemy.TypeConfig.Exp,
		Gold:     enemy.TypeConfig.Gold,
	})

	ResolveLoot(env, e.World, e.Entity(), enemy.TypeConfig, pos)

	if enemy.Boss {
		env.Ledger.Add(enemy.ID)
		DespawnEnemy(env, e)
		return
	}

	presence := components.Presence.Get(e)
	presence.SetAll(false)
	removeFromSpace(e)

	w := e.World
	entity := e.Entity()
	components.Death.Get(e).RespawnTimer = env.Timers.ScheduleOnce(timer.Seconds(enemy.TypeConfig.RespawnDelay), func() {
		if !w.Valid(entity) {
			return
		}
		Respawn(env, w.Entry(entity))
	})
}

// Respawn brings a dead enemy back at its spawn position with full health.
func Respawn(env *Env, e *donburi.Entry) {
	if !e.Valid() || !IsDead(e) {
		return
	}

	components.Death.Get(e).RespawnTimer.Cancel()
	donburi.Remove[components.DeathData](e, components.Death)

	enemy := components.Enemy.Get(e)
	obj := components.Object.Get(e)
	presence := components.Presence.Get(e)
	if !presence.Collision && env.Space != nil {
		env.Space.Add(obj.Object)
	}
	obj.SetPosition(enemy.SpawnPosition)

	presence.SetAll(true)
	components.Physics.Get(e).Velocity = dmath.NewVec2(0, 0)
	enemy.AttackCooldown = 0

	health := components.Health.Get(e)
	health.Current = health.Max

	changeState(e, cfg.Idle)

	messages.HealthChanged.Publish(e.World, messages.HealthChangedEvent{
		Entity:  e.Entity(),
		Current: health.Current,
		Max:     health.Max,
	})
	messages.EnemyRespawned.Publish(e.World, messages.EnemyRespawnedEvent{
		Entity: e.Entity(),
		ID:     enemy.ID,
	})

	if IsDebugEnabled() {
		slog.Debug("enemy respawned", "id", enemy.ID, "x", obj.X, "y", obj.Y)
	}
}

// DespawnEnemy removes an enemy for good, cancelling any pending respawn or
// stun expiry first.
func DespawnEnemy(env *Env, e *donburi.Entry) {
	if !e.Valid() {
		return
	}

	if e.HasComponent(components.Death) {
		components.Death.Get(e).RespawnTimer.Cancel()
	}
	cancelKnockback(e)
	removeFromSpace(e)

	id := components.Enemy.Get(e).ID
	messages.EnemyDespawned.Publish(e.World, messages.EnemyDespawnedEvent{
		Entity: e.Entity(),
		ID:     id,
	})

	e.World.Remove(e.Entity())
}

func removeFromSpace(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}
