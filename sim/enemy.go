package sim

import (
	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/systems"
	"github.com/automoto/doomerang-hostiles/systems/factory"
	"github.com/automoto/doomerang-hostiles/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Enemy is a handle to one enemy entity. Every method is safe to call after
// the entity is gone: actions become no-ops and observers return zero values.
type Enemy struct {
	w      *World
	entity donburi.Entity
}

// SpawnEnemy places an enemy in the active space.
func (w *World) SpawnEnemy(spawn factory.EnemySpawn) (*Enemy, error) {
	e, err := factory.CreateEnemy(w.ecs, w.env.Space, w.env.Ledger, spawn)
	if err != nil {
		return nil, err
	}
	return &Enemy{w: w, entity: e.Entity()}, nil
}

// Enemies returns handles for every enemy in the world, dead ones included.
func (w *World) Enemies() []*Enemy {
	var out []*Enemy
	tags.Enemy.Each(w.ecs.World, func(e *donburi.Entry) {
		out = append(out, &Enemy{w: w, entity: e.Entity()})
	})
	return out
}

// EnemyByID finds an enemy by its stable id.
func (w *World) EnemyByID(id string) (*Enemy, bool) {
	for _, e := range w.Enemies() {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

func (e *Enemy) entry() (*donburi.Entry, bool) {
	if !e.w.ecs.World.Valid(e.entity) {
		return nil, false
	}
	return e.w.ecs.World.Entry(e.entity), true
}

// Entity returns the underlying entity.
func (e *Enemy) Entity() donburi.Entity {
	return e.entity
}

// Valid reports whether the enemy still exists. Bosses stop existing when
// they die; regular enemies persist through death.
func (e *Enemy) Valid() bool {
	_, ok := e.entry()
	return ok
}

// ApplyDamage adds amount to health; negative values hurt.
func (e *Enemy) ApplyDamage(amount int) {
	if entry, ok := e.entry(); ok {
		systems.ApplyDamage(e.w.env, entry, amount)
	}
}

// Die kills the enemy outright.
func (e *Enemy) Die() {
	if entry, ok := e.entry(); ok {
		systems.Die(e.w.env, entry)
	}
}

// Knockback pushes the enemy away from source and stuns it.
func (e *Enemy) Knockback(source dmath.Vec2, force, knockbackDuration, stunDuration float64) {
	if entry, ok := e.entry(); ok {
		systems.TriggerKnockback(e.w.env, entry, source, force, knockbackDuration, stunDuration)
	}
}

// FinishAttack signals the end of the attack swing. Returns true if the
// player was hit.
func (e *Enemy) FinishAttack() bool {
	entry, ok := e.entry()
	if !ok {
		return false
	}
	return systems.FinishAttack(e.w.env, entry)
}

func (e *Enemy) CurrentState() cfg.StateID {
	entry, ok := e.entry()
	if !ok {
		return cfg.StateNone
	}
	return systems.CurrentState(entry)
}

func (e *Enemy) IsDead() bool {
	entry, ok := e.entry()
	if !ok {
		return true
	}
	return systems.IsDead(entry)
}

func (e *Enemy) IsKnockedBack() bool {
	entry, ok := e.entry()
	return ok && systems.IsKnockedBack(entry)
}

// Health returns current and maximum hit points.
func (e *Enemy) Health() (current, max int) {
	entry, ok := e.entry()
	if !ok {
		return 0, 0
	}
	h := components.Health.Get(entry)
	return h.Current, h.Max
}

func (e *Enemy) Position() dmath.Vec2 {
	entry, ok := e.entry()
	if !ok {
		return dmath.Vec2{}
	}
	return components.Object.Get(entry).Position()
}

// SpawnPosition returns where the enemy was created and respawns.
func (e *Enemy) SpawnPosition() dmath.Vec2 {
	entry, ok := e.entry()
	if !ok {
		return dmath.Vec2{}
	}
	return components.Enemy.Get(entry).SpawnPosition
}

func (e *Enemy) Velocity() dmath.Vec2 {
	entry, ok := e.entry()
	if !ok {
		return dmath.Vec2{}
	}
	return components.Physics.Get(entry).Velocity
}

func (e *Enemy) Facing() float64 {
	entry, ok := e.entry()
	if !ok {
		return 0
	}
	return components.Enemy.Get(entry).Facing
}

// AttackCooldown returns the seconds left before the next attack may start.
func (e *Enemy) AttackCooldown() float64 {
	entry, ok := e.entry()
	if !ok {
		return 0
	}
	return components.Enemy.Get(entry).AttackCooldown
}

func (e *Enemy) ID() string {
	entry, ok := e.entry()
	if !ok {
		return ""
	}
	return components.Enemy.Get(entry).ID
}

// Presence returns the movement, combat, collision and visibility switches.
func (e *Enemy) Presence() components.PresenceData {
	entry, ok := e.entry()
	if !ok {
		return components.PresenceData{}
	}
	return *components.Presence.Get(entry)
}

func (e *Enemy) TypeName() string {
	entry, ok := e.entry()
	if !ok {
		return ""
	}
	return components.Enemy.Get(entry).TypeName
}

// IsBoss reports whether the enemy takes the permanent-defeat path.
func (e *Enemy) IsBoss() bool {
	entry, ok := e.entry()
	if !ok {
		return false
	}
	return components.Enemy.Get(entry).Boss
}
