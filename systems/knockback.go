package systems

import (
	"github.com/automoto/doomerang-hostiles/components"
	cfg "github.com/automoto/doomerang-hostiles/config"
	"github.com/automoto/doomerang-hostiles/timer"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// TriggerKnockback pushes e away from source at force units per second and
// stuns it for stunDuration seconds. Enemies are forced into the Knockback
// state and return to Idle when the stun expires; players lose control for
// the same window. When knockbackDuration is positive the push eases out to
// a stop over that time. A new knockback replaces a pending one.
func TriggerKnockback(env *Env, e *donburi.Entry, source dmath.Vec2, force, knockbackDuration, stunDuration float64) {
	if !e.Valid() || IsDead(e) {
		return
	}

	pos := components.Object.Get(e).Position()
	dir := knockbackDirection(e, pos, source)

	cancelKnockback(e)

	kb := &components.KnockbackData{Direction: dir}
	if knockbackDuration > 0 {
		kb.Decay = gween.New(float32(force), 0, float32(knockbackDuration), ease.OutQuad)
	}
	components.Physics.Get(e).Velocity = dir.MulScalar(force)

	if e.HasComponent(components.State) {
		changeState(e, cfg.Knockback)
	}
	if e.HasComponent(components.Player) {
		components.Player.Get(e).KnockedBack = true
	}

	w := e.World
	entity := e.Entity()
	kb.StunTimer = env.Timers.ScheduleOnce(timer.Seconds(stunDuration), func() {
		if !w.Valid(entity) {
			return
		}
		endKnockback(w.Entry(entity))
	})

	donburi.Add(e, components.Knockback, kb)
}

// knockbackDirection points from source to pos. When the two coincide the
// entity is pushed backwards relative to its facing.
func knockbackDirection(e *donburi.Entry, pos, source dmath.Vec2) dmath.Vec2 {
	diff := pos.Sub(source)
	if diff.Magnitude() > 0 {
		return diff.Normalized()
	}

	facing := cfg.DirectionRight
	if e.HasComponent(components.Enemy) {
		facing = components.Enemy.Get(e).Facing
	} else if e.HasComponent(components.Player) {
		facing = components.Player.Get(e).Facing
	}
	if facing == 0 {
		facing = cfg.DirectionRight
	}
	return dmath.NewVec2(-facing, 0)
}

func endKnockback(e *donburi.Entry) {
	if !e.HasComponent(components.Knockback) {
		return
	}
	donburi.Remove[components.KnockbackData](e, components.Knockback)
	components.Physics.Get(e).Velocity = dmath.NewVec2(0, 0)

	if e.HasComponent(components.Player) {
		components.Player.Get(e).KnockedBack = false
	}
	if e.HasComponent(components.State) && !IsDead(e) {
		changeState(e, cfg.Idle)
	}
}

// StopKnockback ends a stun early as if it had expired: the pending expiry
// is dropped, velocity is zeroed and control is released.
func StopKnockback(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Knockback) {
		return
	}
	components.Knockback.Get(e).StunTimer.Cancel()
	endKnockback(e)
}

// cancelKnockback drops a pending stun without running its expiry.
func cancelKnockback(e *donburi.Entry) {
	if !e.HasComponent(components.Knockback) {
		return
	}
	components.Knockback.Get(e).StunTimer.Cancel()
	donburi.Remove[components.KnockbackData](e, components.Knockback)
	if e.HasComponent(components.Player) {
		components.Player.Get(e).KnockedBack = false
	}
}

// UpdateKnockback eases knockback impulses toward zero.
func UpdateKnockback(ecs *ecs.ECS, dt float64) {
	components.Knockback.Each(ecs.World, func(e *donburi.Entry) {
		kb := components.Knockback.Get(e)
		if kb.Decay == nil {
			return
		}
		speed, done := kb.Decay.Update(float32(dt))
		if done {
			speed = 0
			kb.Decay = nil
		}
		components.Physics.Get(e).Velocity = kb.Direction.MulScalar(float64(speed))
	})
}

// IsKnockedBack reports whether e is inside a stun window.
func IsKnockedBack(e *donburi.Entry) bool {
	return e.Valid() && e.HasComponent(components.Knockback)
}
