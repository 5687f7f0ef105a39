package systems

import (
	"math"

	"github.com/automoto/doomerang-hostiles/components"
	"github.com/automoto/doomerang-hostiles/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates velocities into collision objects. Dead enemies
// and enemies with movement switched off stay where they are. Solid walls stop
// movement flush against their edge.
func UpdateMovement(ecs *ecs.ECS, env *Env, dt float64) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		if e.HasComponent(components.Presence) && !components.Presence.Get(e).Movement {
			return
		}

		physics := components.Physics.Get(e)
		if physics.Velocity.X == 0 && physics.Velocity.Y == 0 {
			return
		}

		obj := components.Object.Get(e)
		delta := physics.Velocity.MulScalar(dt)

		// Horizontal first, then vertical from the new x
		next := obj.Position()
		next.X += blockedDelta(obj.Object, delta.X, true)
		if env.Bounds.X > 0 {
			next.X = clamp(next.X, 0, env.Bounds.X-obj.W)
		}
		obj.SetPosition(next)

		next.Y += blockedDelta(obj.Object, delta.Y, false)
		if env.Bounds.Y > 0 {
			next.Y = clamp(next.Y, 0, env.Bounds.Y-obj.H)
		}
		obj.SetPosition(next)
	})
}

// blockedDelta shortens a single-axis move so object stops at the first
// solid in its way.
func blockedDelta(object *resolv.Object, move float64, horizontal bool) float64 {
	if move == 0 || object.Space == nil {
		return move
	}

	dx, dy := move, 0.0
	if !horizontal {
		dx, dy = 0, move
	}
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return move
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsAcross(object, solid, horizontal) {
			continue
		}
		contact := check.ContactWithObject(solid)
		if horizontal {
			move = nearer(move, contact.X())
		} else {
			move = nearer(move, contact.Y())
		}
	}
	return move
}

// overlapsAcross reports whether solid shares any extent with object on the
// axis perpendicular to the movement.
func overlapsAcross(object, solid *resolv.Object, horizontal bool) bool {
	if horizontal {
		return object.Y < solid.Y+solid.H && solid.Y < object.Y+object.H
	}
	return object.X < solid.X+solid.W && solid.X < object.X+object.W
}

// nearer keeps whichever of move and contact travels less in move's direction.
// A contact pointing backwards means the solid is already behind the object.
func nearer(move, contact float64) float64 {
	if move > 0 && contact >= 0 {
		return math.Min(move, contact)
	}
	if move < 0 && contact <= 0 {
		return math.Max(move, contact)
	}
	return move
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
