package sim

import (
	"github.com/automoto/doomerang-hostiles/components"
	"github.com/automoto/doomerang-hostiles/systems"
	"github.com/automoto/doomerang-hostiles/systems/factory"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnPlayer creates the player at x, y in the active space, or moves the
// existing one there.
func (w *World) SpawnPlayer(x, y float64) {
	if w.player != nil && w.player.Valid() {
		w.SetPlayerPosition(dmath.NewVec2(x, y))
		return
	}
	w.player = factory.CreatePlayer(w.ecs, w.env.Space, x, y)
}

// HasPlayer reports whether a player exists.
func (w *World) HasPlayer() bool {
	return w.player != nil && w.player.Valid()
}

// PlayerPosition returns the player's position.
func (w *World) PlayerPosition() dmath.Vec2 {
	if !w.HasPlayer() {
		return dmath.Vec2{}
	}
	return components.Object.Get(w.player).Position()
}

// SetPlayerPosition teleports the player.
func (w *World) SetPlayerPosition(p dmath.Vec2) {
	if !w.HasPlayer() {
		return
	}
	components.Object.Get(w.player).SetPosition(p)
}

// SetPlayerFacing turns the player left (-1) or right (+1).
func (w *World) SetPlayerFacing(facing float64) {
	if !w.HasPlayer() {
		return
	}
	components.Player.Get(w.player).Facing = facing
}

// SetPlayerVelocity sets the player's velocity unless a knockback stun is
// in control.
func (w *World) SetPlayerVelocity(v dmath.Vec2) {
	if !w.HasPlayer() || components.Player.Get(w.player).KnockedBack {
		return
	}
	components.Physics.Get(w.player).Velocity = v
}

// PlayerHealth returns the player's current and maximum hit points.
func (w *World) PlayerHealth() (current, max int) {
	if !w.HasPlayer() {
		return 0, 0
	}
	h := components.Health.Get(w.player)
	return h.Current, h.Max
}

// PlayerKnockedBack reports whether the player is stunned.
func (w *World) PlayerKnockedBack() bool {
	return w.HasPlayer() && components.Player.Get(w.player).KnockedBack
}

// PlayerAttack swings the player's weapon. Returns the number of enemies hit.
func (w *World) PlayerAttack() int {
	if !w.HasPlayer() {
		return 0
	}
	return systems.ResolvePlayerAttack(w.env, w.player)
}

// PlayerFacing returns -1 for left and +1 for right.
func (w *World) PlayerFacing() float64 {
	if !w.HasPlayer() {
		return 0
	}
	return components.Player.Get(w.player).Facing
}
