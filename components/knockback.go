package components

import (
	"github.com/automoto/doomerang-hostiles/timer"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// KnockbackData is attached while an entity is inside a stun window.
type KnockbackData struct {
	Direction dmath.Vec2   // unit vector away from the source
	Decay     *gween.Tween // speed from force to 0; nil keeps the impulse constant
	StunTimer *timer.Handle
}

var Knockback = donburi.NewComponentType[KnockbackData]()
