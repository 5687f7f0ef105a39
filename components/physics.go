package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PhysicsData holds the desired velocity in world units per second. The
// movement system integrates it into the collision object.
type PhysicsData struct {
	Velocity dmath.Vec2
}

var Physics = donburi.NewComponentType[PhysicsData]()
