package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Position returns the object's position as a vector.
func (o *ObjectData) Position() dmath.Vec2 {
	return dmath.NewVec2(o.X, o.Y)
}

// SetPosition moves the object and refreshes its space cells.
func (o *ObjectData) SetPosition(p dmath.Vec2) {
	o.X = p.X
	o.Y = p.Y
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()
