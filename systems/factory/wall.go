package factory

import (
	"github.com/automoto/doomerang-hostiles/archetypes"
	"github.com/automoto/doomerang-hostiles/components"
	"github.com/automoto/doomerang-hostiles/spatial"
	"github.com/automoto/doomerang-hostiles/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, space *spatial.Space, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if space != nil {
		space.Add(obj)
	}

	return wall
}
