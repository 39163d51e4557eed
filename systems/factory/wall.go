package factory

import (
	"github.com/automoto/putputputty/archetypes"
	"github.com/automoto/putputputty/assets"
	"github.com/automoto/putputputty/components"
	"github.com/automoto/putputputty/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, box assets.Box) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	frame := spaceFrame(ecs)
	x, y := frame.ToSpace(box.Min.X, box.Min.Z)
	size := box.Size()
	w, h := size.X*frame.Scale, size.Z*frame.Scale

	resolvTags := []string{tags.ResolvSolid}
	if box.Restitution > 0 {
		resolvTags = append(resolvTags, tags.ResolvBumper)
	}

	// Create collision object
	obj := resolv.NewObject(x, y, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj, Bottom: box.Min.Y, Top: box.Max.Y})
	components.Wall.SetValue(wall, components.WallData{Box: box})
	addToSpace(ecs, obj)

	return wall
}
