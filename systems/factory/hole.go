package factory

import (
	"github.com/automoto/putputputty/archetypes"
	"github.com/automoto/putputputty/components"
	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateHole(ecs *ecs.ECS, pos gamemath.Vec3, radius float64) *donburi.Entry {
	hole := archetypes.Hole.Spawn(ecs)

	frame := spaceFrame(ecs)
	cx, cy := frame.ToSpace(pos.X, pos.Z)
	r := radius * frame.Scale

	obj := resolv.NewObject(cx-r, cy-r, 2*r, 2*r, tags.ResolvHole)
	obj.SetShape(resolv.NewCircle(r, r, r))
	obj.Data = hole

	components.Object.SetValue(hole, components.ObjectData{Object: obj})
	components.Hole.SetValue(hole, components.HoleData{Position: pos, Radius: radius})
	addToSpace(ecs, obj)

	return hole
}
