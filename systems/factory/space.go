package factory

import (
	"math"

	"github.com/automoto/putputputty/archetypes"
	"github.com/automoto/putputputty/assets"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMargin is how far past the green, in world units, the resolv space
// extends so a ball leaving the course is still tracked.
const spaceMargin = 6

func CreateSpace(ecs *ecs.ECS, course assets.Course) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	scale := cfg.Physics.SpaceScale
	frame := components.SpaceFrameData{
		OriginX: -course.Width/2 - spaceMargin,
		OriginZ: -course.Depth/2 - spaceMargin,
		Scale:   scale,
	}
	width := int(math.Ceil((course.Width + 2*spaceMargin) * scale))
	height := int(math.Ceil((course.Depth + 2*spaceMargin) * scale))

	cell := cfg.Physics.CellSize
	components.Space.Set(space, resolv.NewSpace(width, height, cell, cell))
	components.SpaceFrame.SetValue(space, frame)
	return space
}

// addToSpace places obj in the course's resolv space if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func spaceFrame(ecs *ecs.ECS) components.SpaceFrameData {
	if spaceEntry, ok := components.SpaceFrame.First(ecs.World); ok {
		return *components.SpaceFrame.Get(spaceEntry)
	}
	return components.SpaceFrameData{Scale: cfg.Physics.SpaceScale}
}
