package archetypes

import (
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
		components.Physics,
		components.Indicator,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Wall,
		components.Object,
	)
	Hole = newArchetype(
		tags.Hole,
		components.Hole,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
		components.SpaceFrame,
	)
	Course = newArchetype(
		components.Course,
		components.Scorecard,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Interaction = newArchetype(
		components.Interaction,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
