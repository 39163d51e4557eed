package factory

import (
	"github.com/automoto/putputputty/archetypes"
	"github.com/automoto/putputputty/assets"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCourse builds every entity of courses[index]: the resolv space,
// walls, hole, ball and camera. The interaction core is wired separately
// by systems.SetupInteraction.
func CreateCourse(ecs *ecs.ECS, courses []assets.Course, index int) *donburi.Entry {
	entry := archetypes.Course.Spawn(ecs)
	course := courses[index]

	components.Course.SetValue(entry, components.CourseData{
		Courses: courses,
		Index:   index,
		Current: &course,
	})
	components.Scorecard.SetValue(entry, components.ScorecardData{Par: course.Par})

	CreateSpace(ecs, course)
	for _, w := range course.Walls {
		CreateWall(ecs, w)
	}
	CreateHole(ecs, course.Hole, cfg.Course.HoleRadius)
	CreateBall(ecs, course.Tee)
	CreateCamera(ecs, course.Tee)

	return entry
}
