package scenes

import (
	"sync"

	"github.com/automoto/putputputty/archetypes"
	"github.com/automoto/putputputty/assets"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScorecardScene shows the result of a finished course over its last frame.
type ScorecardScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	courses      []assets.Course
	index        int
	card         components.ScorecardData
	background   Scene
	once         sync.Once
}

// Scene is what ScorecardScene draws underneath itself.
type Scene interface {
	Draw(screen *ebiten.Image)
}

// NewScorecardScene creates the result screen for courses[index].
func NewScorecardScene(sc SceneChanger, courses []assets.Course, index int, card components.ScorecardData, background Scene) *ScorecardScene {
	return &ScorecardScene{
		sceneChanger: sc,
		courses:      courses,
		index:        index,
		card:         card,
		background:   background,
	}
}

func (ss *ScorecardScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *ScorecardScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)
	if ss.background != nil {
		ss.background.Draw(screen)
	}

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *ScorecardScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createNextScene := func() interface{} {
		return NewCourseScene(ss.sceneChanger, ss.courses, (ss.index+1)%len(ss.courses))
	}
	createReplayScene := func() interface{} {
		return NewCourseScene(ss.sceneChanger, ss.courses, ss.index)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ss.sceneChanger, ss.courses)
	}

	// Audio system
	ss.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for the result screen
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateScorecardScreen(ss.sceneChanger, createNextScene, createReplayScene, createMenuScene))

	// Renderer
	ss.ecs.AddRenderer(cfg.Default, systems.DrawScorecard)

	entry := archetypes.Course.Spawn(ss.ecs)
	course := ss.courses[ss.index]
	components.Course.SetValue(entry, components.CourseData{
		Courses: ss.courses,
		Index:   ss.index,
		Current: &course,
	})
	components.Scorecard.SetValue(entry, ss.card)
}
