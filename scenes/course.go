package scenes

import (
	"sync"

	"github.com/automoto/putputputty/assets"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/logger"
	"github.com/automoto/putputputty/systems"
	"github.com/automoto/putputputty/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CourseScene plays one course.
type CourseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	courses      []assets.Course
	index        int
	once         sync.Once
}

// NewCourseScene creates a scene playing courses[index]
func NewCourseScene(sc SceneChanger, courses []assets.Course, index int) *CourseScene {
	if len(courses) == 0 {
		courses = []assets.Course{assets.FallbackCourse()}
	}
	if index < 0 || index >= len(courses) {
		index = 0
	}
	return &CourseScene{sceneChanger: sc, courses: courses, index: index}
}

func (cs *CourseScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if choice, ok := systems.TakePauseChoice(cs.ecs); ok {
		switch choice {
		case components.MenuRestart:
			cs.sceneChanger.ChangeScene(NewCourseScene(cs.sceneChanger, cs.courses, cs.index))
		case components.MenuMainMenu:
			cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger, cs.courses))
		}
		return
	}

	if systems.NextCourseRequested(cs.ecs) {
		cs.sceneChanger.ChangeScene(NewCourseScene(cs.sceneChanger, cs.courses, (cs.index+1)%len(cs.courses)))
		return
	}

	if systems.UpdateScorecard(cs.ecs) {
		card := *systems.GetScorecard(cs.ecs)
		cs.sceneChanger.ChangeScene(NewScorecardScene(cs.sceneChanger, cs.courses, cs.index, card, cs))
	}
}

func (cs *CourseScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CourseScene) configure() {
	// Synthesize sounds up front so the first putt does not stall
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with pause and hole complete checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCourseKeys))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHole))

	// The aim core cancels drags itself while paused
	ecs.AddSystem(systems.UpdateInteraction)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateIndicator)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawCourse)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	cs.ecs = ecs

	courseEntry := factory.CreateCourse(cs.ecs, cs.courses, cs.index)
	systems.SetupInteraction(cs.ecs)

	course := components.Course.Get(courseEntry).Current
	card := components.Scorecard.Get(courseEntry)
	card.Best = systems.BestStrokes(course.Name)

	logger.L().Info("course started",
		zap.String("course", course.Name),
		zap.Int("index", cs.index),
		zap.Int("par", course.Par),
		zap.Int("walls", len(course.Walls)),
		zap.String("camera", cfg.Camera.Policy.String()),
	)
}
