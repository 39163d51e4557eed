package scenes

import (
	"os"
	"sync"

	"github.com/automoto/putputputty/assets"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/systems"
	"github.com/automoto/putputputty/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the course list using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	courses      []assets.Course
	menuUI       *ui.CourseSelectUI
	once         sync.Once
	selected     int
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, courses []assets.Course) *MenuScene {
	return &MenuScene{sceneChanger: sc, courses: courses}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// Update ECS for input and audio
	ms.ecs.Update()
	ms.menuUI.Update()

	if systems.MenuSelectPressed(ms.ecs) {
		ms.start(0)
	}

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewCourseScene(ms.sceneChanger, ms.courses, ms.selected))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) start(index int) {
	if ms.shouldStart {
		return
	}
	systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
	ms.selected = index
	ms.shouldStart = true
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)

	ms.menuUI = ui.NewCourseSelectUI(ms.courses, ms.start, func() {
		systems.SaveCurrentSettings()
		os.Exit(0)
	})
	ms.menuUI.Best = systems.BestStrokes
	ms.menuUI.Volume = systems.GetSFXVolume
	ms.menuUI.SetVolume = func(v float64) {
		systems.SetSFXVolume(v)
		systems.PlaySFX(ms.ecs, cfg.SoundMenuNavigate)
	}
	ms.menuUI.OnSettings = systems.SaveCurrentSettings

	if len(ms.courses) == 1 && ms.courses[0].Name == assets.FallbackCourse().Name {
		ms.menuUI.SetStatus("No course files found, playing the built-in course")
	}
}
