package main

import (
	"errors"
	"flag"
	"image"
	"os"

	"github.com/automoto/putputputty/assets"
	"github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/fonts"
	"github.com/automoto/putputputty/logger"
	"github.com/automoto/putputputty/scenes"
	"github.com/automoto/putputputty/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(courses []assets.Course) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewCourseScene(g, courses, courseIndex(courses, config.Debug.Course))
	} else {
		g.scene = scenes.NewMenuScene(g, courses)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// courseIndex finds a course by name, falling back to the first one.
func courseIndex(courses []assets.Course, name string) int {
	for i, c := range courses {
		if c.Name == name {
			return i
		}
	}
	if name != "" {
		logger.L().Warn("unknown course, starting the first one", zap.String("course", name))
	}
	return 0
}

// loadCourses reads the embedded courses, falling back to the built-in one
// so the game always has something to play.
func loadCourses() []assets.Course {
	courses, err := assets.LoadEmbeddedCourses()
	if err != nil {
		if errors.Is(err, assets.ErrNoCourses) {
			logger.L().Warn("no courses embedded, using the fallback course")
		} else {
			logger.L().Warn("could not load courses, using the fallback course", zap.Error(err))
		}
		return []assets.Course{assets.FallbackCourse()}
	}
	return courses
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding shot, ball, camera and window settings")
	logLevel := flag.String("log-level", "", "DEBUG, INFO, WARN or ERROR (default from "+logger.EnvLevel+")")
	logConsole := flag.Bool("log-console", true, "human-readable logs instead of JSON")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start a course directly")
	flag.StringVar(&config.Debug.Course, "course", "", "course name to start with -skip-menu")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "start with the debug overlay on")
	flag.Parse()

	level := logger.LevelFromEnv()
	if *logLevel != "" {
		lvl, err := logger.ParseLevel(*logLevel)
		if err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(2)
		}
		level = lvl
	}
	if err := logger.Init(level, *logConsole); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.L()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("running without saved data", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Command line config wins over saved settings
	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatal("bad config", zap.String("path", *configPath), zap.Error(err))
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("could not load fonts", zap.Error(err))
	}

	courses := loadCourses()
	log.Info("starting",
		zap.Int("courses", len(courses)),
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height),
		zap.String("camera", config.Camera.Policy.String()),
	)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(courses)); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
}
