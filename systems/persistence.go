package systems

import (
	"encoding/json"

	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Fullscreen bool    `json:"fullscreen"`
	Camera     string  `json:"camera,omitempty"`
}

var gdataManager *gdata.Manager

// bestStrokes caches the best totals per course name.
var bestStrokes map[string]int

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Save.AppName,
	})
	if err != nil {
		logger.L().Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. nil with no error means nothing
// has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Save.SettingsKey)
	if err != nil {
		logger.L().Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.L().Warn("could not parse saved settings", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(cfg.Save.SettingsKey, data); err != nil {
		logger.L().Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// SaveCurrentSettings writes the live volume and window mode.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:  globalSFXVolume,
		Fullscreen: ebiten.IsFullscreen(),
		Camera:     cfg.Camera.Policy.String(),
	})
}

// ApplySavedSettingsGlobal applies settings during startup before any scene
// exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetSFXVolume(saved.SFXVolume)
	ebiten.SetFullscreen(saved.Fullscreen)

	if saved.Camera != "" {
		policy, err := cfg.ParseCameraPolicy(saved.Camera)
		if err != nil {
			logger.L().Warn("ignoring saved camera policy", zap.String("camera", saved.Camera), zap.Error(err))
			return
		}
		cfg.Camera.Policy = policy
	}
}

// loadBestStrokes reads the best totals once and caches them.
func loadBestStrokes() map[string]int {
	if bestStrokes != nil {
		return bestStrokes
	}
	bestStrokes = map[string]int{}
	if gdataManager == nil {
		return bestStrokes
	}

	data, err := gdataManager.LoadItem(cfg.Save.BestKey)
	if err != nil {
		logger.L().Warn("could not load best scores", zap.Error(err))
		return bestStrokes
	}
	if len(data) == 0 {
		return bestStrokes
	}
	if err := json.Unmarshal(data, &bestStrokes); err != nil {
		logger.L().Warn("could not parse best scores", zap.Error(err))
		bestStrokes = map[string]int{}
	}
	return bestStrokes
}

// BestStrokes returns the best total for course, 0 if it was never finished.
func BestStrokes(course string) int {
	return loadBestStrokes()[course]
}

// RecordStrokes stores total for course if it beats the saved best and
// reports whether it did.
func RecordStrokes(course string, total int) bool {
	best := loadBestStrokes()
	if prev, ok := best[course]; ok && prev <= total {
		return false
	}
	best[course] = total

	if gdataManager == nil {
		return true
	}
	data, err := json.Marshal(best)
	if err != nil {
		return true
	}
	if err := gdataManager.SaveItem(cfg.Save.BestKey, data); err != nil {
		logger.L().Warn("could not save best scores", zap.Error(err))
	}
	return true
}
