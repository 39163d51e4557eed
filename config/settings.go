package config

import "math"

// SaveConfig contains persistence keys and the settings choices offered
type SaveConfig struct {
	AppName     string
	SettingsKey string
	BestKey     string
	VolumeSteps []float64
}

var Save SaveConfig

func init() {
	Save = SaveConfig{
		AppName:     "putputputty",
		SettingsKey: "settings",
		BestKey:     "best_strokes",
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}

// NextVolumeStep returns the step after the one closest to v, wrapping
// around. With no steps v is returned unchanged.
func NextVolumeStep(v float64, steps []float64) float64 {
	if len(steps) == 0 {
		return v
	}
	closest := 0
	for i, s := range steps {
		if math.Abs(s-v) < math.Abs(steps[closest]-v) {
			closest = i
		}
	}
	return steps[(closest+1)%len(steps)]
}
