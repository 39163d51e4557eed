package systems

import (
	"sync"

	"github.com/automoto/putputputty/assets"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalToneBank     *assets.ToneBank
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalToneBank = assets.NewToneBank(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes every tone at startup so the first putt does
// not stall.
func PreloadAllSFX() {
	initGlobalAudio()
	globalToneBank.Preload()
}

// UpdateAudio plays the sounds queued since the last frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, req := range audioData.PendingSFX {
		playSFX(req)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(req components.SFXRequest) {
	if globalSFXVolume <= 0 || req.Volume <= 0 {
		return
	}

	pcm := globalToneBank.Bytes(req.Sound)
	if len(pcm) == 0 {
		return
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)

	volume := globalSFXVolume * req.Volume
	if mult, ok := cfg.Sound.VolumeMultipliers[req.Sound]; ok {
		volume *= mult
	}
	if volume > 1 {
		volume = 1
	}

	player.SetVolume(volume)
	player.Play()
	logger.L().Debug("sfx", zap.Int("sound", int(req.Sound)), zap.Float64("volume", volume))
}

// PlaySFX queues a sound effect at full volume
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	PlaySFXScaled(e, sound, 1)
}

// PlaySFXScaled queues a sound effect. Sounds marked ScaleByPower take
// scale as their volume, with a floor so soft taps stay audible.
func PlaySFXScaled(e *ecs.ECS, sound cfg.SoundID, scale float64) {
	volume := 1.0
	if cfg.Sound.ScaleByPower[sound] {
		volume = 0.2 + 0.8*clamp01(scale)
	}
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SFXRequest{Sound: sound, Volume: volume})
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = clamp01(volume)
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]components.SFXRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
