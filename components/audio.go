package components

import (
	cfg "github.com/automoto/putputputty/config"
	"github.com/yohamta/donburi"
)

// SFXRequest is a queued sound with a per-play volume scale.
type SFXRequest struct {
	Sound  cfg.SoundID
	Volume float64
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []SFXRequest
}

var Audio = donburi.NewComponentType[AudioData]()
