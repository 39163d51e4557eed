package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPutt
	SoundWallHit
	SoundCup
	SoundPenalty
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesized sound: a sine sweep from StartHz to EndHz
// with an exponential decay envelope.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Decay    float64 // envelope decay rate per second
	Noise    float64 // 0..1 mix of white noise for clicks
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
	// ScaleByPower marks sounds whose volume follows the shot strength.
	ScaleByPower map[SoundID]bool
}

var Audio AudioConfig
var Sound SoundConfig

func resetAudio() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundPutt:         {StartHz: 900, EndHz: 300, Duration: 0.09, Decay: 40, Noise: 0.35},
			SoundWallHit:      {StartHz: 220, EndHz: 140, Duration: 0.12, Decay: 30, Noise: 0.5},
			SoundCup:          {StartHz: 660, EndHz: 990, Duration: 0.45, Decay: 6},
			SoundPenalty:      {StartHz: 300, EndHz: 150, Duration: 0.35, Decay: 8},
			SoundMenuNavigate: {StartHz: 520, EndHz: 520, Duration: 0.05, Decay: 50},
			SoundMenuSelect:   {StartHz: 660, EndHz: 880, Duration: 0.1, Decay: 25},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundWallHit: 0.6,
			SoundCup:     0.8,
		},
		ScaleByPower: map[SoundID]bool{
			SoundPutt:    true,
			SoundWallHit: true,
		},
	}
}
