package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/automoto/putputputty/config"
)

// Synthesize renders a tone as 16-bit little-endian stereo PCM, the format
// ebiten's audio players expect.
func Synthesize(t config.Tone, sampleRate int, seed int64) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		at := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		s := math.Sin(phase)*(1-t.Noise) + (rng.Float64()*2-1)*t.Noise
		env := math.Exp(-t.Decay * at)
		// Short linear release avoids a click at the end.
		if tail := 1 - progress; tail < 0.05 {
			env *= tail / 0.05
		}

		v := int16(clamp(s*env, -1, 1) * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ToneBank caches synthesized sound effects by ID.
type ToneBank struct {
	sampleRate int
	cache      map[config.SoundID][]byte
}

// NewToneBank creates a bank rendering at sampleRate.
func NewToneBank(sampleRate int) *ToneBank {
	return &ToneBank{
		sampleRate: sampleRate,
		cache:      make(map[config.SoundID][]byte),
	}
}

// Preload renders every configured tone so the first play has no delay.
func (b *ToneBank) Preload() {
	for id := range config.Sound.Tones {
		b.Bytes(id)
	}
}

// Bytes returns the PCM for id, or nil for sounds without a tone.
func (b *ToneBank) Bytes(id config.SoundID) []byte {
	if pcm, ok := b.cache[id]; ok {
		return pcm
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return nil
	}
	pcm := Synthesize(tone, b.sampleRate, int64(id))
	b.cache[id] = pcm
	return pcm
}
