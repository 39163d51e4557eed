package systems

import (
	"math"

	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pulseAmount is how much the ring grows at the top of a pulse.
const pulseAmount = 0.12

// startIndicatorFade eases the ring in when a grab starts and out when it
// ends. The pulse only runs while grabbing.
func startIndicatorFade(ind *components.IndicatorData, grabbing bool) {
	ind.Grabbing = grabbing
	if grabbing {
		ind.Fade = gween.New(ind.Alpha, 1, cfg.Indicator.FadeInFrames, ease.OutQuad)
		ind.Pulse = gween.New(0, 1, cfg.Indicator.PulseFrames, ease.Linear)
		return
	}
	ind.Fade = gween.New(ind.Alpha, 0, cfg.Indicator.FadeOutFrames, ease.InQuad)
	ind.Pulse = nil
}

// UpdateIndicator advances the grab ring tweens by one frame.
func UpdateIndicator(ecs *ecs.ECS) {
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ind := components.Indicator.Get(e)

		if ind.Fade != nil {
			alpha, finished := ind.Fade.Update(1)
			ind.Alpha = alpha
			if finished {
				ind.Fade = nil
			}
		}

		ind.Scale = 1
		if ind.Pulse != nil {
			t, finished := ind.Pulse.Update(1)
			ind.Scale = 1 + pulseAmount*float32(math.Sin(math.Pi*float64(t)))
			if finished {
				ind.Pulse.Reset()
			}
		}
	})
}
