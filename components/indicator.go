package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// IndicatorData drives the grab ring around the ball. Fade eases Alpha
// toward the grab state; Pulse loops while grabbing.
type IndicatorData struct {
	Grabbing bool
	Alpha    float32
	Scale    float32
	Fade     *gween.Tween
	Pulse    *gween.Tween
}

var Indicator = donburi.NewComponentType[IndicatorData]()
