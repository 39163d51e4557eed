package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[resolv.Space]()

// SpaceFrameData maps world XZ onto resolv pixels: X runs right, Z runs
// down, Origin is the world point at pixel (0, 0).
type SpaceFrameData struct {
	OriginX float64
	OriginZ float64
	Scale   float64 // pixels per world unit
}

// ToSpace converts a world XZ position to resolv pixels.
func (f SpaceFrameData) ToSpace(x, z float64) (float64, float64) {
	return (x - f.OriginX) * f.Scale, (z - f.OriginZ) * f.Scale
}

// ToWorld converts resolv pixels back to world XZ.
func (f SpaceFrameData) ToWorld(px, py float64) (float64, float64) {
	return px/f.Scale + f.OriginX, py/f.Scale + f.OriginZ
}

var SpaceFrame = donburi.NewComponentType[SpaceFrameData]()
