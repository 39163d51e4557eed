package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a body's footprint on the resolv space, which maps the XZ
// play surface to pixels. Bottom and Top give the vertical extent in world
// units so the renderer can extrude it.
type ObjectData struct {
	*resolv.Object
	Bottom float64
	Top    float64
}

var Object = donburi.NewComponentType[ObjectData]()
