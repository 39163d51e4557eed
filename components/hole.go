package components

import (
	"github.com/automoto/putputputty/gamemath"
	"github.com/yohamta/donburi"
)

type HoleData struct {
	Position gamemath.Vec3
	Radius   float64
}

var Hole = donburi.NewComponentType[HoleData]()
