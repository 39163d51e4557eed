package components

import (
	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/interaction"
	"github.com/yohamta/donburi"
)

type BallData struct {
	ID     interaction.BodyID
	Radius float64
	// LastRest is where the ball last came to a stop; out-of-bounds resets
	// return it here.
	LastRest gamemath.Vec3
	Sunk     bool
}

var Ball = donburi.NewComponentType[BallData]()
