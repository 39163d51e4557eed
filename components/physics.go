package components

import (
	"github.com/automoto/putputputty/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Position    gamemath.Vec3
	Velocity    gamemath.Vec3
	Damping     float64 // fraction of speed lost per second
	Restitution float64 // wall bounce
	Grounded    bool
	Resting     bool
	// Impact is the speed of the strongest wall hit this frame, 0 if none.
	Impact float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
