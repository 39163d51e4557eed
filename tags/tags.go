package tags

import "github.com/yohamta/donburi"

var (
	Ball   = donburi.NewTag().SetName("Ball")
	Wall   = donburi.NewTag().SetName("Wall")
	Hole   = donburi.NewTag().SetName("Hole")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvBall  = "Ball"
	ResolvHole  = "hole"
	// ResolvBumper marks walls with their own restitution.
	ResolvBumper = "bumper"
)
