package interaction

import (
	"math"

	"github.com/automoto/putputputty/gamemath"
)

// CameraPolicy selects how the chase camera orients itself.
type CameraPolicy int

const (
	// PolicyLookAt aims the camera at the ball every frame.
	PolicyLookAt CameraPolicy = iota
	// PolicyFixedPitch keeps a constant downward pitch and only translates.
	PolicyFixedPitch
)

func (p CameraPolicy) String() string {
	if p == PolicyFixedPitch {
		return "fixed-pitch"
	}
	return "look-at"
}

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position gamemath.Vec3
	LookAt   gamemath.Vec3
}

// ChaseCamera follows the ball at a fixed offset. Update is a pure function
// of the target so repeated calls never drift.
type ChaseCamera struct {
	Policy CameraPolicy
	Offset gamemath.Vec3
	Pitch  float64 // radians below the horizon, PolicyFixedPitch only
}

func (c ChaseCamera) Update(target gamemath.Vec3) Pose {
	pos := target.Add(c.Offset)
	if c.Policy != PolicyFixedPitch {
		return Pose{Position: pos, LookAt: target}
	}

	// Face back along the horizontal part of the offset.
	heading := gamemath.V3(-c.Offset.X, 0, -c.Offset.Z).Normalize()
	if heading == (gamemath.Vec3{}) {
		heading = gamemath.V3(0, 0, -1)
	}
	dir := heading.Scale(math.Cos(c.Pitch)).Add(gamemath.V3(0, -math.Sin(c.Pitch), 0))

	dist := c.Offset.Length()
	if dist == 0 {
		dist = 1
	}
	return Pose{Position: pos, LookAt: pos.Add(dir.Scale(dist))}
}
