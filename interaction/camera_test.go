package interaction

import (
	"math"
	"testing"

	"github.com/automoto/putputputty/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestChaseCameraLookAt(t *testing.T) {
	cam := ChaseCamera{Policy: PolicyLookAt, Offset: gamemath.V3(0, 18, 12)}

	tests := []struct {
		name   string
		target gamemath.Vec3
		want   Pose
	}{
		{"origin", gamemath.V3(0, 0, 0), Pose{Position: gamemath.V3(0, 18, 12), LookAt: gamemath.V3(0, 0, 0)}},
		{"ball at rest", gamemath.V3(0, 1, 0), Pose{Position: gamemath.V3(0, 19, 12), LookAt: gamemath.V3(0, 1, 0)}},
		{"moved ball", gamemath.V3(-3, 1, 4.5), Pose{Position: gamemath.V3(-3, 19, 16.5), LookAt: gamemath.V3(-3, 1, 4.5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cam.Update(tt.target))
		})
	}
}

func TestChaseCameraIdempotent(t *testing.T) {
	for _, policy := range []CameraPolicy{PolicyLookAt, PolicyFixedPitch} {
		t.Run(policy.String(), func(t *testing.T) {
			cam := ChaseCamera{Policy: policy, Offset: gamemath.V3(0, 18, 12), Pitch: 55 * math.Pi / 180}
			target := gamemath.V3(1.25, 1, -2)

			first := cam.Update(target)
			for i := 0; i < 100; i++ {
				cam.Update(gamemath.V3(float64(i), 1, 0))
			}
			assert.Equal(t, first, cam.Update(target))
		})
	}
}

func TestChaseCameraFixedPitch(t *testing.T) {
	pitch := 55 * math.Pi / 180
	cam := ChaseCamera{Policy: PolicyFixedPitch, Offset: gamemath.V3(0, 18, 12), Pitch: pitch}

	a := cam.Update(gamemath.V3(0, 1, 0))
	b := cam.Update(gamemath.V3(5, 1, -5))

	assert.Equal(t, gamemath.V3(0, 19, 12), a.Position)

	dirA := a.LookAt.Sub(a.Position).Normalize()
	dirB := b.LookAt.Sub(b.Position).Normalize()
	assert.True(t, dirA.ApproxEqual(dirB, 1e-12), "orientation does not depend on the target")
	assert.InDelta(t, -math.Sin(pitch), dirA.Y, 1e-12)
	assert.InDelta(t, -math.Cos(pitch), dirA.Z, 1e-12, "faces back toward -Z")
	assert.InDelta(t, 0, dirA.X, 1e-12)
}

func TestChaseCameraFixedPitchStraightAbove(t *testing.T) {
	cam := ChaseCamera{Policy: PolicyFixedPitch, Offset: gamemath.V3(0, 10, 0), Pitch: math.Pi / 2}
	pose := cam.Update(gamemath.Vec3{})
	assert.True(t, pose.LookAt.ApproxEqual(gamemath.Vec3{}, 1e-9))
}
