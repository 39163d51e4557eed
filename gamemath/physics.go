package gamemath

import "math"

// ApplyDamping decays v by the fraction damping per second over dt seconds.
// damping 0.5 halves the speed every second.
func ApplyDamping(v Vec3, damping, dt float64) Vec3 {
	if damping <= 0 {
		return v
	}
	if damping >= 1 {
		return Vec3{}
	}
	return v.Scale(math.Pow(1-damping, dt))
}

// SettleSpeed zeroes speeds below threshold so a rolling ball comes to rest.
func SettleSpeed(v Vec3, threshold float64) Vec3 {
	if v.Length() < threshold {
		return Vec3{}
	}
	return v
}

// Bounce reflects a velocity component off a surface with the given restitution.
// Components slower than stopBelow after the bounce are zeroed.
func Bounce(speed, restitution, stopBelow float64) float64 {
	out := -speed * restitution
	if math.Abs(out) < stopBelow {
		return 0
	}
	return out
}

// WallBounce reflects a horizontal component off a wall. Bumpers can have a
// restitution above 1, so the result is capped at max. max <= 0 disables
// the cap.
func WallBounce(speed, restitution, max float64) float64 {
	out := Bounce(speed, restitution, 0)
	if max <= 0 {
		return out
	}
	return ClampSpeed(out, max)
}

// ClampSpeed limits speed to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
