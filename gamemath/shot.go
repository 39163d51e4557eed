package gamemath

// ComputeImpulse converts an aim drag into a launch velocity: the vector from
// the release point back to the anchor, scaled by multiplier. Dragging away
// from the ball shoots it the opposite way, like pulling back a slingshot.
func ComputeImpulse(anchor, release Vec3, multiplier float64) Vec3 {
	return anchor.Sub(release).Scale(multiplier)
}

// ClampLength shortens v to max when it is longer. max <= 0 disables the clamp.
func ClampLength(v Vec3, max float64) Vec3 {
	if max <= 0 {
		return v
	}
	l := v.Length()
	if l <= max {
		return v
	}
	return v.Scale(max / l)
}

// PowerRatio maps an impulse magnitude onto [0, 1] relative to full.
func PowerRatio(impulse Vec3, full float64) float64 {
	if full <= 0 {
		return 0
	}
	r := impulse.Length() / full
	if r > 1 {
		return 1
	}
	return r
}
