package gamemath

import "math"

const nearPlane = 0.05

// View is a perspective camera looking from Eye toward Target on a screen of
// Width x Height pixels.
type View struct {
	Eye    Vec3
	Target Vec3
	FovY   float64 // radians
	Width  float64
	Height float64

	right, up, forward Vec3
	focal              float64
}

// NewView builds the camera basis once so projection and unprojection agree.
func NewView(eye, target Vec3, fovY, width, height float64) View {
	v := View{Eye: eye, Target: target, FovY: fovY, Width: width, Height: height}
	v.forward = target.Sub(eye).Normalize()
	if v.forward == (Vec3{}) {
		v.forward = Vec3{Z: -1}
	}
	worldUp := Vec3{Y: 1}
	// Straight down: pick screen-up as -Z so the course keeps its orientation.
	if math.Abs(v.forward.Dot(worldUp)) > 0.999 {
		worldUp = Vec3{Z: -1}
	}
	v.right = v.forward.Cross(worldUp).Normalize()
	v.up = v.right.Cross(v.forward)
	v.focal = (height / 2) / math.Tan(fovY/2)
	return v
}

// Project maps a world point to screen pixels. ok is false behind the camera.
func (v View) Project(p Vec3) (x, y, depth float64, ok bool) {
	d := p.Sub(v.Eye)
	z := d.Dot(v.forward)
	if z < nearPlane {
		return 0, 0, z, false
	}
	x = v.Width/2 + d.Dot(v.right)*v.focal/z
	y = v.Height/2 - d.Dot(v.up)*v.focal/z
	return x, y, z, true
}

// ScaleAt returns pixels per world unit at the given depth.
func (v View) ScaleAt(depth float64) float64 {
	if depth < nearPlane {
		return 0
	}
	return v.focal / depth
}

// Ray returns the world-space ray through screen pixel (x, y).
func (v View) Ray(x, y float64) Ray {
	dir := v.forward.
		Add(v.right.Scale((x - v.Width/2) / v.focal)).
		Add(v.up.Scale(-(y - v.Height/2) / v.focal))
	return Ray{Origin: v.Eye, Dir: dir.Normalize()}
}

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// IntersectPlaneY hits the horizontal plane at height h.
func (r Ray) IntersectPlaneY(h float64) (Vec3, bool) {
	if math.Abs(r.Dir.Y) < 1e-9 {
		return Vec3{}, false
	}
	t := (h - r.Origin.Y) / r.Dir.Y
	if t < 0 {
		return Vec3{}, false
	}
	return r.At(t), true
}

// IntersectSphere returns the nearest non-negative hit distance.
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
