package systems

import (
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/interaction"
	"github.com/automoto/putputputty/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// farGround is how far along a ray that misses the ground plane (pointing
// at the sky) the fallback ground point is taken.
const farGround = 200

// ResolvePointer casts the screen point into the scene: the ground point is
// the ray's hit on Y = 0, and Hits lists the bodies the ray passes through.
func ResolvePointer(ecs *ecs.ECS, x, y float64) interaction.Pointer {
	camEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return interaction.Pointer{}
	}
	view := components.Camera.Get(camEntry).View
	ray := view.Ray(x, y)

	ground, ok := ray.IntersectPlaneY(0)
	if !ok {
		ground = ray.At(farGround).WithY(0)
	}

	p := interaction.Pointer{Ground: ground, Hits: []interaction.BodyID{}}
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		phys := components.Physics.Get(e)
		if _, hit := ray.IntersectSphere(phys.Position, ball.Radius+cfg.Ball.PickSlop); hit {
			p.Hits = append(p.Hits, ball.ID)
		}
	})
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		box := components.Wall.Get(e).Box
		if rayHitsBox(ray, box.Min, box.Max) {
			p.Hits = append(p.Hits, interaction.BodyID(e.Entity()))
		}
	})
	return p
}

// rayHitsBox is the slab test for an axis-aligned box.
func rayHitsBox(r gamemath.Ray, lo, hi gamemath.Vec3) bool {
	tmin, tmax := 0.0, farGround*10.0
	axes := [3][4]float64{
		{r.Origin.X, r.Dir.X, lo.X, hi.X},
		{r.Origin.Y, r.Dir.Y, lo.Y, hi.Y},
		{r.Origin.Z, r.Dir.Z, lo.Z, hi.Z},
	}
	for _, a := range axes {
		o, d, l, h := a[0], a[1], a[2], a[3]
		if d == 0 {
			if o < l || o > h {
				return false
			}
			continue
		}
		t1, t2 := (l-o)/d, (h-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}
