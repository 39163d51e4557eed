package systems

import (
	"math"

	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// restVertical is the vertical speed below which a grounded ball counts as
// settled on the green.
const restVertical = 0.05

// UpdatePhysics integrates the ball: gravity and ground bounce on Y, wall
// collision on the XZ plane through the resolv space, then rolling
// friction and rest detection. The new position is published to the aim
// core so the camera and aim anchor follow it.
func UpdatePhysics(ecs *ecs.ECS) {
	course := GetCurrentCourse(ecs)
	frame := getSpaceFrame(ecs)
	dt := cfg.Dt()

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		phys := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if ball.Sunk {
			return
		}

		phys.Impact = 0
		if phys.Resting {
			publishBall(ecs, phys.Position)
			return
		}

		steps := substeps(phys.Velocity, dt)
		h := dt / float64(steps)
		for i := 0; i < steps; i++ {
			onGreen := course == nil || course.Contains(phys.Position)
			integrateVertical(phys, ball.Radius, onGreen, h)
			moveHorizontal(phys, obj, frame, ball.Radius, h)
		}

		if phys.Grounded {
			horizontal := phys.Velocity.WithY(0)
			horizontal = gamemath.ApplyDamping(horizontal, phys.Damping, dt)
			horizontal = gamemath.SettleSpeed(horizontal, cfg.Ball.RestSpeed)
			phys.Velocity = horizontal.WithY(phys.Velocity.Y)

			if horizontal == (gamemath.Vec3{}) && math.Abs(phys.Velocity.Y) < restVertical {
				phys.Velocity = gamemath.Vec3{}
				phys.Resting = true
				ball.LastRest = phys.Position
			}
		}

		if phys.Impact > 0 {
			PlaySFXScaled(ecs, cfg.SoundWallHit, phys.Impact/cfg.Shot.FullPower)
		}

		syncObject(obj, frame, phys.Position, ball.Radius)
		publishBall(ecs, phys.Position)
	})
}

// substeps splits a frame so no step moves the ball further than the
// substep limit.
func substeps(v gamemath.Vec3, dt float64) int {
	travel := v.Length() * dt
	n := int(math.Ceil(travel / cfg.Physics.SubstepLimit))
	if n < 1 {
		return 1
	}
	if n > cfg.Physics.MaxSubsteps {
		return cfg.Physics.MaxSubsteps
	}
	return n
}

// integrateVertical applies gravity and bounces the ball off the green.
// Off the green there is no floor and the ball falls.
func integrateVertical(phys *components.PhysicsData, radius float64, onGreen bool, h float64) {
	if phys.Grounded && onGreen && phys.Velocity.Y <= 0 {
		phys.Velocity.Y = 0
		phys.Position.Y = radius
		return
	}

	phys.Grounded = false
	phys.Velocity.Y -= cfg.Physics.Gravity * h
	phys.Position.Y += phys.Velocity.Y * h

	// Only catch the ball while its centre is still above the surface;
	// once it has dropped below the green edge it keeps falling.
	if onGreen && phys.Position.Y <= radius && phys.Position.Y > 0 {
		phys.Position.Y = radius
		phys.Velocity.Y = gamemath.Bounce(phys.Velocity.Y, cfg.Ball.GroundRestitution, cfg.Physics.StopBounce)
		phys.Grounded = phys.Velocity.Y == 0
	}
}

// moveHorizontal moves the ball on X then Z, stopping at walls tall enough
// to block it and reflecting the blocked component.
func moveHorizontal(phys *components.PhysicsData, obj *components.ObjectData, frame components.SpaceFrameData, radius, h float64) {
	syncObject(obj, frame, phys.Position, radius)

	dx := phys.Velocity.X * h * frame.Scale
	if dx != 0 {
		if wall, restitution := blockingWall(obj, phys.Position.Y-radius, dx, 0); wall != nil {
			contact := obj.Check(dx, 0, tags.ResolvSolid).ContactWithObject(wall)
			phys.Position.X += contact.X() / frame.Scale
			recordImpact(phys, phys.Velocity.X)
			phys.Velocity.X = gamemath.WallBounce(phys.Velocity.X, restitution, cfg.Ball.MaxSpeed)
		} else {
			phys.Position.X += dx / frame.Scale
		}
		syncObject(obj, frame, phys.Position, radius)
	}

	dz := phys.Velocity.Z * h * frame.Scale
	if dz != 0 {
		if wall, restitution := blockingWall(obj, phys.Position.Y-radius, 0, dz); wall != nil {
			contact := obj.Check(0, dz, tags.ResolvSolid).ContactWithObject(wall)
			phys.Position.Z += contact.Y() / frame.Scale
			recordImpact(phys, phys.Velocity.Z)
			phys.Velocity.Z = gamemath.WallBounce(phys.Velocity.Z, restitution, cfg.Ball.MaxSpeed)
		} else {
			phys.Position.Z += dz / frame.Scale
		}
		syncObject(obj, frame, phys.Position, radius)
	}
}

// blockingWall returns the first solid the move runs into whose top is
// above the ball's bottom, with the restitution to bounce off it.
func blockingWall(obj *components.ObjectData, bottom, dx, dy float64) (*resolv.Object, float64) {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil, 0
	}
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Object) {
			continue
		}
		if components.Object.Get(entry).Top <= bottom {
			continue
		}
		restitution := cfg.Ball.WallRestitution
		if entry.HasComponent(components.Wall) {
			if r := components.Wall.Get(entry).Box.Restitution; r > 0 {
				restitution = r
			}
		}
		return o, restitution
	}
	return nil, 0
}

func recordImpact(phys *components.PhysicsData, speed float64) {
	if s := math.Abs(speed); s > phys.Impact {
		phys.Impact = s
	}
}

// syncObject moves the ball's resolv object to match the world position.
func syncObject(obj *components.ObjectData, frame components.SpaceFrameData, pos gamemath.Vec3, radius float64) {
	cx, cy := frame.ToSpace(pos.X, pos.Z)
	r := radius * frame.Scale
	obj.X = cx - r
	obj.Y = cy - r
	obj.Bottom = pos.Y - radius
	obj.Top = pos.Y + radius
	obj.Update()
}

func publishBall(ecs *ecs.ECS, pos gamemath.Vec3) {
	if data := GetInteraction(ecs); data != nil && data.State != nil {
		data.State.Ball.Publish(pos)
	}
}

func getSpaceFrame(ecs *ecs.ECS) components.SpaceFrameData {
	if entry, ok := components.SpaceFrame.First(ecs.World); ok {
		return *components.SpaceFrame.Get(entry)
	}
	return components.SpaceFrameData{Scale: cfg.Physics.SpaceScale}
}
