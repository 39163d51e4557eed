package factory

import (
	"github.com/automoto/putputputty/archetypes"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/interaction"
	"github.com/automoto/putputputty/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBall(ecs *ecs.ECS, tee gamemath.Vec3) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	radius := cfg.Ball.Radius
	frame := spaceFrame(ecs)
	cx, cy := frame.ToSpace(tee.X, tee.Z)
	r := radius * frame.Scale

	obj := resolv.NewObject(cx-r, cy-r, 2*r, 2*r, tags.ResolvBall)
	obj.SetShape(resolv.NewCircle(r, r, r))
	obj.Data = ball

	components.Object.SetValue(ball, components.ObjectData{
		Object: obj,
		Bottom: tee.Y - radius,
		Top:    tee.Y + radius,
	})
	components.Ball.SetValue(ball, components.BallData{
		ID:       interaction.BodyID(ball.Entity()),
		Radius:   radius,
		LastRest: tee,
	})
	components.Physics.SetValue(ball, components.PhysicsData{
		Position:    tee,
		Damping:     cfg.Ball.LinearDamping,
		Restitution: cfg.Ball.WallRestitution,
		Grounded:    true,
		Resting:     true,
	})
	components.Indicator.SetValue(ball, components.IndicatorData{Scale: 1})
	addToSpace(ecs, obj)

	return ball
}
