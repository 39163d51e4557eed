package factory

import (
	"github.com/automoto/putputputty/archetypes"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the chase camera already framing target.
func CreateCamera(ecs *ecs.ECS, target gamemath.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	pose := cfg.ChaseCamera().Update(target)
	components.Camera.SetValue(camera, components.CameraData{
		Pose: pose,
		View: gamemath.NewView(pose.Position, pose.LookAt, cfg.Camera.Fov(), float64(cfg.C.Width), float64(cfg.C.Height)),
	})
	return camera
}
