package systems

import (
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera copies the chase camera pose computed by the aim core this
// frame and rebuilds the projection from it.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	data := GetInteraction(e)
	if data == nil || data.State == nil {
		return
	}

	camera := components.Camera.Get(cameraEntry)
	camera.Pose = data.State.Pose
	camera.View = gamemath.NewView(
		camera.Pose.Position,
		camera.Pose.LookAt,
		cfg.Camera.Fov(),
		float64(cfg.C.Width),
		float64(cfg.C.Height),
	)
}
