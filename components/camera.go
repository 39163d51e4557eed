package components

import (
	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/interaction"
	"github.com/yohamta/donburi"
)

// CameraData holds this frame's chase camera pose and the projection built
// from it. Input picking and rendering both use View so they agree.
type CameraData struct {
	Pose interaction.Pose
	View gamemath.View
}

var Camera = donburi.NewComponentType[CameraData]()
