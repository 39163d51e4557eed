package components

import (
	"github.com/automoto/putputputty/assets"
	"github.com/yohamta/donburi"
)

type WallData struct {
	Box assets.Box
}

var Wall = donburi.NewComponentType[WallData]()
