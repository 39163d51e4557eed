package components

import "github.com/yohamta/donburi"

// SettingsData is the debug toggle and other per-session switches.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
