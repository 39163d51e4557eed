package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuRestart
	MenuMainMenu
	MenuExit
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	// Chosen is set for one frame when an option that leaves the course
	// (restart or main menu) is picked. The scene consumes it.
	Chosen    PauseMenuOption
	HasChosen bool
}

var Pause = donburi.NewComponentType[PauseData]()
