package components

import (
	cfg "github.com/automoto/putputputty/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerData is the mouse or first touch in screen pixels.
type PointerData struct {
	X, Y         float64
	LastX, LastY float64 // where the last move event was emitted
	Down         bool
	Inside       bool // cursor is within the window
	TouchID      int  // active touch, -1 for the mouse
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Pointer  PointerData
	// Primed is set after the first poll. Keys already held when a scene
	// starts do not count as just pressed.
	Primed bool
}

var Input = donburi.NewComponentType[InputData]()
