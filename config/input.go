package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionResetBall
	ActionPause
	ActionToggleDebug
	ActionNextCourse
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// ActionNames labels actions in the debug overlay.
var ActionNames = map[ActionID]string{
	ActionResetBall:   "reset",
	ActionPause:       "pause",
	ActionToggleDebug: "debug",
	ActionNextCourse:  "next",
	ActionMenuUp:      "menu_up",
	ActionMenuDown:    "menu_down",
	ActionMenuSelect:  "menu_select",
	ActionMenuBack:    "menu_back",
}

// PointerConfig contains mouse and touch handling values
type PointerConfig struct {
	// DragThreshold is how far in pixels a press must move before it counts
	// as a move event. Keeps taps from jittering the aim line.
	DragThreshold float64
	// TouchEnabled routes the first touch through the same pointer events.
	TouchEnabled bool
}

var Pointer PointerConfig

func resetInput() {
	Pointer = PointerConfig{
		DragThreshold: 0.5,
		TouchEnabled:  true,
	}
}
