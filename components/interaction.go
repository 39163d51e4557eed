package components

import (
	"github.com/automoto/putputputty/interaction"
	"github.com/yohamta/donburi"
)

// InteractionData is the aim core for the current course plus the pointer
// events collected by input polling, consumed once per tick.
type InteractionData struct {
	State   *interaction.State
	Pending []interaction.Event
	// LastOutcomes is what the latest tick produced, shown by the debug overlay.
	LastOutcomes []interaction.Outcome
	// Hover is true while the pointer is over the ball.
	Hover bool
}

var Interaction = donburi.NewComponentType[InteractionData]()
