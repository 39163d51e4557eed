package systems

import (
	"math"

	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/interaction"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings maps actions to keyboard keys.
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionResetBall:   {ebiten.KeyR},
	cfg.ActionPause:       {ebiten.KeyEscape, ebiten.KeyP},
	cfg.ActionToggleDebug: {ebiten.KeyF3},
	cfg.ActionNextCourse:  {ebiten.KeyN},
	cfg.ActionMenuUp:      {ebiten.KeyUp, ebiten.KeyW},
	cfg.ActionMenuDown:    {ebiten.KeyDown, ebiten.KeyS},
	cfg.ActionMenuSelect:  {ebiten.KeyEnter, ebiten.KeySpace},
	cfg.ActionMenuBack:    {ebiten.KeyEscape, ebiten.KeyBackspace},
}

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls the keyboard into the action buffer and turns mouse or
// touch activity into pointer events queued for UpdateInteraction.
// Must run first in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}

	pollPointer(ecs, &input.Pointer)
}

// pollPointer follows the mouse, or the first touch when one is active.
func pollPointer(ecs *ecs.ECS, p *components.PointerData) {
	if cfg.Pointer.TouchEnabled && pollTouch(ecs, p) {
		return
	}

	x, y := ebiten.CursorPosition()
	p.X, p.Y = float64(x), float64(y)

	inside := ebiten.IsFocused() &&
		x >= 0 && y >= 0 && x < cfg.C.Width && y < cfg.C.Height
	if p.Inside && !inside {
		queuePointerEvent(ecs, interaction.PointerLeave, p)
	}
	p.Inside = inside

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.Down = true
		p.TouchID = -1
		p.LastX, p.LastY = p.X, p.Y
		queuePointerEvent(ecs, interaction.PointerDown, p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if p.Down {
			queuePointerEvent(ecs, interaction.PointerMove, p)
			queuePointerEvent(ecs, interaction.PointerUp, p)
		}
		p.Down = false
	case p.Down && movedEnough(p):
		p.LastX, p.LastY = p.X, p.Y
		queuePointerEvent(ecs, interaction.PointerMove, p)
	}
}

// pollTouch reports whether a touch drove the pointer this frame.
func pollTouch(ecs *ecs.ECS, p *components.PointerData) bool {
	if p.Down && p.TouchID >= 0 {
		id := ebiten.TouchID(p.TouchID)
		if inpututil.IsTouchJustReleased(id) {
			x, y := inpututil.TouchPositionInPreviousTick(id)
			p.X, p.Y = float64(x), float64(y)
			queuePointerEvent(ecs, interaction.PointerMove, p)
			queuePointerEvent(ecs, interaction.PointerUp, p)
			p.Down = false
			p.TouchID = -1
			return true
		}
		x, y := ebiten.TouchPosition(id)
		p.X, p.Y = float64(x), float64(y)
		if movedEnough(p) {
			p.LastX, p.LastY = p.X, p.Y
			queuePointerEvent(ecs, interaction.PointerMove, p)
		}
		return true
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) == 0 {
		return false
	}
	id := touchIDs[0]
	x, y := ebiten.TouchPosition(id)
	p.X, p.Y = float64(x), float64(y)
	p.LastX, p.LastY = p.X, p.Y
	p.Down = true
	p.Inside = true
	p.TouchID = int(id)
	queuePointerEvent(ecs, interaction.PointerDown, p)
	return true
}

func movedEnough(p *components.PointerData) bool {
	return math.Hypot(p.X-p.LastX, p.Y-p.LastY) >= cfg.Pointer.DragThreshold
}

// queuePointerEvent resolves the pointer against the scene and appends the
// event for this frame. Without a course there is nothing to aim at.
func queuePointerEvent(ecs *ecs.ECS, kind interaction.EventKind, p *components.PointerData) {
	entry, ok := components.Interaction.First(ecs.World)
	if !ok {
		return
	}
	data := components.Interaction.Get(entry)
	ev := interaction.Event{Kind: kind}
	if kind != interaction.PointerLeave {
		ev.Pointer = ResolvePointer(ecs, p.X, p.Y)
	}
	data.Pending = append(data.Pending, ev)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.Get(entry).Pointer.TouchID = -1
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
