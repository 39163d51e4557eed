package interaction

import "github.com/automoto/putputputty/gamemath"

// BodyID identifies a physics body in pointer hit lists.
type BodyID uint64

// Pointer is a pointer sample resolved against the scene.
type Pointer struct {
	Ground gamemath.Vec3 // pointer ray projected onto the ground plane
	Hits   []BodyID      // bodies under the pointer; nil when the hit test never ran
}

// Malformed reports a pointer sample without an intersection list.
func (p Pointer) Malformed() bool {
	return p.Hits == nil
}

// Contains reports whether id is in the hit list.
func (p Pointer) Contains(id BodyID) bool {
	for _, h := range p.Hits {
		if h == id {
			return true
		}
	}
	return false
}

// EventKind names the inputs of the aim state machine.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	FrameTick
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "PointerDown"
	case PointerMove:
		return "PointerMove"
	case PointerUp:
		return "PointerUp"
	case PointerLeave:
		return "PointerLeave"
	case FrameTick:
		return "FrameTick"
	}
	return "Unknown"
}

// Event is one input delivered to Transition.
type Event struct {
	Kind    EventKind
	Pointer Pointer
}

func Down(p Pointer) Event { return Event{Kind: PointerDown, Pointer: p} }
func Move(p Pointer) Event { return Event{Kind: PointerMove, Pointer: p} }
func Up(p Pointer) Event { return Event{Kind: PointerUp, Pointer: p} }
func Leave() Event { return Event{Kind: PointerLeave} }
func Tick() Event { return Event{Kind: FrameTick} }
