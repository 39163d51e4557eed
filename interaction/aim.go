package interaction

import "github.com/automoto/putputputty/gamemath"

// Phase is the state of the aim machine.
type Phase int

const (
	AimIdle Phase = iota
	AimAiming
)

func (p Phase) String() string {
	if p == AimAiming {
		return "Aiming"
	}
	return "Idle"
}

// AimDrag is the live drag. Anchor follows the ball at aim height; Current
// is the latest ground point under the pointer.
type AimDrag struct {
	Anchor  gamemath.Vec3
	Current gamemath.Vec3
}

// Aim is the aim machine state. Drag is non-nil exactly while aiming, and
// the aim line is drawn exactly when Drag is non-nil.
type Aim struct {
	Phase Phase
	Drag  *AimDrag
}

// Aiming reports whether a drag is in progress.
func (a Aim) Aiming() bool {
	return a.Phase == AimAiming && a.Drag != nil
}

// AimConfig holds the tunables Transition reads.
type AimConfig struct {
	Multiplier    float64
	AimHeight     float64
	MaxImpulse    float64 // <= 0 means no cap
	CancelOnLeave bool
}

// BallView is the read side of the ball that Transition needs.
type BallView interface {
	Registered() bool
	Position() gamemath.Vec3
	Intersects(p Pointer) bool
	CanShoot() bool
}

// MissReason explains why a pointer-down did not start a drag.
type MissReason int

const (
	MissNone MissReason = iota
	MissNoHit
	MissMalformed
	MissUnregistered
	MissBallMoving
)

func (r MissReason) String() string {
	switch r {
	case MissNone:
		return "none"
	case MissNoHit:
		return "no hit"
	case MissMalformed:
		return "malformed pointer"
	case MissUnregistered:
		return "ball not registered"
	case MissBallMoving:
		return "ball still moving"
	}
	return "unknown"
}

// Outcome reports what a transition did. At most one of GrabStarted and
// GrabEnded is set. Fired carries the impulse to hand to the ball.
type Outcome struct {
	Miss        MissReason
	GrabStarted bool
	GrabEnded   bool
	Cancelled   bool
	Fired       bool
	Impulse     gamemath.Vec3
}

// Transition is the aim state machine. It never mutates aim or the drag it
// points to; a new drag value is returned when anything changes.
func Transition(aim Aim, ev Event, ball BallView, cfg AimConfig) (Aim, Outcome) {
	if !aim.Aiming() {
		return idle(ev, ball, cfg)
	}

	drag := *aim.Drag
	switch ev.Kind {
	case PointerMove:
		drag.Current = ev.Pointer.Ground
	case FrameTick:
		if ball.Registered() {
			drag.Anchor = anchorOf(ball, cfg)
		}
	case PointerUp:
		if !ev.Pointer.Malformed() {
			drag.Current = ev.Pointer.Ground
		}
		impulse := gamemath.ComputeImpulse(drag.Anchor, drag.Current, cfg.Multiplier)
		impulse = gamemath.ClampLength(impulse, cfg.MaxImpulse)
		return Aim{}, Outcome{GrabEnded: true, Fired: true, Impulse: impulse}
	case PointerLeave:
		if cfg.CancelOnLeave {
			return Aim{}, Outcome{GrabEnded: true, Cancelled: true}
		}
		return aim, Outcome{}
	default:
		return aim, Outcome{}
	}
	return Aim{Phase: AimAiming, Drag: &drag}, Outcome{}
}

func idle(ev Event, ball BallView, cfg AimConfig) (Aim, Outcome) {
	if ev.Kind != PointerDown {
		return Aim{}, Outcome{}
	}
	if miss := checkGrab(ev.Pointer, ball); miss != MissNone {
		return Aim{}, Outcome{Miss: miss}
	}
	drag := &AimDrag{
		Anchor:  anchorOf(ball, cfg),
		Current: ev.Pointer.Ground,
	}
	return Aim{Phase: AimAiming, Drag: drag}, Outcome{GrabStarted: true}
}

func checkGrab(p Pointer, ball BallView) MissReason {
	switch {
	case ball == nil || !ball.Registered():
		return MissUnregistered
	case p.Malformed():
		return MissMalformed
	case !ball.Intersects(p):
		return MissNoHit
	case !ball.CanShoot():
		return MissBallMoving
	}
	return MissNone
}

func anchorOf(ball BallView, cfg AimConfig) gamemath.Vec3 {
	return ball.Position().WithY(cfg.AimHeight)
}
