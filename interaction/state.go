package interaction

import "github.com/automoto/putputputty/gamemath"

// GrabIndicator is told when a drag starts and ends.
type GrabIndicator interface {
	SetGrabbing(grabbing bool)
}

// State is the whole interaction core for one play session. Mutate it only
// through Dispatch and Tick.
type State struct {
	Aim    Aim
	Pose   Pose
	Ball   *BallController
	Camera ChaseCamera
	Config AimConfig

	indicator GrabIndicator
}

func NewState(ball *BallController, camera ChaseCamera, cfg AimConfig) *State {
	s := &State{
		Ball:   ball,
		Camera: camera,
		Config: cfg,
	}
	s.Pose = camera.Update(ball.Position())
	return s
}

// SetIndicator installs the grab indicator. nil disables it.
func (s *State) SetIndicator(ind GrabIndicator) {
	s.indicator = ind
}

// Dispatch feeds one event through the aim machine and applies its side
// effects: the impulse goes to the ball and the indicator follows the grab.
func (s *State) Dispatch(ev Event) Outcome {
	next, out := Transition(s.Aim, ev, s.Ball, s.Config)
	s.Aim = next

	if out.Fired && !s.Ball.ApplyImpulse(out.Impulse) {
		out.Fired = false
		out.Impulse = gamemath.Vec3{}
	}
	if s.indicator != nil {
		switch {
		case out.GrabStarted:
			s.indicator.SetGrabbing(true)
		case out.GrabEnded:
			s.indicator.SetGrabbing(false)
		}
	}
	return out
}

// Tick runs one frame: the anchor refresh, then the queued pointer events
// in delivery order, then the camera. The anchor is refreshed first so a
// release fires from where the ball is this frame. It returns the outcomes
// of the pointer events.
func (s *State) Tick(events []Event) []Outcome {
	s.Dispatch(Tick())
	outs := make([]Outcome, 0, len(events))
	for _, ev := range events {
		outs = append(outs, s.Dispatch(ev))
	}
	s.Pose = s.Camera.Update(s.Ball.Position())
	return outs
}

// Drag returns a copy of the live drag.
func (s *State) Drag() (AimDrag, bool) {
	if !s.Aim.Aiming() {
		return AimDrag{}, false
	}
	return *s.Aim.Drag, true
}

// Cancel drops any drag in progress without firing, e.g. on pause or reset.
func (s *State) Cancel() {
	if !s.Aim.Aiming() {
		return
	}
	s.Aim = Aim{}
	if s.indicator != nil {
		s.indicator.SetGrabbing(false)
	}
}

// Reset swaps the camera target to p immediately, used after teleporting
// the ball.
func (s *State) Reset(p gamemath.Vec3) {
	s.Cancel()
	s.Ball.Publish(p)
	s.Pose = s.Camera.Update(p)
}
