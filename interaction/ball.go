package interaction

import "github.com/automoto/putputputty/gamemath"

// Body is the velocity-set side of the physics engine.
type Body interface {
	SetVelocity(v gamemath.Vec3)
	AtRest() bool
}

// HitTester answers whether a pointer sample touches the ball's collider.
type HitTester interface {
	Intersects(p Pointer) bool
}

// HitTesterFunc adapts a function to HitTester.
type HitTesterFunc func(p Pointer) bool

func (f HitTesterFunc) Intersects(p Pointer) bool { return f(p) }

// BodyHits hit-tests by looking for a body handle in the pointer's hit list.
type BodyHits BodyID

func (id BodyHits) Intersects(p Pointer) bool { return p.Contains(BodyID(id)) }

// BallController owns the single ball-position cell. Publish is its only
// writer; everything else reads through Position.
type BallController struct {
	// RequireRest blocks new shots until the body reports it is at rest.
	RequireRest bool

	body      Body
	hits      HitTester
	position  gamemath.Vec3
	listeners []func(gamemath.Vec3)
}

// NewBallController returns an unregistered controller.
func NewBallController(requireRest bool) *BallController {
	return &BallController{RequireRest: requireRest}
}

// Register attaches the physics body and its hit test.
func (b *BallController) Register(body Body, hits HitTester) {
	b.body = body
	b.hits = hits
}

// Unregister detaches the body, e.g. when a course is torn down.
func (b *BallController) Unregister() {
	b.body = nil
	b.hits = nil
}

func (b *BallController) Registered() bool {
	return b != nil && b.body != nil && b.hits != nil
}

// ObservePosition adds a listener for position updates and returns the
// publish function the physics feed should call. fn may be nil.
func (b *BallController) ObservePosition(fn func(gamemath.Vec3)) func(gamemath.Vec3) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
	return b.Publish
}

// Publish stores the latest position and notifies listeners.
func (b *BallController) Publish(p gamemath.Vec3) {
	b.position = p
	for _, fn := range b.listeners {
		fn(p)
	}
}

func (b *BallController) Position() gamemath.Vec3 {
	if b == nil {
		return gamemath.Vec3{}
	}
	return b.position
}

// ApplyImpulse replaces the body's velocity with v. It reports false while
// no body is registered.
func (b *BallController) ApplyImpulse(v gamemath.Vec3) bool {
	if !b.Registered() {
		return false
	}
	b.body.SetVelocity(v)
	return true
}

func (b *BallController) Intersects(p Pointer) bool {
	if !b.Registered() {
		return false
	}
	return b.hits.Intersects(p)
}

// CanShoot reports whether a new drag may start.
func (b *BallController) CanShoot() bool {
	if !b.Registered() {
		return false
	}
	return !b.RequireRest || b.body.AtRest()
}
