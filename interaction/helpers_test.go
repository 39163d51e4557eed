package interaction

import "github.com/automoto/putputputty/gamemath"

const ballID BodyID = 7

var testConfig = AimConfig{Multiplier: 2.4, AimHeight: 1}

type fakeBody struct {
	velocity gamemath.Vec3
	sets     int
	moving   bool
}

func (b *fakeBody) SetVelocity(v gamemath.Vec3) {
	b.velocity = v
	b.sets++
}

func (b *fakeBody) AtRest() bool { return !b.moving }

type recordingIndicator struct {
	calls []bool
}

func (r *recordingIndicator) SetGrabbing(g bool) { r.calls = append(r.calls, g) }

func newRegisteredBall(at gamemath.Vec3) (*BallController, *fakeBody) {
	body := &fakeBody{}
	ball := NewBallController(true)
	ball.Register(body, BodyHits(ballID))
	ball.Publish(at)
	return ball, body
}

func onBall(ground gamemath.Vec3) Pointer {
	return Pointer{Ground: ground, Hits: []BodyID{3, ballID}}
}

func offBall(ground gamemath.Vec3) Pointer {
	return Pointer{Ground: ground, Hits: []BodyID{3}}
}
