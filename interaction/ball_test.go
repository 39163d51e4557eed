package interaction

import (
	"testing"

	"github.com/automoto/putputputty/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestBallControllerUnregistered(t *testing.T) {
	ball := NewBallController(false)

	assert.False(t, ball.Registered())
	assert.False(t, ball.Intersects(onBall(gamemath.Vec3{})))
	assert.False(t, ball.CanShoot())
	assert.False(t, ball.ApplyImpulse(gamemath.V3(1, 0, 0)))

	var missing *BallController
	assert.False(t, missing.Registered())
	assert.Equal(t, gamemath.Vec3{}, missing.Position())
}

func TestBallControllerObservePosition(t *testing.T) {
	ball := NewBallController(false)

	var seen []gamemath.Vec3
	publish := ball.ObservePosition(func(p gamemath.Vec3) { seen = append(seen, p) })
	other := ball.ObservePosition(nil)

	publish(gamemath.V3(1, 1, 1))
	other(gamemath.V3(2, 1, 2))

	assert.Equal(t, gamemath.V3(2, 1, 2), ball.Position(), "latest value wins")
	assert.Equal(t, []gamemath.Vec3{gamemath.V3(1, 1, 1), gamemath.V3(2, 1, 2)}, seen)
}

func TestBallControllerApplyImpulseReplacesVelocity(t *testing.T) {
	ball, body := newRegisteredBall(gamemath.V3(0, 1, 0))
	body.velocity = gamemath.V3(10, 0, 10)

	assert.True(t, ball.ApplyImpulse(gamemath.V3(0, 0, 5)))
	assert.Equal(t, gamemath.V3(0, 0, 5), body.velocity)
	assert.Equal(t, 1, body.sets)
}

func TestBallControllerIntersectsDelegates(t *testing.T) {
	ball := NewBallController(false)
	var asked []Pointer
	ball.Register(&fakeBody{}, HitTesterFunc(func(p Pointer) bool {
		asked = append(asked, p)
		return p.Ground.X > 0
	}))

	assert.True(t, ball.Intersects(Pointer{Ground: gamemath.V3(1, 0, 0), Hits: []BodyID{}}))
	assert.False(t, ball.Intersects(Pointer{Ground: gamemath.V3(-1, 0, 0), Hits: []BodyID{}}))
	assert.Len(t, asked, 2)

	ball.Unregister()
	assert.False(t, ball.Intersects(Pointer{Ground: gamemath.V3(1, 0, 0), Hits: []BodyID{}}))
	assert.Len(t, asked, 2, "unregistered controller never calls the hit test")
}

func TestBallControllerCanShoot(t *testing.T) {
	ball, body := newRegisteredBall(gamemath.V3(0, 1, 0))
	assert.True(t, ball.CanShoot())

	body.moving = true
	assert.False(t, ball.CanShoot())

	ball.RequireRest = false
	assert.True(t, ball.CanShoot())
}

func TestBodyHits(t *testing.T) {
	hits := BodyHits(ballID)
	assert.True(t, hits.Intersects(onBall(gamemath.Vec3{})))
	assert.False(t, hits.Intersects(offBall(gamemath.Vec3{})))
	assert.False(t, hits.Intersects(Pointer{}))
}
