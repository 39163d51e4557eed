package interaction

import (
	"testing"

	"github.com/automoto/putputputty/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionPointerDownOnBallStartsDrag(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1.3, 0))

	aim, out := Transition(Aim{}, Down(onBall(gamemath.V3(0.2, 0, 0.1))), ball, testConfig)

	require.True(t, aim.Aiming())
	assert.True(t, out.GrabStarted)
	assert.Equal(t, MissNone, out.Miss)
	assert.Equal(t, gamemath.V3(0, 1, 0), aim.Drag.Anchor, "anchor is pinned to aim height")
	assert.Equal(t, gamemath.V3(0.2, 0, 0.1), aim.Drag.Current)
}

func TestTransitionPointerDownMisses(t *testing.T) {
	registered, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	moving, movingBody := newRegisteredBall(gamemath.V3(0, 1, 0))
	movingBody.moving = true

	tests := []struct {
		name    string
		ball    BallView
		pointer Pointer
		want    MissReason
	}{
		{"pointer elsewhere", registered, offBall(gamemath.V3(4, 0, 4)), MissNoHit},
		{"empty hit list", registered, Pointer{Hits: []BodyID{}}, MissNoHit},
		{"missing hit list", registered, Pointer{Ground: gamemath.V3(0, 0, 0)}, MissMalformed},
		{"unregistered ball", NewBallController(true), onBall(gamemath.Vec3{}), MissUnregistered},
		{"nil ball", nil, onBall(gamemath.Vec3{}), MissUnregistered},
		{"ball still rolling", moving, onBall(gamemath.Vec3{}), MissBallMoving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aim, out := Transition(Aim{}, Down(tt.pointer), tt.ball, testConfig)
			assert.Equal(t, AimIdle, aim.Phase)
			assert.Nil(t, aim.Drag)
			assert.Equal(t, tt.want, out.Miss)
			assert.False(t, out.GrabStarted)
			assert.False(t, out.Fired)
		})
	}
}

func TestTransitionIdleIgnoresOtherEvents(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	for _, ev := range []Event{Move(onBall(gamemath.V3(1, 0, 1))), Up(onBall(gamemath.Vec3{})), Leave(), Tick()} {
		t.Run(ev.Kind.String(), func(t *testing.T) {
			aim, out := Transition(Aim{}, ev, ball, testConfig)
			assert.Equal(t, Aim{}, aim)
			assert.Equal(t, Outcome{}, out)
		})
	}
}

func TestTransitionMoveTracksLatestPoint(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	aim, _ := Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, testConfig)

	points := []gamemath.Vec3{
		gamemath.V3(0.5, 0, 0.5),
		gamemath.V3(1, 0, 2),
		gamemath.V3(-3, 0, 0.25),
	}
	for _, p := range points {
		aim, _ = Transition(aim, Move(offBall(p)), ball, testConfig)
		require.True(t, aim.Aiming())
		assert.Equal(t, p, aim.Drag.Current)
		assert.Equal(t, gamemath.V3(0, 1, 0), aim.Drag.Anchor, "moves never touch the anchor")
	}
}

func TestTransitionFrameTickRefreshesAnchor(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	aim, _ := Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, testConfig)

	ball.Publish(gamemath.V3(0.5, 1.2, -0.5))
	assert.Equal(t, gamemath.V3(0, 1, 0), aim.Drag.Anchor, "anchor only moves on a frame tick")

	aim, out := Transition(aim, Tick(), ball, testConfig)
	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, gamemath.V3(0.5, 1, -0.5), aim.Drag.Anchor)
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	before, _ := Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, testConfig)
	snapshot := *before.Drag

	after, _ := Transition(before, Move(offBall(gamemath.V3(5, 0, 5))), ball, testConfig)

	assert.Equal(t, snapshot, *before.Drag)
	assert.NotSame(t, before.Drag, after.Drag)
}

func TestTransitionPointerUpFires(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	aim, _ := Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, testConfig)
	aim, _ = Transition(aim, Move(offBall(gamemath.V3(2, 0, 3))), ball, testConfig)

	aim, out := Transition(aim, Up(offBall(gamemath.V3(2, 0, 3))), ball, testConfig)

	assert.Equal(t, Aim{}, aim)
	assert.True(t, out.Fired)
	assert.True(t, out.GrabEnded)
	assert.True(t, out.Impulse.ApproxEqual(gamemath.V3(-4.8, 2.4, -7.2), 1e-9))
}

func TestTransitionPointerUpTakesReleasePoint(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	aim, _ := Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, testConfig)

	_, out := Transition(aim, Up(offBall(gamemath.V3(2, 0, 3))), ball, testConfig)
	require.True(t, out.Fired)
	assert.True(t, out.Impulse.ApproxEqual(gamemath.V3(-4.8, 2.4, -7.2), 1e-9))

	aim, _ = Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, testConfig)
	aim, _ = Transition(aim, Move(offBall(gamemath.V3(2, 0, 3))), ball, testConfig)
	_, out = Transition(aim, Up(Pointer{Ground: gamemath.V3(9, 0, 9)}), ball, testConfig)
	require.True(t, out.Fired)
	assert.True(t, out.Impulse.ApproxEqual(gamemath.V3(-4.8, 2.4, -7.2), 1e-9), "release without a hit list keeps the last move")
}

func TestTransitionMaxImpulse(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	cfg := testConfig
	cfg.MaxImpulse = 3

	aim, _ := Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, cfg)
	aim, _ = Transition(aim, Move(offBall(gamemath.V3(0, 1, 10))), ball, cfg)
	_, out := Transition(aim, Up(offBall(gamemath.V3(0, 1, 10))), ball, cfg)

	assert.InDelta(t, 3, out.Impulse.Length(), 1e-9)
	assert.True(t, out.Impulse.ApproxEqual(gamemath.V3(0, 0, -3), 1e-9))
}

func TestTransitionPointerLeave(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))

	t.Run("keeps drag by default", func(t *testing.T) {
		aim, _ := Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, testConfig)
		next, out := Transition(aim, Leave(), ball, testConfig)
		assert.True(t, next.Aiming())
		assert.Equal(t, Outcome{}, out)
	})

	t.Run("cancels when configured", func(t *testing.T) {
		cfg := testConfig
		cfg.CancelOnLeave = true
		aim, _ := Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, cfg)
		next, out := Transition(aim, Leave(), ball, cfg)
		assert.Equal(t, Aim{}, next)
		assert.True(t, out.Cancelled)
		assert.True(t, out.GrabEnded)
		assert.False(t, out.Fired)
	})
}

func TestTransitionSecondPointerDownWhileAiming(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	aim, _ := Transition(Aim{}, Down(onBall(gamemath.Vec3{})), ball, testConfig)
	aim, _ = Transition(aim, Move(offBall(gamemath.V3(1, 0, 1))), ball, testConfig)

	next, out := Transition(aim, Down(onBall(gamemath.V3(9, 0, 9))), ball, testConfig)
	assert.Equal(t, aim, next)
	assert.Equal(t, Outcome{}, out)
}

func TestTransitionAimingWithoutDragIsIdle(t *testing.T) {
	ball, _ := newRegisteredBall(gamemath.V3(0, 1, 0))
	broken := Aim{Phase: AimAiming}

	aim, out := Transition(broken, Up(offBall(gamemath.Vec3{})), ball, testConfig)
	assert.Equal(t, Aim{}, aim)
	assert.False(t, out.Fired)
}
