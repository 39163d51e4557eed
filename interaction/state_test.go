package interaction

import (
	"testing"

	"github.com/automoto/putputputty/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(at gamemath.Vec3) (*State, *fakeBody, *recordingIndicator) {
	ball, body := newRegisteredBall(at)
	s := NewState(ball, ChaseCamera{Offset: gamemath.V3(0, 18, 12)}, testConfig)
	ind := &recordingIndicator{}
	s.SetIndicator(ind)
	return s, body, ind
}

// Ball at rest at the tee, drag from the ball out to (2,1,3) on screen which
// lands on the ground at (2,0,3), release.
func TestScenarioSimpleShot(t *testing.T) {
	s, body, ind := newTestState(gamemath.V3(0, 1, 0))

	outs := s.Tick([]Event{Down(onBall(gamemath.V3(0, 0, 0)))})
	require.Len(t, outs, 1)
	assert.True(t, outs[0].GrabStarted)

	s.Tick([]Event{Move(offBall(gamemath.V3(2, 0, 3)))})
	drag, ok := s.Drag()
	require.True(t, ok)
	assert.Equal(t, gamemath.V3(0, 1, 0), drag.Anchor)
	assert.Equal(t, gamemath.V3(2, 0, 3), drag.Current)

	outs = s.Tick([]Event{Up(offBall(gamemath.V3(2, 0, 3)))})
	require.Len(t, outs, 1)
	assert.True(t, outs[0].Fired)

	assert.True(t, body.velocity.ApproxEqual(gamemath.V3(-4.8, 2.4, -7.2), 1e-9))
	assert.Equal(t, 1, body.sets)
	assert.Equal(t, AimIdle, s.Aim.Phase)
	_, ok = s.Drag()
	assert.False(t, ok, "no aim line after release")
	assert.Equal(t, []bool{true, false}, ind.calls)
}

func TestScenarioMissedPointerDown(t *testing.T) {
	s, body, ind := newTestState(gamemath.V3(0, 1, 0))

	outs := s.Tick([]Event{
		Down(offBall(gamemath.V3(4, 0, 4))),
		Move(offBall(gamemath.V3(5, 0, 5))),
		Up(offBall(gamemath.V3(5, 0, 5))),
	})

	assert.Equal(t, MissNoHit, outs[0].Miss)
	for _, out := range outs {
		assert.False(t, out.Fired)
		assert.False(t, out.GrabStarted)
	}
	assert.Nil(t, s.Aim.Drag)
	assert.Zero(t, body.sets, "no impulse for a missed gesture")
	assert.Empty(t, ind.calls)
}

func TestScenarioBallMovesDuringDrag(t *testing.T) {
	s, body, _ := newTestState(gamemath.V3(0, 1, 0))

	s.Tick([]Event{Down(onBall(gamemath.Vec3{}))})
	s.Tick([]Event{Move(offBall(gamemath.V3(0, 0, 2)))})

	// Nudged by something else while the player is still aiming.
	s.Ball.Publish(gamemath.V3(1, 1, -1))
	s.Tick(nil)

	drag, ok := s.Drag()
	require.True(t, ok)
	assert.Equal(t, gamemath.V3(1, 1, -1), drag.Anchor)

	s.Tick([]Event{Up(offBall(gamemath.V3(0, 0, 2)))})

	want := gamemath.ComputeImpulse(gamemath.V3(1, 1, -1), gamemath.V3(0, 0, 2), 2.4)
	assert.True(t, body.velocity.ApproxEqual(want, 1e-9))
	assert.True(t, body.velocity.ApproxEqual(gamemath.V3(2.4, 2.4, -7.2), 1e-9))
}

func TestScenarioBallMovesInReleaseFrame(t *testing.T) {
	s, body, _ := newTestState(gamemath.V3(0, 1, 0))

	s.Tick([]Event{Down(onBall(gamemath.Vec3{})), Move(offBall(gamemath.V3(0, 0, 2)))})

	// Physics publishes before the interaction tick of the same frame.
	s.Ball.Publish(gamemath.V3(3, 1, 0))
	outs := s.Tick([]Event{Move(offBall(gamemath.V3(0, 0, 2))), Up(offBall(gamemath.V3(0, 0, 2)))})

	require.Len(t, outs, 2)
	assert.True(t, outs[1].Fired)
	assert.True(t, body.velocity.ApproxEqual(gamemath.V3(7.2, 2.4, -4.8), 1e-9))
}

func TestScenarioRepeatedDrags(t *testing.T) {
	s, body, ind := newTestState(gamemath.V3(0, 1, 0))

	for i := 0; i < 3; i++ {
		s.Tick([]Event{Down(onBall(s.Ball.Position().WithY(0)))})
		require.True(t, s.Aim.Aiming(), "drag %d should start", i)

		s.Tick([]Event{Move(offBall(gamemath.V3(0, 0, 1)))})
		s.Tick([]Event{Up(offBall(gamemath.V3(0, 0, 1)))})
		assert.Equal(t, AimIdle, s.Aim.Phase)
		assert.Nil(t, s.Aim.Drag)
	}
	assert.Equal(t, 3, body.sets)
	assert.Equal(t, []bool{true, false, true, false, true, false}, ind.calls)
}

func TestStateTickUpdatesPose(t *testing.T) {
	s, _, _ := newTestState(gamemath.V3(0, 1, 0))
	assert.Equal(t, Pose{Position: gamemath.V3(0, 19, 12), LookAt: gamemath.V3(0, 1, 0)}, s.Pose)

	s.Ball.Publish(gamemath.V3(2, 1, 2))
	s.Tick(nil)
	assert.Equal(t, Pose{Position: gamemath.V3(2, 19, 14), LookAt: gamemath.V3(2, 1, 2)}, s.Pose)

	s.Tick(nil)
	assert.Equal(t, Pose{Position: gamemath.V3(2, 19, 14), LookAt: gamemath.V3(2, 1, 2)}, s.Pose)
}

func TestStateUnregisteredBallNoOps(t *testing.T) {
	s := NewState(NewBallController(true), ChaseCamera{Offset: gamemath.V3(0, 18, 12)}, testConfig)

	outs := s.Tick([]Event{Down(onBall(gamemath.Vec3{})), Up(onBall(gamemath.Vec3{}))})
	assert.Equal(t, MissUnregistered, outs[0].Miss)
	assert.False(t, outs[1].Fired)
	assert.False(t, s.Aim.Aiming())
}

func TestStateUnregisteredMidDragDoesNotFire(t *testing.T) {
	s, body, ind := newTestState(gamemath.V3(0, 1, 0))
	s.Tick([]Event{Down(onBall(gamemath.Vec3{})), Move(offBall(gamemath.V3(2, 0, 3)))})

	s.Ball.Unregister()
	outs := s.Tick([]Event{Up(offBall(gamemath.V3(2, 0, 3)))})

	require.Len(t, outs, 1)
	assert.False(t, outs[0].Fired)
	assert.Equal(t, gamemath.Vec3{}, outs[0].Impulse)
	assert.True(t, outs[0].GrabEnded)
	assert.Zero(t, body.sets)
	assert.False(t, s.Aim.Aiming())
	assert.Equal(t, []bool{true, false}, ind.calls)
}

func TestStateCancelAndReset(t *testing.T) {
	s, body, ind := newTestState(gamemath.V3(0, 1, 0))
	s.Tick([]Event{Down(onBall(gamemath.Vec3{}))})

	s.Cancel()
	assert.False(t, s.Aim.Aiming())
	assert.Equal(t, []bool{true, false}, ind.calls)

	s.Cancel()
	assert.Len(t, ind.calls, 2, "cancel without a drag is a no-op")

	s.Reset(gamemath.V3(3, 1, 3))
	assert.Equal(t, gamemath.V3(3, 1, 3), s.Ball.Position())
	assert.Equal(t, gamemath.V3(3, 1, 3), s.Pose.LookAt)
	assert.Zero(t, body.sets)
}
