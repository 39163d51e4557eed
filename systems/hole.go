package systems

import (
	"github.com/automoto/putputputty/assets"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/logger"
	"github.com/automoto/putputputty/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateHole drops the ball into the cup when it rolls over the hole slowly
// enough, and returns it to its last resting spot with a penalty when it
// falls off the course.
func UpdateHole(ecs *ecs.ECS) {
	card := GetScorecard(ecs)
	if card == nil || card.Complete {
		return
	}

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		phys := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if ball.Sunk {
			return
		}

		if phys.Position.Y < cfg.Physics.KillHeight {
			card.Penalties += cfg.Course.PenaltyStrokes
			logger.L().Info("ball out of bounds",
				zap.Int("strokes", card.Strokes),
				zap.Int("penalties", card.Penalties),
			)
			ResetBall(ecs, e, ball.LastRest)
			PlaySFX(ecs, cfg.SoundPenalty)
			return
		}

		// resolv broadphase, then the exact distance test on the XZ plane.
		if obj.Check(0, 0, tags.ResolvHole) == nil {
			return
		}
		hole, ok := tags.Hole.First(ecs.World)
		if !ok {
			return
		}
		h := components.Hole.Get(hole)
		if phys.Position.Sub(h.Position).HorizontalLength() > h.Radius {
			return
		}
		if !phys.Grounded || phys.Velocity.HorizontalLength() > cfg.Course.SinkSpeed {
			return
		}

		sinkBall(ecs, e, h, card)
	})
}

func sinkBall(ecs *ecs.ECS, e *donburi.Entry, hole *components.HoleData, card *components.ScorecardData) {
	ball := components.Ball.Get(e)
	phys := components.Physics.Get(e)

	ball.Sunk = true
	phys.Velocity.X, phys.Velocity.Z = 0, 0
	phys.Position = hole.Position.WithY(-ball.Radius)
	phys.Resting = false

	card.Complete = true
	card.CompleteTimer = cfg.Course.CompleteDelay

	if course := GetCurrentCourse(ecs); course != nil {
		card.NewBest = RecordStrokes(course.Name, card.Total())
		card.Best = BestStrokes(course.Name)
		logger.L().Info("hole complete",
			zap.String("course", course.Name),
			zap.Int("strokes", card.Strokes),
			zap.Int("penalties", card.Penalties),
			zap.Int("par", card.Par),
			zap.Bool("new_best", card.NewBest),
		)
	}

	if data := GetInteraction(ecs); data != nil && data.State != nil {
		data.State.Cancel()
		data.State.Ball.Publish(phys.Position)
	}
	PlaySFX(ecs, cfg.SoundCup)
}

// ResetBall teleports the ball to pos, stops it and snaps the camera.
func ResetBall(ecs *ecs.ECS, e *donburi.Entry, pos gamemath.Vec3) {
	ball := components.Ball.Get(e)
	phys := components.Physics.Get(e)

	phys.Position = pos
	phys.Velocity = gamemath.Vec3{}
	phys.Grounded = true
	phys.Resting = true
	phys.Impact = 0
	ball.Sunk = false
	ball.LastRest = pos

	syncObject(components.Object.Get(e), getSpaceFrame(ecs), pos, ball.Radius)
	if data := GetInteraction(ecs); data != nil && data.State != nil {
		data.State.Reset(pos)
	}
}

// UpdateCourseKeys handles the in-course shortcuts: reset to the tee and
// skip to the next course.
func UpdateCourseKeys(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionResetBall).JustPressed {
		course := GetCurrentCourse(ecs)
		ballEntry, ok := tags.Ball.First(ecs.World)
		if course == nil || !ok {
			return
		}
		card := GetScorecard(ecs)
		card.Strokes, card.Penalties = 0, 0
		ResetBall(ecs, ballEntry, course.Tee)
		logger.L().Debug("ball reset to tee", zap.String("course", course.Name))
	}
}

// NextCourseRequested reports whether the skip key was pressed this frame.
func NextCourseRequested(ecs *ecs.ECS) bool {
	return GetAction(getOrCreateInput(ecs), cfg.ActionNextCourse).JustPressed
}

// GetScorecard returns the current course's scorecard, nil outside a course.
func GetScorecard(ecs *ecs.ECS) *components.ScorecardData {
	entry, ok := components.Scorecard.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Scorecard.Get(entry)
}

// GetCurrentCourse returns the loaded course, nil outside a course.
func GetCurrentCourse(ecs *ecs.ECS) *assets.Course {
	entry, ok := components.Course.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Course.Get(entry).Current
}

// UpdateScorecard counts down after the ball drops. It reports true once
// the scorecard should be shown.
func UpdateScorecard(ecs *ecs.ECS) bool {
	card := GetScorecard(ecs)
	if card == nil || !card.Complete {
		return false
	}
	if card.CompleteTimer > 0 {
		card.CompleteTimer--
		return false
	}
	return true
}
