package systems

import (
	"github.com/automoto/putputputty/archetypes"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/interaction"
	"github.com/automoto/putputputty/logger"
	"github.com/automoto/putputputty/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ballBody exposes a ball entity's physics to the aim core.
type ballBody struct {
	entry *donburi.Entry
}

func (b ballBody) SetVelocity(v gamemath.Vec3) {
	phys := components.Physics.Get(b.entry)
	phys.Velocity = v
	phys.Resting = false
	phys.Grounded = v.Y <= 0 && phys.Grounded
}

func (b ballBody) AtRest() bool {
	if !b.entry.Valid() {
		return false
	}
	return components.Physics.Get(b.entry).Resting && !components.Ball.Get(b.entry).Sunk
}

// grabIndicator retargets the ball's ring tweens when a drag starts or ends.
type grabIndicator struct {
	entry *donburi.Entry
}

func (g grabIndicator) SetGrabbing(grabbing bool) {
	if !g.entry.Valid() {
		return
	}
	ind := components.Indicator.Get(g.entry)
	startIndicatorFade(ind, grabbing)
	if grabbing {
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// SetupInteraction creates the aim core for the course in ecs and registers
// the ball with it. Call after factory.CreateCourse.
func SetupInteraction(ecs *ecs.ECS) *interaction.State {
	controller := interaction.NewBallController(cfg.Shot.RequireRest)

	ballEntry, ok := tags.Ball.First(ecs.World)
	if ok {
		ball := components.Ball.Get(ballEntry)
		controller.Register(ballBody{entry: ballEntry}, interaction.BodyHits(ball.ID))
		controller.Publish(components.Physics.Get(ballEntry).Position)
	}

	state := interaction.NewState(controller, cfg.ChaseCamera(), cfg.AimConfig())
	if ok {
		state.SetIndicator(grabIndicator{entry: ballEntry})
	}

	entry := archetypes.Interaction.Spawn(ecs)
	components.Interaction.SetValue(entry, components.InteractionData{State: state})
	return state
}

// GetInteraction returns the course's interaction data, nil before setup.
func GetInteraction(ecs *ecs.ECS) *components.InteractionData {
	entry, ok := components.Interaction.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Interaction.Get(entry)
}

// UpdateInteraction feeds this frame's pointer events through the aim core
// and acts on what came out.
func UpdateInteraction(ecs *ecs.ECS) {
	data := GetInteraction(ecs)
	if data == nil || data.State == nil {
		return
	}

	if pause := GetOrCreatePause(ecs); pause.IsPaused {
		data.Pending = data.Pending[:0]
		data.State.Cancel()
		return
	}

	input := getOrCreateInput(ecs)
	if input.Pointer.Inside {
		p := ResolvePointer(ecs, input.Pointer.X, input.Pointer.Y)
		data.Hover = data.State.Ball.Intersects(p)
	} else {
		data.Hover = false
	}

	outs := data.State.Tick(data.Pending)
	data.Pending = data.Pending[:0]
	data.LastOutcomes = outs

	for _, out := range outs {
		handleOutcome(ecs, out)
	}
}

func handleOutcome(ecs *ecs.ECS, out interaction.Outcome) {
	log := logger.L()
	switch {
	case out.Miss != interaction.MissNone:
		log.Debug("press ignored", zap.String("reason", out.Miss.String()))
	case out.GrabStarted:
		log.Debug("aim started")
	case out.Cancelled:
		log.Debug("aim cancelled")
	case out.Fired:
		power := gamemath.PowerRatio(out.Impulse, cfg.Shot.FullPower)
		log.Info("shot",
			zap.Float64("x", out.Impulse.X),
			zap.Float64("y", out.Impulse.Y),
			zap.Float64("z", out.Impulse.Z),
			zap.Float64("power", power),
		)
		if card := GetScorecard(ecs); card != nil {
			card.Strokes++
		}
		PlaySFXScaled(ecs, cfg.SoundPutt, power)
	}
}
