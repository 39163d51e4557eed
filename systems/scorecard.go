package systems

import (
	"fmt"

	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateScorecardScreen creates the result screen system: Enter plays
// the next course, R replays this one, Esc returns to the menu.
func NewUpdateScorecardScreen(sceneChanger SceneChanger, createNextScene, createReplayScene, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createNextScene())
		case GetAction(input, cfg.ActionResetBall).JustPressed:
			sceneChanger.ChangeScene(createReplayScene())
		case GetAction(input, cfg.ActionMenuBack).JustPressed:
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// MenuSelectPressed reports whether the select key went down this frame.
func MenuSelectPressed(e *ecs.ECS) bool {
	return GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed
}

// DrawScorecard renders the course result over the frozen course.
func DrawScorecard(e *ecs.ECS, screen *ebiten.Image) {
	card := GetScorecard(e)
	course := GetCurrentCourse(e)
	if card == nil || course == nil {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Scorecard.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := card.Result()
	text.Draw(screen, title, titleFont, (width-textWidth(titleFont, title))/2, int(cfg.Scorecard.TitleY), cfg.Scorecard.TitleColor)

	bold := fonts.Bold.Get()
	lines := []string{
		course.Title,
		fmt.Sprintf("Strokes %d   Par %d", card.Strokes, card.Par),
	}
	if card.Penalties > 0 {
		lines = append(lines, fmt.Sprintf("Penalties %d   Total %d", card.Penalties, card.Total()))
	}
	switch {
	case card.NewBest:
		lines = append(lines, "New best!")
	case card.Best > 0:
		lines = append(lines, fmt.Sprintf("Best %d", card.Best))
	}
	for i, l := range lines {
		y := int(cfg.Scorecard.MessageY) + i*cfg.HUD.LineHeight*3/2
		text.Draw(screen, l, bold, (width-textWidth(bold, l))/2, y, cfg.Scorecard.TextColor)
	}

	small := fonts.Small.Get()
	hint := cfg.Scorecard.Hint
	text.Draw(screen, hint, small, (width-textWidth(small, hint))/2, int(cfg.Scorecard.HintY)+len(lines)*cfg.HUD.LineHeight, cfg.Scorecard.HintColor)
}
