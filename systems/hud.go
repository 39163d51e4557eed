package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/fonts"
	"github.com/automoto/putputputty/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the course name, stroke count and shot power.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	course := GetCurrentCourse(ecs)
	card := GetScorecard(ecs)
	if course == nil || card == nil {
		return
	}

	margin := cfg.HUD.Margin
	line := cfg.HUD.LineHeight
	face := fonts.Bold.Get()
	small := fonts.Regular.Get()

	drawShadowText(screen, course.Title, face, margin, margin+line, cfg.HUD.TextColor)

	strokes := fmt.Sprintf("Strokes %d   Par %d", card.Strokes, card.Par)
	if card.Penalties > 0 {
		strokes += fmt.Sprintf("   Penalty +%d", card.Penalties)
	}
	drawShadowText(screen, strokes, small, margin, margin+2*line, cfg.HUD.TextColor)

	if card.Best > 0 {
		drawShadowText(screen, fmt.Sprintf("Best %d", card.Best), small, margin, margin+3*line, cfg.HUD.TextColor)
	}

	data := GetInteraction(ecs)
	if data == nil || data.State == nil {
		return
	}
	if drag, ok := data.State.Drag(); ok {
		impulse := gamemath.ClampLength(
			gamemath.ComputeImpulse(drag.Anchor, drag.Current, data.State.Config.Multiplier),
			data.State.Config.MaxImpulse,
		)
		power := fmt.Sprintf("Power %3.0f%%", 100*gamemath.PowerRatio(impulse, cfg.Shot.FullPower))
		x := screen.Bounds().Dx() - margin - textWidth(small, power)
		drawShadowText(screen, power, small, x, margin+line, cfg.HUD.TextColor)
	}
}

func drawShadowText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, x, y, clr)
}

// textWidth returns the advance of s in pixels.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
