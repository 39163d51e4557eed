package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/fonts"
	"github.com/automoto/putputputty/interaction"
	"github.com/automoto/putputputty/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// debugMapScale shrinks the resolv space into the corner minimap.
const debugMapScale = 0.25

// UpdateSettings toggles the debug overlay.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if
// needed. The overlay starts on when requested on the command line.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{Debug: cfg.Debug.Overlay})
	}
	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// DrawDebug draws the resolv space as a minimap plus the aim and input
// state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	width := float64(screen.Bounds().Dx())
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		// Width and Height count cells.
		mapW := float64(space.Width()*space.CellWidth) * debugMapScale
		mapH := float64(space.Height()*space.CellHeight) * debugMapScale
		ox := width - mapW - float64(cfg.HUD.Margin)
		oy := float64(cfg.HUD.Margin) + 40

		vector.FillRect(screen, float32(ox), float32(oy),
			float32(mapW), float32(mapH),
			color.RGBA{0, 0, 0, 120}, false)

		for _, obj := range space.Objects() {
			x := ox + obj.X*debugMapScale
			y := oy + obj.Y*debugMapScale
			w := obj.W * debugMapScale
			h := obj.H * debugMapScale

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvBumper) {
				c = color.RGBA{255, 140, 0, 255} // Orange
			} else if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvBall) {
				c = color.RGBA{255, 255, 255, 255} // White
			} else if obj.HasTags(tags.ResolvHole) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
		}
	}

	lines := debugLines(ecs)
	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - cfg.HUD.Margin - (len(lines)-1)*14
	for i, l := range lines {
		drawShadowText(screen, l, face, cfg.HUD.Margin, y+i*14, cfg.Yellow)
	}
}

func debugLines(ecs *ecs.ECS) []string {
	var lines []string

	input := getOrCreateInput(ecs)
	p := input.Pointer
	lines = append(lines, fmt.Sprintf("pointer %.0f,%.0f down=%v inside=%v", p.X, p.Y, p.Down, p.Inside))

	var held []string
	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		if input.Current[id] {
			held = append(held, cfg.ActionNames[id])
		}
	}
	lines = append(lines, "actions "+strings.Join(held, " "))

	data := GetInteraction(ecs)
	if data == nil || data.State == nil {
		return lines
	}
	st := data.State
	lines = append(lines,
		fmt.Sprintf("aim %s  camera %s  can_shoot=%v", st.Aim.Phase, st.Camera.Policy, st.Ball.CanShoot()),
		fmt.Sprintf("ball %.2f %.2f %.2f", st.Ball.Position().X, st.Ball.Position().Y, st.Ball.Position().Z),
	)
	if drag, ok := st.Drag(); ok {
		lines = append(lines, fmt.Sprintf("anchor %.2f %.2f %.2f  current %.2f %.2f %.2f",
			drag.Anchor.X, drag.Anchor.Y, drag.Anchor.Z, drag.Current.X, drag.Current.Y, drag.Current.Z))
	}
	for _, out := range data.LastOutcomes {
		if out.Miss != interaction.MissNone {
			lines = append(lines, "miss "+out.Miss.String())
		}
	}

	if ballEntry, ok := tags.Ball.First(ecs.World); ok {
		phys := components.Physics.Get(ballEntry)
		lines = append(lines, fmt.Sprintf("vel %.2f %.2f %.2f grounded=%v resting=%v",
			phys.Velocity.X, phys.Velocity.Y, phys.Velocity.Z, phys.Grounded, phys.Resting))
	}
	return lines
}
