package systems

import (
	"os"

	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
		}
	}

	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuExit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(ecs, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuRestart, components.MenuMainMenu:
			pause.IsPaused = false
			pause.Chosen = pause.SelectedOption
			pause.HasChosen = true
		case components.MenuExit:
			SaveCurrentSettings()
			os.Exit(0)
		}
	}
}

// TakePauseChoice returns and clears the option picked this frame.
func TakePauseChoice(ecs *ecs.ECS) (components.PauseMenuOption, bool) {
	pause := GetOrCreatePause(ecs)
	if !pause.HasChosen {
		return components.MenuResume, false
	}
	pause.HasChosen = false
	return pause.Chosen, true
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		x := int((width - float64(textWidth(fontFace, option))) / 2)
		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	hintFont := fonts.Small.Get()
	hintX := int((width - float64(textWidth(hintFont, hint))) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or once
// the ball has dropped.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if card := GetScorecard(e); card != nil && card.Complete {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
