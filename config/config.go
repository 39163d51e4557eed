package config

import (
	"image/color"
	"math"

	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/interaction"
)

// ShotConfig contains aiming and launch tuning
type ShotConfig struct {
	Multiplier    float64 // impulse per unit of drag
	MaxImpulse    float64 // <= 0 disables the cap
	CancelOnLeave bool    // drop the drag when the pointer leaves the window
	RequireRest   bool    // only allow a new shot once the ball has stopped
	AimHeight     float64 // Y the drag anchor is pinned to
	FullPower     float64 // impulse length drawn as a full power arrow
	ArrowLength   float64 // world units of the arrow at full power
}

// BallConfig contains ball body configuration
type BallConfig struct {
	Radius            float64
	Mass              float64
	LinearDamping     float64 // fraction of speed lost per second
	WallRestitution   float64
	GroundRestitution float64
	RestSpeed         float64 // below this the ball is considered stopped
	MaxSpeed          float64 // per-axis cap after a wall bounce
	PickSlop          float64 // extra pick radius so small balls are easy to grab
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	Gravity      float64
	StopBounce   float64 // vertical bounce speeds below this are dropped
	MaxSubsteps  int
	SubstepLimit float64 // max world units travelled per substep
	SpaceScale   float64 // resolv pixels per world unit
	CellSize     int     // resolv cell size in pixels
	KillHeight   float64 // below this Y the ball is out of bounds
}

// CameraConfig contains chase camera configuration
type CameraConfig struct {
	Policy   interaction.CameraPolicy
	Offset   gamemath.Vec3
	PitchDeg float64
	FovDeg   float64
}

// Pitch returns the fixed pitch in radians.
func (c CameraConfig) Pitch() float64 {
	return c.PitchDeg * math.Pi / 180
}

// Fov returns the vertical field of view in radians.
func (c CameraConfig) Fov() float64 {
	return c.FovDeg * math.Pi / 180
}

// CourseConfig contains course loading and rules
type CourseConfig struct {
	PixelsPerUnit  float64 // Tiled pixels per world unit
	HoleRadius     float64
	SinkSpeed      float64 // max speed at which the ball drops into the cup
	DefaultPar     int
	PenaltyStrokes int // added when the ball leaves the course
	WallHeight     float64
	CompleteDelay  int // frames between sinking and the scorecard
}

// RenderConfig contains the colors of the 3D scene
type RenderConfig struct {
	Background  color.RGBA
	Ground      color.RGBA
	GroundGrid  color.RGBA
	Wall        color.RGBA
	WallTop     color.RGBA
	Ball        color.RGBA
	BallShadow  color.RGBA
	Hole        color.RGBA
	Flag        color.RGBA
	AimLine     color.RGBA
	PowerLow    color.RGBA
	PowerHigh   color.RGBA
	GrabRing    color.RGBA
	GridStep    float64
	LineWidth   float32
	CircleSteps int
}

// HUDConfig contains heads-up display values
type HUDConfig struct {
	TextColor   color.RGBA
	ShadowColor color.RGBA
	Margin      int
	LineHeight  int
}

// IndicatorConfig contains grab indicator tween timings in frames
type IndicatorConfig struct {
	FadeInFrames  float32
	FadeOutFrames float32
	PulseFrames   float32
	RingScale     float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonText      color.RGBA
	ButtonWidth     int
	ButtonHeight    int
	Spacing         int
	Title           string
	Subtitle        string
}

// ScorecardConfig contains course complete screen values
type ScorecardConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool   // start the first course directly
	Course   string // course name to start with SkipMenu
	Overlay  bool   // draw resolv shapes and pointer info
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// Global configuration instances
var C *Config
var Shot ShotConfig
var Ball BallConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Course CourseConfig
var Render RenderConfig
var HUD HUDConfig
var Indicator IndicatorConfig
var Pause PauseConfig
var Menu MenuConfig
var Scorecard ScorecardConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	DarkGreen    = color.RGBA{R: 30, G: 110, B: 50, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// Dt is the simulation step in seconds.
func Dt() float64 {
	return 1 / float64(C.TPS)
}

// AimConfig returns the aim machine settings.
func AimConfig() interaction.AimConfig {
	return interaction.AimConfig{
		Multiplier:    Shot.Multiplier,
		AimHeight:     Shot.AimHeight,
		MaxImpulse:    Shot.MaxImpulse,
		CancelOnLeave: Shot.CancelOnLeave,
	}
}

// ChaseCamera returns the chase camera settings.
func ChaseCamera() interaction.ChaseCamera {
	return interaction.ChaseCamera{
		Policy: Camera.Policy,
		Offset: Camera.Offset,
		Pitch:  Camera.Pitch(),
	}
}

func init() {
	Reset()
}

// Reset restores every tunable to its default. Tests call it between cases.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "PutPutPutty",
		TPS:    60,
	}

	Shot = ShotConfig{
		Multiplier:    2.4,
		MaxImpulse:    0,
		CancelOnLeave: false,
		RequireRest:   true,
		AimHeight:     1.0,
		FullPower:     24,
		ArrowLength:   3,
	}

	Ball = BallConfig{
		Radius:            1.0,
		Mass:              1.0,
		LinearDamping:     0.5,
		WallRestitution:   0.7,
		GroundRestitution: 0.3,
		RestSpeed:         0.08,
		MaxSpeed:          40,
		PickSlop:          0.35,
	}

	Physics = PhysicsConfig{
		Gravity:      9.81,
		StopBounce:   0.5,
		MaxSubsteps:  8,
		SubstepLimit: 0.25,
		SpaceScale:   32,
		CellSize:     16,
		KillHeight:   -6,
	}

	Camera = CameraConfig{
		Policy:   interaction.PolicyLookAt,
		Offset:   gamemath.V3(0, 18, 12),
		PitchDeg: 55,
		FovDeg:   45,
	}

	Course = CourseConfig{
		PixelsPerUnit:  32,
		HoleRadius:     0.6,
		SinkSpeed:      6,
		DefaultPar:     3,
		PenaltyStrokes: 1,
		WallHeight:     2,
		CompleteDelay:  45,
	}

	Render = RenderConfig{
		Background:  color.RGBA{R: 22, G: 28, B: 40, A: 255},
		Ground:      color.RGBA{R: 46, G: 140, B: 70, A: 255},
		GroundGrid:  color.RGBA{R: 70, G: 165, B: 92, A: 255},
		Wall:        color.RGBA{R: 150, G: 105, B: 70, A: 255},
		WallTop:     color.RGBA{R: 205, G: 160, B: 110, A: 255},
		Ball:        White,
		BallShadow:  color.RGBA{R: 0, G: 0, B: 0, A: 90},
		Hole:        Black,
		Flag:        Red,
		AimLine:     White,
		PowerLow:    LightGreen,
		PowerHigh:   Red,
		GrabRing:    Yellow,
		GridStep:    1,
		LineWidth:   2,
		CircleSteps: 24,
	}

	HUD = HUDConfig{
		TextColor:   White,
		ShadowColor: BlackOverlay,
		Margin:      16,
		LineHeight:  22,
	}

	Indicator = IndicatorConfig{
		FadeInFrames:  8,
		FadeOutFrames: 12,
		PulseFrames:   30,
		RingScale:     1.35,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		MenuItemHeight:    30,
		MenuItemGap:       10,
		MenuOptions:       []string{"Resume", "Restart Hole", "Main Menu", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 18, G: 60, B: 36, A: 255},
		TitleColor:      White,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   color.RGBA{R: 40, G: 70, B: 120, A: 255},
		ButtonText:      White,
		ButtonWidth:     260,
		ButtonHeight:    40,
		Spacing:         10,
		Title:           "PutPutPutty",
		Subtitle:        "Pull back on the ball and let go",
	}

	Scorecard = ScorecardConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Yellow,
		TextColor:    White,
		HintColor:    color.RGBA{R: 180, G: 180, B: 180, A: 255},
		TitleY:       170,
		MessageY:     240,
		HintY:        340,
		Hint:         "Enter: next hole   R: replay   Esc: menu",
	}

	Debug = DebugConfig{}

	resetAudio()
	resetInput()
}
