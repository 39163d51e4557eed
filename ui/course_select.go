package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/putputputty/assets"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/interaction"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// CourseSelectUI is the main menu: one button per course plus the camera
// and volume switches.
type CourseSelectUI struct {
	UI      *ebitenui.UI
	Courses []assets.Course

	// Callbacks
	OnSelect   func(index int)
	OnSettings func()
	OnQuit     func()

	// Best returns the saved best total for a course name, 0 if none.
	Best func(course string) int
	// Volume reads the current SFX volume; SetVolume changes it.
	Volume    func() float64
	SetVolume func(v float64)

	courseButtons []*widget.Button
	cameraButton  *widget.Button
	volumeButton  *widget.Button
	statusLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewCourseSelectUI creates the menu. Callbacks may be set afterwards but
// before the first Update.
func NewCourseSelectUI(courses []assets.Course, onSelect func(int), onQuit func()) *CourseSelectUI {
	cui := &CourseSelectUI{
		Courses:  courses,
		OnSelect: onSelect,
		OnQuit:   onQuit,
	}

	cui.loadFonts()
	cui.buildUI()

	return cui
}

func (cui *CourseSelectUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	cui.titleFace = &text.GoTextFace{Source: bold, Size: 36}
	cui.normalFace = &text.GoTextFace{Source: regular, Size: 16}
	cui.smallFace = &text.GoTextFace{Source: regular, Size: 12}
}

func (cui *CourseSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(cfg.Menu.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &cui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Subtitle, &cui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	for i := range cui.Courses {
		idx := i // Capture for closure
		button := cui.newButton(cui.courseLabel(i), func() {
			if cui.OnSelect != nil {
				cui.OnSelect(idx)
			}
		})
		cui.courseButtons = append(cui.courseButtons, button)
		contentContainer.AddChild(button)
	}

	contentContainer.AddChild(cui.buildSettingsRow())

	contentContainer.AddChild(cui.newButton("Quit", func() {
		if cui.OnQuit != nil {
			cui.OnQuit()
		}
	}))

	cui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 120, 255},
		}),
	)
	contentContainer.AddChild(cui.statusLabel)

	rootContainer.AddChild(contentContainer)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *CourseSelectUI) buildSettingsRow() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(cfg.Menu.Spacing),
		)),
	)

	cui.cameraButton = cui.newSmallButton(cameraLabel(), func() {
		if cfg.Camera.Policy == interaction.PolicyLookAt {
			cfg.Camera.Policy = interaction.PolicyFixedPitch
		} else {
			cfg.Camera.Policy = interaction.PolicyLookAt
		}
		cui.settingsChanged()
	})
	container.AddChild(cui.cameraButton)

	cui.volumeButton = cui.newSmallButton(cui.volumeLabel(), func() {
		if cui.Volume == nil || cui.SetVolume == nil {
			return
		}
		cui.SetVolume(cfg.NextVolumeStep(cui.Volume(), cfg.Save.VolumeSteps))
		cui.settingsChanged()
	})
	container.AddChild(cui.volumeButton)

	return container
}

func (cui *CourseSelectUI) settingsChanged() {
	cui.UpdateUI()
	if cui.OnSettings != nil {
		cui.OnSettings()
	}
}

func (cui *CourseSelectUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
		),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(label, &cui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.ButtonText,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (cui *CourseSelectUI) newSmallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize((cfg.Menu.ButtonWidth-cfg.Menu.Spacing)/2, cfg.Menu.ButtonHeight-10),
		),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text(label, &cui.smallFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.ButtonText,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (cui *CourseSelectUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (cui *CourseSelectUI) courseLabel(i int) string {
	c := cui.Courses[i]
	label := fmt.Sprintf("%d. %s  (par %d)", i+1, c.Title, c.Par)
	if cui.Best != nil {
		if best := cui.Best(c.Name); best > 0 {
			label += fmt.Sprintf("  best %d", best)
		}
	}
	return label
}

func cameraLabel() string {
	return "Camera: " + cfg.Camera.Policy.String()
}

func (cui *CourseSelectUI) volumeLabel() string {
	if cui.Volume == nil {
		return "Sound"
	}
	return fmt.Sprintf("Sound: %.0f%%", 100*cui.Volume())
}

// SetStatus shows a one-line message under the buttons.
func (cui *CourseSelectUI) SetStatus(msg string) {
	cui.statusLabel.Label = msg
}

// UpdateUI refreshes button labels from the current settings and scores.
func (cui *CourseSelectUI) UpdateUI() {
	for i, b := range cui.courseButtons {
		if textWidget := b.Text(); textWidget != nil {
			textWidget.Label = cui.courseLabel(i)
		}
	}
	if textWidget := cui.cameraButton.Text(); textWidget != nil {
		textWidget.Label = cameraLabel()
	}
	if textWidget := cui.volumeButton.Text(); textWidget != nil {
		textWidget.Label = cui.volumeLabel()
	}
}

func (cui *CourseSelectUI) Update() {
	cui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !cui.initialized {
		cui.initialized = true
		cui.UpdateUI()
	}
}
