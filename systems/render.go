package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/automoto/putputputty/assets"
	"github.com/automoto/putputputty/components"
	cfg "github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/gamemath"
	"github.com/automoto/putputputty/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// flagHeight is the height of the pin above the green.
const flagHeight = 3.0

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// Reused between frames to avoid allocations
	polyVertices []ebiten.Vertex
	polyIndices  []uint16
	screenPoints [][2]float32
	drawables    []drawable
)

func init() {
	whiteImage.Fill(color.White)
}

// drawable is anything depth sorted before drawing.
type drawable struct {
	depth float64
	draw  func()
}

// DrawCourse renders the green, hole, walls and ball through the chase
// camera, then the aim line and power arrow on top.
func DrawCourse(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	view := components.Camera.Get(cameraEntry).View
	course := GetCurrentCourse(ecs)
	if course == nil {
		return
	}

	drawGround(screen, view, course)
	drawHole(ecs, screen, view)

	drawables = drawables[:0]
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		box := components.Wall.Get(e).Box
		_, _, depth, _ := view.Project(box.Center())
		drawables = append(drawables, drawable{depth: depth, draw: func() { drawBox(screen, view, box) }})
	})
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		phys := components.Physics.Get(e)
		_, _, depth, _ := view.Project(phys.Position)
		drawables = append(drawables, drawable{depth: depth, draw: func() { drawBall(ecs, screen, view, e, course) }})
	})
	// Painter's order: far first.
	sort.SliceStable(drawables, func(i, j int) bool { return drawables[i].depth > drawables[j].depth })
	for _, d := range drawables {
		d.draw()
	}

	drawAim(ecs, screen, view)
}

func drawGround(screen *ebiten.Image, view gamemath.View, course *assets.Course) {
	hw, hd := course.Width/2, course.Depth/2
	fillWorldPolygon(screen, view, []gamemath.Vec3{
		gamemath.V3(-hw, 0, -hd),
		gamemath.V3(hw, 0, -hd),
		gamemath.V3(hw, 0, hd),
		gamemath.V3(-hw, 0, hd),
	}, cfg.Render.Ground)

	step := cfg.Render.GridStep
	if step <= 0 {
		return
	}
	for x := -hw; x <= hw+1e-9; x += step {
		strokeWorldLine(screen, view, gamemath.V3(x, 0, -hd), gamemath.V3(x, 0, hd), 1, cfg.Render.GroundGrid)
	}
	for z := -hd; z <= hd+1e-9; z += step {
		strokeWorldLine(screen, view, gamemath.V3(-hw, 0, z), gamemath.V3(hw, 0, z), 1, cfg.Render.GroundGrid)
	}
}

func drawHole(ecs *ecs.ECS, screen *ebiten.Image, view gamemath.View) {
	entry, ok := tags.Hole.First(ecs.World)
	if !ok {
		return
	}
	hole := components.Hole.Get(entry)
	fillWorldPolygon(screen, view, circlePoints(hole.Position.WithY(0.01), hole.Radius), cfg.Render.Hole)

	base := hole.Position.WithY(0)
	top := base.Add(gamemath.V3(0, flagHeight, 0))
	strokeWorldLine(screen, view, base, top, cfg.Render.LineWidth, cfg.White)
	fillWorldPolygon(screen, view, []gamemath.Vec3{
		top,
		top.Add(gamemath.V3(1.2, -0.35, 0)),
		top.Add(gamemath.V3(0, -0.7, 0)),
	}, cfg.Render.Flag)
}

// boxFace is one quad of a wall with its outward normal.
type boxFace struct {
	normal  gamemath.Vec3
	corners [4]gamemath.Vec3
	top     bool
}

func drawBox(screen *ebiten.Image, view gamemath.View, box assets.Box) {
	lo, hi := box.Min, box.Max
	faces := [5]boxFace{
		{normal: gamemath.V3(0, 1, 0), top: true, corners: [4]gamemath.Vec3{
			{X: lo.X, Y: hi.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z}}},
		{normal: gamemath.V3(0, 0, 1), corners: [4]gamemath.Vec3{
			{X: lo.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z}}},
		{normal: gamemath.V3(0, 0, -1), corners: [4]gamemath.Vec3{
			{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z}, {X: lo.X, Y: hi.Y, Z: lo.Z}}},
		{normal: gamemath.V3(1, 0, 0), corners: [4]gamemath.Vec3{
			{X: hi.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z}}},
		{normal: gamemath.V3(-1, 0, 0), corners: [4]gamemath.Vec3{
			{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: lo.X, Y: lo.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: lo.Z}}},
	}

	for _, f := range faces {
		center := f.corners[0].Add(f.corners[2]).Scale(0.5)
		if f.normal.Dot(view.Eye.Sub(center)) <= 0 {
			continue
		}
		clr := cfg.Render.Wall
		if f.top {
			clr = cfg.Render.WallTop
		} else if f.normal.X != 0 {
			clr = shade(clr, 0.8)
		}
		fillWorldPolygon(screen, view, f.corners[:], clr)
	}
}

func drawBall(ecs *ecs.ECS, screen *ebiten.Image, view gamemath.View, e *donburi.Entry, course *assets.Course) {
	ball := components.Ball.Get(e)
	phys := components.Physics.Get(e)
	if ball.Sunk {
		return
	}

	if course.Contains(phys.Position) && phys.Position.Y >= 0 {
		fillWorldPolygon(screen, view, circlePoints(phys.Position.WithY(0.02), ball.Radius*0.9), cfg.Render.BallShadow)
	}

	x, y, depth, ok := view.Project(phys.Position)
	if !ok {
		return
	}
	r := float32(view.ScaleAt(depth) * ball.Radius)
	vector.FillCircle(screen, float32(x), float32(y), r, cfg.Render.Ball, true)
	vector.StrokeCircle(screen, float32(x), float32(y), r, 1, shade(cfg.Render.Ball, 0.6), true)

	ind := components.Indicator.Get(e)
	if ind.Alpha > 0 {
		ring := r * float32(cfg.Indicator.RingScale) * ind.Scale
		vector.StrokeCircle(screen, float32(x), float32(y), ring, cfg.Render.LineWidth+1, fade(cfg.Render.GrabRing, ind.Alpha), true)
	} else if data := GetInteraction(ecs); data != nil && data.State != nil && data.Hover && data.State.Ball.CanShoot() {
		ring := r * float32(cfg.Indicator.RingScale)
		vector.StrokeCircle(screen, float32(x), float32(y), ring, 1, fade(cfg.Render.GrabRing, 0.4), true)
	}
}

// drawAim draws the pull line at aim height and the arrow showing where
// and how hard the ball will go.
func drawAim(ecs *ecs.ECS, screen *ebiten.Image, view gamemath.View) {
	data := GetInteraction(ecs)
	if data == nil || data.State == nil {
		return
	}
	drag, ok := data.State.Drag()
	if !ok {
		return
	}

	aimHeight := data.State.Config.AimHeight
	strokeWorldLine(screen, view, drag.Anchor, drag.Current.WithY(aimHeight), cfg.Render.LineWidth, cfg.Render.AimLine)

	impulse := gamemath.ClampLength(
		gamemath.ComputeImpulse(drag.Anchor, drag.Current, data.State.Config.Multiplier),
		data.State.Config.MaxImpulse,
	)
	power := gamemath.PowerRatio(impulse, cfg.Shot.FullPower)
	dir := impulse.WithY(0).Normalize()
	if dir == (gamemath.Vec3{}) {
		return
	}

	ball := data.State.Ball.Position().WithY(0.05)
	tip := ball.Add(dir.Scale(cfg.Shot.ArrowLength * math.Max(power, 0.1)))
	clr := lerpColor(cfg.Render.PowerLow, cfg.Render.PowerHigh, power)
	strokeWorldLine(screen, view, ball, tip, cfg.Render.LineWidth+2, clr)

	side := gamemath.V3(-dir.Z, 0, dir.X).Scale(0.35)
	back := tip.Sub(dir.Scale(0.6))
	fillWorldPolygon(screen, view, []gamemath.Vec3{tip, back.Add(side), back.Sub(side)}, clr)
}

// circlePoints returns a horizontal circle around c.
func circlePoints(c gamemath.Vec3, radius float64) []gamemath.Vec3 {
	steps := cfg.Render.CircleSteps
	pts := make([]gamemath.Vec3, steps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = gamemath.V3(c.X+radius*math.Cos(a), c.Y, c.Z+radius*math.Sin(a))
	}
	return pts
}

// fillWorldPolygon projects a convex polygon and fills it. Polygons with a
// corner behind the camera are skipped.
func fillWorldPolygon(screen *ebiten.Image, view gamemath.View, pts []gamemath.Vec3, clr color.RGBA) {
	screenPoints = screenPoints[:0]
	for _, p := range pts {
		x, y, _, ok := view.Project(p)
		if !ok {
			return
		}
		screenPoints = append(screenPoints, [2]float32{float32(x), float32(y)})
	}
	fillPolygon(screen, screenPoints, clr)
}

func fillPolygon(screen *ebiten.Image, pts [][2]float32, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255

	polyVertices = polyVertices[:0]
	polyIndices = polyIndices[:0]
	for _, p := range pts {
		polyVertices = append(polyVertices, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i < len(pts)-1; i++ {
		polyIndices = append(polyIndices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(polyVertices, polyIndices, whiteSubImage, op)
}

func strokeWorldLine(screen *ebiten.Image, view gamemath.View, a, b gamemath.Vec3, width float32, clr color.Color) {
	ax, ay, _, okA := view.Project(a)
	bx, by, _, okB := view.Project(b)
	if !okA || !okB {
		return
	}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, clr, true)
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// fade scales a color's alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float32) color.RGBA {
	a := float64(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
