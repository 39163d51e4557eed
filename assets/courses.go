package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/putputputty/config"
	"github.com/automoto/putputputty/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed all:courses
var courseFS embed.FS

// CourseDir is the embedded directory holding the .tmx courses.
const CourseDir = "courses"

// ErrNoCourses is returned when a directory holds no .tmx files.
var ErrNoCourses = errors.New("no courses found")

// Box is an axis-aligned wall in world units.
type Box struct {
	Min gamemath.Vec3
	Max gamemath.Vec3
	// Restitution overrides the ball's wall restitution when > 0.
	Restitution float64
}

// Center returns the middle of the box.
func (b Box) Center() gamemath.Vec3 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Size returns the box extents.
func (b Box) Size() gamemath.Vec3 {
	return b.Max.Sub(b.Min)
}

// Course is one hole in world units. The ground plane spans Width x Depth
// centred on the origin at Y = 0.
type Course struct {
	Name  string // file stem, used as the save key
	Title string
	Par   int
	Order int
	Width float64
	Depth float64
	Tee   gamemath.Vec3
	Hole  gamemath.Vec3
	Walls []Box
}

// Contains reports whether the XZ position lies over the ground plane.
func (c Course) Contains(p gamemath.Vec3) bool {
	return p.X >= -c.Width/2 && p.X <= c.Width/2 && p.Z >= -c.Depth/2 && p.Z <= c.Depth/2
}

// FallbackCourse is the corridor used when no course file can be loaded:
// a 10x10 green with two long walls either side of the tee.
func FallbackCourse() Course {
	r := config.Ball.Radius
	h := config.Course.WallHeight
	return Course{
		Name:  "fallback",
		Title: "Practice Green",
		Par:   config.Course.DefaultPar,
		Width: 10,
		Depth: 10,
		Tee:   gamemath.V3(0, r, 0),
		Hole:  gamemath.V3(0, 0, -3.5),
		Walls: []Box{
			{Min: gamemath.V3(-2.1, 0, -5), Max: gamemath.V3(-1.9, h, 5)},
			{Min: gamemath.V3(1.9, 0, -5), Max: gamemath.V3(2.1, h, 5)},
		},
	}
}

// LoadEmbeddedCourses loads the courses shipped with the binary.
func LoadEmbeddedCourses() ([]Course, error) {
	return LoadCourses(courseFS, CourseDir)
}

// LoadCourses parses every .tmx file in dir, sorted by their order property
// and then by name.
func LoadCourses(fsys fs.FS, dir string) ([]Course, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCourses, dir)
	}

	courses := make([]Course, 0, len(matches))
	for _, p := range matches {
		c, err := LoadCourse(fsys, p)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	sort.SliceStable(courses, func(i, j int) bool {
		if courses[i].Order != courses[j].Order {
			return courses[i].Order < courses[j].Order
		}
		return courses[i].Name < courses[j].Name
	})
	return courses, nil
}

// LoadCourse parses one Tiled map. Object groups:
//
//	Meta   one object with title, par and order properties
//	Walls  rectangles, optional float "restitution" and "height"
//	Tee    one point
//	Hole   one point
func LoadCourse(fsys fs.FS, tmxPath string) (Course, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Course{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppu := config.Course.PixelsPerUnit
	c := Course{
		Name:  strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Par:   config.Course.DefaultPar,
		Width: float64(levelMap.Width*levelMap.TileWidth) / ppu,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / ppu,
	}
	c.Title = c.Name

	// Tiled pixels to world: origin at the map centre, +Y down becomes +Z.
	toWorld := func(px, py float64) gamemath.Vec3 {
		return gamemath.V3(px/ppu-c.Width/2, 0, py/ppu-c.Depth/2)
	}

	var haveTee, haveHole bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Meta":
			for _, o := range og.Objects {
				if t := o.Properties.GetString("title"); t != "" {
					c.Title = t
				}
				if par := o.Properties.GetInt("par"); par > 0 {
					c.Par = par
				}
				c.Order = o.Properties.GetInt("order")
			}
		case "Walls":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return Course{}, fmt.Errorf("%s: wall %d has no area", tmxPath, o.ID)
				}
				height := o.Properties.GetFloat("height")
				if height <= 0 {
					height = config.Course.WallHeight
				}
				lo := toWorld(o.X, o.Y)
				hi := toWorld(o.X+o.Width, o.Y+o.Height).WithY(height)
				c.Walls = append(c.Walls, Box{
					Min:         lo,
					Max:         hi,
					Restitution: o.Properties.GetFloat("restitution"),
				})
			}
		case "Tee":
			for _, o := range og.Objects {
				c.Tee = toWorld(o.X, o.Y).WithY(config.Ball.Radius)
				haveTee = true
			}
		case "Hole":
			for _, o := range og.Objects {
				c.Hole = toWorld(o.X, o.Y)
				haveHole = true
			}
		}
	}

	if !haveTee {
		return Course{}, fmt.Errorf("%s: missing Tee object", tmxPath)
	}
	if !haveHole {
		return Course{}, fmt.Errorf("%s: missing Hole object", tmxPath)
	}
	if !c.Contains(c.Tee) || !c.Contains(c.Hole) {
		return Course{}, fmt.Errorf("%s: tee or hole outside the green", tmxPath)
	}
	return c, nil
}
