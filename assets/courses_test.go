package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/putputputty/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" infinite="0">
`

const teeAndHole = ` <objectgroup id="3" name="Tee"><object id="4" x="64" y="96"><point/></object></objectgroup>
 <objectgroup id="4" name="Hole"><object id="5" x="64" y="32"><point/></object></objectgroup>
`

func assertVec(t *testing.T, want, got gamemath.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got, 1e-9), "want %+v got %+v", want, got)
}

func TestLoadEmbeddedCourses(t *testing.T) {
	courses, err := LoadEmbeddedCourses()
	require.NoError(t, err)
	require.Len(t, courses, 3)

	names := []string{courses[0].Name, courses[1].Name, courses[2].Name}
	assert.Equal(t, []string{"01_corridor", "02_dogleg", "03_pinball"}, names)

	for _, c := range courses {
		assert.NotEmpty(t, c.Title)
		assert.Positive(t, c.Par)
		assert.NotEmpty(t, c.Walls)
		assert.True(t, c.Contains(c.Tee), c.Name)
		assert.True(t, c.Contains(c.Hole), c.Name)
	}
}

func TestCorridorMatchesFallback(t *testing.T) {
	courses, err := LoadEmbeddedCourses()
	require.NoError(t, err)
	corridor := courses[0]
	fallback := FallbackCourse()

	assert.Equal(t, "The Corridor", corridor.Title)
	assert.Equal(t, 2, corridor.Par)
	assert.InDelta(t, fallback.Width, corridor.Width, 1e-9)
	assert.InDelta(t, fallback.Depth, corridor.Depth, 1e-9)
	assertVec(t, fallback.Tee, corridor.Tee)
	assertVec(t, fallback.Hole, corridor.Hole)

	require.Len(t, corridor.Walls, len(fallback.Walls))
	for i := range fallback.Walls {
		assertVec(t, fallback.Walls[i].Min, corridor.Walls[i].Min)
		assertVec(t, fallback.Walls[i].Max, corridor.Walls[i].Max)
	}
}

func TestLoadCourseProperties(t *testing.T) {
	doc := header + ` <objectgroup id="1" name="Meta"><object id="1" x="0" y="0">
   <properties>
    <property name="title" value="Tiny"/>
    <property name="par" type="int" value="5"/>
   </properties><point/></object></objectgroup>
 <objectgroup id="2" name="Walls">
  <object id="2" x="0" y="0" width="128" height="16">
   <properties>
    <property name="restitution" type="float" value="0.9"/>
    <property name="height" type="float" value="0.5"/>
   </properties>
  </object>
 </objectgroup>
` + teeAndHole + `</map>`

	fsys := fstest.MapFS{"c/tiny.tmx": {Data: []byte(doc)}}
	c, err := LoadCourse(fsys, "c/tiny.tmx")
	require.NoError(t, err)

	assert.Equal(t, "tiny", c.Name)
	assert.Equal(t, "Tiny", c.Title)
	assert.Equal(t, 5, c.Par)
	assert.Equal(t, 4.0, c.Width)
	assertVec(t, gamemath.V3(0, 1, 1), c.Tee)
	assertVec(t, gamemath.V3(0, 0, -1), c.Hole)

	require.Len(t, c.Walls, 1)
	w := c.Walls[0]
	assertVec(t, gamemath.V3(-2, 0, -2), w.Min)
	assertVec(t, gamemath.V3(2, 0.5, -1.5), w.Max)
	assert.Equal(t, 0.9, w.Restitution)
	assertVec(t, gamemath.V3(0, 0.25, -1.75), w.Center())
}

func TestLoadCourseDefaults(t *testing.T) {
	fsys := fstest.MapFS{"c/plain.tmx": {Data: []byte(header + teeAndHole + `</map>`)}}
	c, err := LoadCourse(fsys, "c/plain.tmx")
	require.NoError(t, err)
	assert.Equal(t, "plain", c.Title, "title defaults to the file stem")
	assert.Equal(t, 3, c.Par)
	assert.Empty(t, c.Walls)
}

func TestLoadCourseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing tee", header + ` <objectgroup id="4" name="Hole"><object id="5" x="64" y="32"><point/></object></objectgroup>
</map>`},
		{"missing hole", header + ` <objectgroup id="3" name="Tee"><object id="4" x="64" y="96"><point/></object></objectgroup>
</map>`},
		{"hole off the green", header + ` <objectgroup id="3" name="Tee"><object id="4" x="64" y="96"><point/></object></objectgroup>
 <objectgroup id="4" name="Hole"><object id="5" x="640" y="32"><point/></object></objectgroup>
</map>`},
		{"flat wall", header + ` <objectgroup id="2" name="Walls"><object id="2" x="0" y="0" width="0" height="16"/></objectgroup>
` + teeAndHole + `</map>`},
		{"not xml", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"c/bad.tmx": {Data: []byte(tt.doc)}}
			_, err := LoadCourse(fsys, "c/bad.tmx")
			assert.Error(t, err)
		})
	}
}

func TestLoadCoursesEmptyDir(t *testing.T) {
	fsys := fstest.MapFS{"c/readme.txt": {Data: []byte("nothing")}}
	_, err := LoadCourses(fsys, "c")
	assert.True(t, errors.Is(err, ErrNoCourses))
}

func TestLoadCoursesOrder(t *testing.T) {
	withOrder := func(order string) []byte {
		return []byte(header + ` <objectgroup id="1" name="Meta"><object id="1" x="0" y="0"><properties><property name="order" type="int" value="` + order + `"/></properties><point/></object></objectgroup>
` + teeAndHole + `</map>`)
	}
	fsys := fstest.MapFS{
		"c/a.tmx": {Data: withOrder("2")},
		"c/b.tmx": {Data: withOrder("1")},
		"c/c.tmx": {Data: withOrder("1")},
	}
	courses, err := LoadCourses(fsys, "c")
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "b", courses[0].Name)
	assert.Equal(t, "c", courses[1].Name)
	assert.Equal(t, "a", courses[2].Name)
}
