package components

import (
	"github.com/automoto/putputputty/assets"
	"github.com/yohamta/donburi"
)

type CourseData struct {
	Courses []assets.Course
	Index   int
	Current *assets.Course
}

var Course = donburi.NewComponentType[CourseData]()
