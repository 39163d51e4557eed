package components

import "github.com/yohamta/donburi"

// ScorecardData tracks the current hole's strokes and completion.
type ScorecardData struct {
	Strokes   int
	Penalties int
	Par       int
	Complete  bool
	// CompleteTimer counts down after the ball drops before the scorecard
	// scene takes over.
	CompleteTimer int
	Best          int // best total for this course, 0 if never finished
	NewBest       bool
}

// Total returns strokes plus penalties.
func (s *ScorecardData) Total() int {
	return s.Strokes + s.Penalties
}

// Result names the total relative to par.
func (s *ScorecardData) Result() string {
	total := s.Total()
	if total == 1 {
		return "Hole in one!"
	}
	switch total - s.Par {
	case -3:
		return "Albatross"
	case -2:
		return "Eagle"
	case -1:
		return "Birdie"
	case 0:
		return "Par"
	case 1:
		return "Bogey"
	case 2:
		return "Double bogey"
	}
	if total < s.Par {
		return "Under par"
	}
	return "Over par"
}

var Scorecard = donburi.NewComponentType[ScorecardData]()
