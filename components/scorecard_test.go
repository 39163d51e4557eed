package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorecardResult(t *testing.T) {
	tests := []struct {
		name      string
		strokes   int
		penalties int
		par       int
		want      string
	}{
		{"ace beats everything", 1, 0, 3, "Hole in one!"},
		{"birdie", 2, 0, 3, "Birdie"},
		{"par", 3, 0, 3, "Par"},
		{"penalty counts", 2, 1, 3, "Par"},
		{"bogey", 4, 0, 3, "Bogey"},
		{"double bogey", 3, 2, 3, "Double bogey"},
		{"far over", 9, 0, 3, "Over par"},
		{"eagle on a par five", 3, 0, 5, "Eagle"},
		{"far under", 2, 0, 6, "Under par"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &ScorecardData{Strokes: tt.strokes, Penalties: tt.penalties, Par: tt.par}
			assert.Equal(t, tt.want, card.Result())
			assert.Equal(t, tt.strokes+tt.penalties, card.Total())
		})
	}
}

func TestSpaceFrameRoundTrip(t *testing.T) {
	frame := SpaceFrameData{OriginX: -11, OriginZ: -11, Scale: 32}

	px, py := frame.ToSpace(0, -3.5)
	assert.InDelta(t, 352, px, 1e-9)
	assert.InDelta(t, 240, py, 1e-9)

	x, z := frame.ToWorld(px, py)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -3.5, z, 1e-9)
}
