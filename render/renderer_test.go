package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/game"
)

func TestCellColor(t *testing.T) {
	tests := []struct {
		name   string
		cell   game.Cell
		filled bool
	}{
		{"empty is outline only", game.Empty, false},
		{"moving fills", game.Moving, true},
		{"settled fills", game.Settled, true},
		{"wall fills", game.Wall, true},
		{"fading fills", game.Fading, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clr, filled := cellColor(tt.cell)
			assert.Equal(t, tt.filled, filled)
			assert.NotNil(t, clr)
		})
	}

	moving, _ := cellColor(game.Moving)
	settled, _ := cellColor(game.Settled)
	assert.Equal(t, moving, settled, "moving and settled blocks share a color")

	fading, _ := cellColor(game.Fading)
	assert.NotEqual(t, settled, fading, "fading rows stand out")
}

func TestCellRect(t *testing.T) {
	x, y := CellRect(0, 0)
	assert.Equal(t, float32(GridX), x)
	assert.Equal(t, float32(GridY), y)

	x, y = CellRect(2, 3)
	assert.Equal(t, float32(GridX+3*CellSize), x)
	assert.Equal(t, float32(GridY+2*CellSize), y)
}
