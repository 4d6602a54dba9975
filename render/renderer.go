// Package render projects the engine's grid, preview and score onto an ebiten
// screen. It reads the engine but never mutates it.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/game"
)

const (
	ScreenWidth  = 600
	ScreenHeight = 480

	// CellSize is the square edge of one grid cell in pixels.
	CellSize = 20

	// GridX and GridY anchor the playfield's top-left corner.
	GridX = 120
	GridY = 30

	// previewDistance separates the playfield from the next-piece panel.
	previewDistance = 50
)

var (
	emptyColor  = color.RGBA{245, 245, 245, 255}
	wallColor   = color.RGBA{200, 200, 200, 255}
	fadingColor = color.RGBA{0, 150, 0, 255}
	blockColor  = color.RGBA{150, 150, 150, 255}
)

// cellColor maps a cell to its draw color; filled is false for empty cells,
// which get an outline only.
func cellColor(c game.Cell) (clr color.Color, filled bool) {
	switch c {
	case game.Wall:
		return wallColor, true
	case game.Fading:
		return fadingColor, true
	case game.Empty:
		return emptyColor, false
	}
	return blockColor, true
}

// CellRect returns the top-left screen position of a playfield cell.
func CellRect(row, col int) (x, y float32) {
	return float32(GridX + CellSize*col), float32(GridY + CellSize*row)
}

// Renderer draws the whole game screen with a fixed pair of font faces.
type Renderer struct {
	fonts *FontSet
}

func NewRenderer(fonts *FontSet) *Renderer {
	return &Renderer{fonts: fonts}
}

// Draw renders one frame: the walled grid, the next-piece panel and the score,
// or the restart prompt once the game is over.
func (r *Renderer) Draw(screen *ebiten.Image, t *game.Tetris) {
	screen.Fill(color.White)

	if t.GameOver() {
		text.Draw(screen, "Press [enter] to play again", r.fonts.Large,
			100, 100+largeFontSize, color.Black)
		text.Draw(screen, fmt.Sprintf("SCORE: %d", t.Score()), r.fonts.Small,
			250, 150+smallFontSize, color.Black)
		return
	}

	g := t.Grid()
	for i := 0; i <= g.Rows(); i++ {
		for j := 0; j <= g.Cols()+1; j++ {
			x, y := CellRect(i, j)
			clr, filled := cellColor(g.Cell(i, j))
			r.drawSquare(screen, x, y, clr, filled)
		}
	}

	// The preview panel sits to the right of the playfield, including its
	// walls.
	panelX := GridX + previewDistance + CellSize*(g.Cols()+2)
	next := t.NextShape()
	for i := range next {
		for j := range next[i] {
			x := float32(panelX + CellSize*j)
			y := float32(GridY + 30 + CellSize*i)
			if next[i][j] == game.Empty {
				r.drawSquare(screen, x, y, emptyColor, false)
			} else {
				r.drawSquare(screen, x, y, blockColor, true)
			}
		}
	}

	text.Draw(screen, "NEXT BLOCK", r.fonts.Small,
		panelX, GridY+smallFontSize, color.Black)

	previewHeight := CellSize * 4
	text.Draw(screen, fmt.Sprintf("SCORE: %d", t.Score()), r.fonts.Small,
		panelX, GridY+30+previewHeight+30+smallFontSize, color.Black)
}

func (r *Renderer) drawSquare(dst *ebiten.Image, x, y float32, clr color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, x, y, CellSize, CellSize, clr, false)
		return
	}
	vector.StrokeRect(dst, x, y, CellSize, CellSize, 1, clr, false)
}
