package game

// Grid is the playfield matrix, (rows+1) x (cols+2): one extra row for the
// floor and one extra column on each side for the walls. Interior cells live
// at rows 0..rows-1, columns 1..cols.
type Grid struct {
	cols, rows int
	cells      [][]Cell
}

// NewGrid returns a fully reset grid for a cols x rows playfield.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([][]Cell, rows+1),
	}
	for i := range g.cells {
		g.cells[i] = make([]Cell, cols+2)
	}
	g.Reset(true)
	return g
}

// Cols and Rows are the interior dimensions; the cell matrix is one row taller
// and two columns wider.
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Cell returns the state at (row, col) in wall-inclusive coordinates.
func (g *Grid) Cell(row, col int) Cell { return g.cells[row][col] }

// Reset clears the Moving overlay (every cell when fullClean) and re-stamps
// the wall border. Called once per tick before the overlay is reapplied.
func (g *Grid) Reset(fullClean bool) {
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] == Moving || fullClean {
				g.cells[i][j] = Empty
			}
		}
		g.cells[i][0] = Wall
		g.cells[i][g.cols+1] = Wall
	}
	for j := 1; j <= g.cols; j++ {
		g.cells[g.rows][j] = Wall
	}
}

// Overlay stamps the piece onto the grid. With settle, occupied cells become
// Settled; otherwise the shape is added on top of whatever is there, turning
// Empty into Moving. Only occupied shape cells write, so a rotated piece
// resting flush against a wall never indexes outside its footprint; shape
// rows past the bottom of the matrix are skipped.
func (g *Grid) Overlay(p *Piece, settle bool) {
	for i := 0; i < 4; i++ {
		if p.Y+i >= len(g.cells) {
			return
		}
		for j := 0; j < 4; j++ {
			if p.Shape[i][j] != Moving {
				continue
			}
			if settle {
				g.cells[p.Y+i][p.X+j] = Settled
			} else {
				g.cells[p.Y+i][p.X+j] += p.Shape[i][j]
			}
		}
	}
}

// CollidesBelow reports whether the row beneath any occupied cell of the piece
// holds a Settled or Wall cell.
func (g *Grid) CollidesBelow(p *Piece) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if p.Shape[i][j] == Moving && g.blocked(p.Y+i+1, p.X+j) {
				return true
			}
		}
	}
	return false
}

// CollidesBeside probes one column over in direction dx (-1 left, +1 right).
func (g *Grid) CollidesBeside(p *Piece, dx int) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if p.Shape[i][j] == Moving && g.blocked(p.Y+i, p.X+j+dx) {
				return true
			}
		}
	}
	return false
}

// Collides reports whether the shape placed at (x, y) overlaps a Settled or
// Wall cell. Used to vet rotation previews before committing them.
func (g *Grid) Collides(shape Shape, x, y int) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if shape[i][j] == Moving && g.blocked(y+i, x+j) {
				return true
			}
		}
	}
	return false
}

// blocked treats any out-of-range probe as a collision; the walls make those
// unreachable except for rotation previews resting against an edge.
func (g *Grid) blocked(row, col int) bool {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return true
	}
	c := g.cells[row][col]
	return c == Settled || c == Wall
}

// ScanCompletedRows records every interior row whose interior cells are all
// Settled, marks those cells Fading, and returns the row indices in
// top-to-bottom order. The caller awards score from the count.
func (g *Grid) ScanCompletedRows() []int {
	var completed []int
	for i := 0; i < g.rows; i++ {
		count := 0
		for j := 0; j < g.cols; j++ {
			if g.cells[i][j+1] == Settled {
				count++
			}
		}
		if count != g.cols {
			continue
		}
		completed = append(completed, i)
		for j := 0; j < g.cols; j++ {
			g.cells[i][j+1] = Fading
		}
	}
	return completed
}

// RemoveRows deletes the listed rows. Each index is processed independently,
// in the order supplied: every row above it is copied down one and a fresh
// walled-empty row takes row 0. The per-index shift is load-bearing when a
// batch holds non-adjacent rows; it is not a compacted single pass.
func (g *Grid) RemoveRows(rows []int) {
	for _, row := range rows {
		for k := row; k > 0; k-- {
			copy(g.cells[k], g.cells[k-1])
		}
		for j := range g.cells[0] {
			g.cells[0][j] = Empty
		}
		g.cells[0][0] = Wall
		g.cells[0][g.cols+1] = Wall
	}
}

// TopCollision reports a Settled cell anywhere in the interior of the top two
// rows, the game-over condition.
func (g *Grid) TopCollision() bool {
	for i := 0; i < 2; i++ {
		for j := 1; j <= g.cols; j++ {
			if g.cells[i][j] == Settled {
				return true
			}
		}
	}
	return false
}
