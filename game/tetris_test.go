package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickOnly(k Kind) PickFunc {
	return func() Kind { return k }
}

func newTestEngine(k Kind) *Tetris {
	return New(testCols, testRows, pickOnly(k))
}

func hold(t *Tetris, k Key)    { t.HandleInput(KeyEvent{Key: k, Pressed: true}) }
func release(t *Tetris, k Key) { t.HandleInput(KeyEvent{Key: k, Pressed: false}) }

func tick(t *Tetris, n int) {
	for range n {
		t.Update()
	}
}

func TestNewEngine(t *testing.T) {
	engine := newTestEngine(O)

	p, ok := engine.ActivePiece()
	require.True(t, ok)
	assert.Equal(t, testCols/2-2, p.X, "spawn at the horizontal center")
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, O, p.Kind)

	assert.Equal(t, kindShapes[O], engine.NextShape(), "next piece is precomputed")
	assert.Zero(t, engine.Score())
	assert.False(t, engine.GameOver())
	assert.Empty(t, engine.FadingRows())
}

func TestGravityDescent(t *testing.T) {
	engine := newTestEngine(O)

	tick(engine, gravitySpeed-1)
	p, _ := engine.ActivePiece()
	assert.Equal(t, 0, p.Y, "no movement before the gravity threshold")

	engine.Update()
	p, ok := engine.ActivePiece()
	require.True(t, ok)
	assert.Equal(t, 1, p.Y, "exactly one row down at the threshold")
	assert.False(t, engine.GameOver())

	tick(engine, gravitySpeed)
	p, _ = engine.ActivePiece()
	assert.Equal(t, 2, p.Y)
}

func TestMovingOverlay(t *testing.T) {
	engine := newTestEngine(O)
	engine.Update()

	g := engine.Grid()
	for _, pos := range [][2]int{{1, 4}, {1, 5}, {2, 4}, {2, 5}} {
		assert.Equal(t, Moving, g.Cell(pos[0], pos[1]), "cell %v", pos)
	}
}

func TestPieceSettlesOnFloor(t *testing.T) {
	engine := newTestEngine(O)

	// The O piece's lowest occupied row is shape row 2, so it rests at
	// Y=rows-3 after 17 gravity steps and settles on the 18th.
	tick(engine, 18*gravitySpeed)

	_, ok := engine.ActivePiece()
	assert.False(t, ok, "spawn is pending right after settling")

	g := engine.Grid()
	for _, pos := range [][2]int{{18, 4}, {18, 5}, {19, 4}, {19, 5}} {
		assert.Equal(t, Settled, g.Cell(pos[0], pos[1]), "cell %v", pos)
	}
	assert.False(t, engine.GameOver())

	engine.Update()
	p, ok := engine.ActivePiece()
	require.True(t, ok, "next tick promotes the precomputed piece")
	assert.Equal(t, 0, p.Y)
}

func TestFastDrop(t *testing.T) {
	engine := newTestEngine(O)
	hold(engine, KeyDown)

	// Holding down stays inert until the fast-drop delay elapses, then the
	// gravity counter fires every tick.
	tick(engine, fastDropDelay-1)
	p, _ := engine.ActivePiece()
	assert.Equal(t, 1, p.Y, "only the regular gravity step before the delay")

	tick(engine, 60)
	assert.Equal(t, Settled, engine.Grid().Cell(testRows-1, 4), "accelerated piece has already settled")
}

func TestLateralMovement(t *testing.T) {
	engine := newTestEngine(O)
	hold(engine, KeyLeft)

	tick(engine, lateralSpeed)
	p, _ := engine.ActivePiece()
	assert.Equal(t, 2, p.X, "one step per lateral cadence")

	tick(engine, 2*lateralSpeed)
	p, _ = engine.ActivePiece()
	assert.Equal(t, 0, p.X)

	tick(engine, 2*lateralSpeed)
	p, _ = engine.ActivePiece()
	assert.Equal(t, 0, p.X, "wall stops further movement")

	release(engine, KeyLeft)
	hold(engine, KeyRight)
	tick(engine, lateralSpeed)
	p, _ = engine.ActivePiece()
	assert.Equal(t, 1, p.X)
}

func TestRotatedPieceRestsAgainstWall(t *testing.T) {
	engine := newTestEngine(I)
	hold(engine, KeyUp)
	tick(engine, rotateSpeed)
	release(engine, KeyUp)

	p, _ := engine.ActivePiece()
	require.Equal(t, NewPiece(I).RotationPreview(), p.Shape, "bar is vertical")

	// The vertical bar occupies only shape column 2, so X=-1 is a legal
	// resting position with the occupied cells on interior column 1.
	hold(engine, KeyLeft)
	assert.NotPanics(t, func() { tick(engine, 6*lateralSpeed) })

	p, _ = engine.ActivePiece()
	assert.Equal(t, -1, p.X, "wall stops the occupied column, not the empty ones")

	g := engine.Grid()
	for i := p.Y; i < p.Y+4; i++ {
		assert.Equal(t, Moving, g.Cell(i, 1), "row %d", i)
		assert.Equal(t, Wall, g.Cell(i, 0), "wall intact at row %d", i)
	}
}

func TestLateralCounterOnlyAdvancesWhileHeld(t *testing.T) {
	engine := newTestEngine(O)

	tick(engine, lateralSpeed*3)
	p, _ := engine.ActivePiece()
	assert.Equal(t, 3, p.X, "no keys, no movement")
	assert.Zero(t, engine.Counters().Lateral)
}

func TestRotation(t *testing.T) {
	t.Run("applied on the cadence", func(t *testing.T) {
		engine := newTestEngine(T)
		expected := NewPiece(T).RotationPreview()
		hold(engine, KeyUp)

		tick(engine, rotateSpeed-1)
		p, _ := engine.ActivePiece()
		assert.Equal(t, kindShapes[T], p.Shape)

		engine.Update()
		p, _ = engine.ActivePiece()
		assert.Equal(t, expected, p.Shape)
	})

	t.Run("blocked by a settled cell", func(t *testing.T) {
		engine := newTestEngine(I)
		// The vertical I would occupy column 5, rows 0-3.
		engine.grid.cells[3][5] = Settled
		hold(engine, KeyUp)

		tick(engine, rotateSpeed)
		p, _ := engine.ActivePiece()
		assert.Equal(t, kindShapes[I], p.Shape, "rotation must not commit into a collision")
	})
}

func TestScoreForRows(t *testing.T) {
	tests := []struct {
		rows  int
		bonus int
	}{
		{0, 0},
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
		{5, 0},
		{7, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.bonus, scoreForRows(tt.rows), "rows=%d", tt.rows)
	}
}

func TestRowClearLifecycle(t *testing.T) {
	engine := newTestEngine(O)
	// Leave exactly the two columns free that the falling O will fill.
	fillRow(engine.grid, testRows-1, 4, 5)

	for i := 0; i < 25*gravitySpeed && engine.Score() == 0; i++ {
		engine.Update()
	}

	require.Equal(t, 40, engine.Score(), "single row clear awards 40")
	fading := engine.FadingRows()
	require.Equal(t, []int{testRows - 1}, fading)
	g := engine.Grid()
	for j := 1; j <= testCols; j++ {
		assert.Equal(t, Fading, g.Cell(testRows-1, j), "col %d fades", j)
	}

	tick(engine, fadingTime-1)
	assert.NotEmpty(t, engine.FadingRows(), "rows linger for the fade interval")

	engine.Update()
	assert.Empty(t, engine.FadingRows())
	assert.Equal(t, []int{testRows - 1}, fading, "earlier snapshots do not alias engine state")

	// The O settled on rows 18-19; row 19 is gone, so its two leftover
	// cells from row 18 shifted down into it.
	for j := 1; j <= testCols; j++ {
		want := Empty
		if j == 4 || j == 5 {
			want = Settled
		}
		assert.Equal(t, want, g.Cell(testRows-1, j), "col %d after removal", j)
	}
	for j := 1; j <= testCols; j++ {
		assert.NotEqual(t, Settled, g.Cell(testRows-2, j), "row above is clear of settled cells")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	engine := newTestEngine(O)
	engine.grid.cells[1][3] = Settled

	engine.Update()
	require.True(t, engine.GameOver())

	score := engine.Score()
	engine.Update()
	assert.Equal(t, score, engine.Score(), "a finished game only waits for restart")

	hold(engine, KeyEnter)
	engine.Update()

	assert.False(t, engine.GameOver())
	assert.Zero(t, engine.Score())
	assert.NotEqual(t, Settled, engine.Grid().Cell(1, 3), "fresh grid on restart")

	p, ok := engine.ActivePiece()
	require.True(t, ok)
	assert.Equal(t, testCols/2-2, p.X)
	assert.Equal(t, 1, engine.Counters().Gravity, "the restart tick already ran the pipeline")
}

func TestStackingTopsOut(t *testing.T) {
	engine := newTestEngine(O)

	for i := 0; i < 20000 && !engine.GameOver(); i++ {
		engine.Update()
	}

	assert.True(t, engine.GameOver(), "an untouched column of O pieces must reach the top")
	assert.True(t, engine.Grid().TopCollision())
}
