// Package game implements the falling-block engine: the walled grid, the
// seven tetromino pieces, and the tick-driven state machine that moves,
// settles and clears them. It has no rendering or platform dependencies; the
// shell feeds it key events and calls Update once per tick.
package game

// Tick-threshold constants, counted in engine ticks (the shell runs about a
// hundred ticks per second). Lower is faster.
const (
	gravitySpeed  = 30
	lateralSpeed  = 8
	rotateSpeed   = 8
	fadingTime    = 50
	fastDropDelay = 40
)

// scoreForRows is the bonus for clearing n rows in a single scan. Counts
// outside 1..4 score nothing.
func scoreForRows(n int) int {
	switch n {
	case 1:
		return 40
	case 2:
		return 100
	case 3:
		return 300
	case 4:
		return 1200
	}
	return 0
}

// Tetris is the game engine: the grid, the active and next pieces, the input
// snapshot, the score and the tick counters. One Update call is one tick; the
// engine is single-owner state with no internal concurrency.
type Tetris struct {
	cols, rows int

	grid *Grid
	keys *Keymap
	pick PickFunc

	active *Piece
	next   *Piece

	score    int
	gameOver bool

	// rowsToDelete is non-empty only while completed rows fade out.
	rowsToDelete []int

	gravityCount int
	lateralCount int
	rotateCount  int
	fadeCount    int
	dropCount    int

	sched *Scheduler
}

// New creates an engine for a cols x rows playfield. A nil pick falls back to
// the uniform random selector.
func New(cols, rows int, pick PickFunc) *Tetris {
	if pick == nil {
		pick = RandomKind
	}

	t := &Tetris{
		cols:  cols,
		rows:  rows,
		keys:  NewKeymap(),
		pick:  pick,
		sched: NewScheduler(),
	}

	t.sched.Register(spawnSystem{})
	t.sched.Register(timerSystem{})
	t.sched.Register(gravitySystem{})
	t.sched.Register(lateralSystem{})
	t.sched.Register(rotationSystem{})
	t.sched.Register(overlaySystem{})
	t.sched.Register(topOutSystem{})

	t.initialize()
	return t
}

// initialize puts the engine in its new-game state: fresh grid, zero score,
// zero counters, fresh active and next pieces.
func (t *Tetris) initialize() {
	t.grid = NewGrid(t.cols, t.rows)
	t.rowsToDelete = nil
	t.active = nil
	t.next = nil
	t.score = 0
	t.gameOver = false
	t.gravityCount = 0
	t.lateralCount = 0
	t.rotateCount = 0
	t.fadeCount = 0
	t.dropCount = 0
	t.spawn()
}

// spawn promotes the next piece (or creates the first), centers it at the
// top of the playfield, and precomputes the following piece.
func (t *Tetris) spawn() {
	if t.next == nil {
		t.active = NewPiece(t.pick())
	} else {
		t.active = t.next
	}
	t.active.SetPosition(t.cols/2-2, 0)
	t.next = NewPiece(t.pick())
	t.dropCount = 0
}

// HandleInput folds a key transition into the engine's pressed-key snapshot.
func (t *Tetris) HandleInput(e KeyEvent) {
	t.keys.Handle(e)
}

// Update advances the engine one tick. While the game is over it only watches
// for the restart key; while rows fade it only counts down the fade timer;
// otherwise it runs the full tick pipeline.
func (t *Tetris) Update() {
	if t.gameOver {
		if !t.keys.Pressed(KeyEnter) {
			return
		}
		// Restart runs the rest of this tick as the new game's first tick.
		t.initialize()
	}

	if len(t.rowsToDelete) > 0 {
		t.fadeCount++
		if t.fadeCount >= fadingTime {
			t.grid.RemoveRows(t.rowsToDelete)
			t.rowsToDelete = t.rowsToDelete[:0]
			t.fadeCount = 0
		}
		return
	}

	t.sched.Once(newFrame(t))
}

// Grid exposes the playfield for read-only projection by the shell.
func (t *Tetris) Grid() *Grid { return t.grid }

// ActivePiece returns the falling piece; ok is false while a spawn is
// pending, immediately after the previous piece settled.
func (t *Tetris) ActivePiece() (p *Piece, ok bool) {
	return t.active, t.active != nil
}

// NextShape is the shape of the precomputed next piece, for the preview
// panel.
func (t *Tetris) NextShape() Shape { return t.next.Shape }

func (t *Tetris) Score() int     { return t.score }
func (t *Tetris) GameOver() bool { return t.gameOver }

// FadingRows returns the row indices pending deletion; empty outside the
// fade interval. The result is a copy, stable across later ticks.
func (t *Tetris) FadingRows() []int {
	rows := make([]int, len(t.rowsToDelete))
	copy(rows, t.rowsToDelete)
	return rows
}

// TickCounters is a snapshot of the engine's timer channels, for diagnostics.
type TickCounters struct {
	Gravity  int
	Lateral  int
	Rotate   int
	Fade     int
	FastDrop int
}

func (t *Tetris) Counters() TickCounters {
	return TickCounters{
		Gravity:  t.gravityCount,
		Lateral:  t.lateralCount,
		Rotate:   t.rotateCount,
		Fade:     t.fadeCount,
		FastDrop: t.dropCount,
	}
}

// Stats exposes per-phase scheduler timings for the debug overlay.
func (t *Tetris) Stats() *SchedulerStats {
	return t.sched.GetStats()
}
