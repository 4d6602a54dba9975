package game

// The tick pipeline, one system per phase. Update gates the whole pipeline on
// the game-over and fading states, so every system here can assume an active
// piece exists once spawnSystem has run.

// spawnSystem promotes the precomputed next piece to active when there is
// none, centers it at the top, and picks a new next piece.
type spawnSystem struct{}

func (spawnSystem) Execute(frame *Frame) {
	t := frame.Tetris
	if t.active == nil {
		t.spawn()
	}
}

// timerSystem advances the tick counters. Gravity and fast-drop always count;
// lateral and rotate only while their keys are held. Holding down past the
// fast-drop delay pours an extra gravitySpeed into the gravity counter, which
// accelerates descent without disturbing the normal cadence check.
type timerSystem struct{}

func (timerSystem) Execute(frame *Frame) {
	t := frame.Tetris
	t.gravityCount++
	t.dropCount++

	if t.keys.Pressed(KeyLeft) || t.keys.Pressed(KeyRight) {
		t.lateralCount++
	}
	if t.keys.Pressed(KeyUp) {
		t.rotateCount++
	}
	if t.keys.Pressed(KeyDown) && t.dropCount >= fastDropDelay {
		t.gravityCount += gravitySpeed
	}
}

// gravitySystem moves the active piece down one row on the gravity cadence,
// or raises the settled flag when something blocks the way. Either way the
// grid is scanned for completed rows and the score updated.
type gravitySystem struct{}

func (gravitySystem) Execute(frame *Frame) {
	t := frame.Tetris
	if t.gravityCount < gravitySpeed {
		return
	}

	if t.grid.CollidesBelow(t.active) {
		frame.Settled = true
	} else {
		t.active.MoveDown()
	}

	if completed := t.grid.ScanCompletedRows(); len(completed) > 0 {
		t.rowsToDelete = append(t.rowsToDelete, completed...)
		t.score += scoreForRows(len(completed))
	}

	t.gravityCount = 0
}

// lateralSystem applies one horizontal step in the held direction on the
// lateral cadence. Left wins if both directions are somehow held.
type lateralSystem struct{}

func (lateralSystem) Execute(frame *Frame) {
	t := frame.Tetris
	if t.lateralCount < lateralSpeed {
		return
	}

	switch {
	case t.keys.Pressed(KeyLeft):
		if !t.grid.CollidesBeside(t.active, -1) {
			t.active.MoveLeft()
		}
	case t.keys.Pressed(KeyRight):
		if !t.grid.CollidesBeside(t.active, 1) {
			t.active.MoveRight()
		}
	}

	t.lateralCount = 0
}

// rotationSystem commits a rotation on the rotate cadence when the previewed
// shape fits at the piece's current position.
type rotationSystem struct{}

func (rotationSystem) Execute(frame *Frame) {
	t := frame.Tetris
	if t.rotateCount < rotateSpeed {
		return
	}

	preview := t.active.RotationPreview()
	if !t.grid.Collides(preview, t.active.X, t.active.Y) {
		t.active.Rotate()
	}

	t.rotateCount = 0
}

// overlaySystem clears the previous Moving overlay and stamps the piece at
// its new position, permanently when this tick settled it. A settled piece is
// dropped so the next tick spawns a fresh one.
type overlaySystem struct{}

func (overlaySystem) Execute(frame *Frame) {
	t := frame.Tetris
	t.grid.Reset(false)
	t.grid.Overlay(t.active, frame.Settled)

	if frame.Settled {
		t.active = nil
	}
}

// topOutSystem ends the game once a settled cell reaches the top two rows.
type topOutSystem struct{}

func (topOutSystem) Execute(frame *Frame) {
	t := frame.Tetris
	if t.grid.TopCollision() {
		t.gameOver = true
	}
}
