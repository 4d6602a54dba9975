package game

// Frame carries one tick's shared state through the system pipeline.
type Frame struct {
	Tetris *Tetris

	// Settled is raised by the gravity phase when the active piece could not
	// move down; later phases stamp the piece permanently and drop it.
	Settled bool
}

func newFrame(t *Tetris) *Frame {
	return &Frame{Tetris: t}
}
