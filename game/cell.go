package game

//go:generate go tool stringer -type=Cell

// Cell is the state of a single grid square.
//
// The numeric values matter: Overlay merges a piece into the grid by adding
// shape cells onto grid cells, so Empty must be 0 and Moving must be 1.
type Cell int

const (
	Empty Cell = iota
	Moving
	Settled
	Wall
	Fading
)
