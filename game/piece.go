package game

//go:generate go tool stringer -type=Kind

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L

	numKinds = 7
)

// Shape is a piece's 4x4 occupancy matrix. Occupied cells hold Moving so the
// matrix can be added directly onto grid cells.
type Shape [4][4]Cell

var kindShapes = [numKinds]Shape{
	I: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	O: {
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	},
	T: {
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
	},
	S: {
		{0, 0, 0, 0},
		{0, 0, 1, 1},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	},
	Z: {
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
	},
	J: {
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	},
	L: {
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	},
}

// Piece is a falling tetromino: its kind, its current shape matrix and the
// grid position of the matrix's top-left corner. Position changes have no
// collision awareness; callers validate against the grid first.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// NewPiece returns a piece of the given kind with its canonical shape at (0,0).
func NewPiece(k Kind) *Piece {
	return &Piece{Kind: k, Shape: kindShapes[k]}
}

func (p *Piece) SetPosition(x, y int) { p.X, p.Y = x, y }

func (p *Piece) MoveDown()  { p.Y++ }
func (p *Piece) MoveLeft()  { p.X-- }
func (p *Piece) MoveRight() { p.X++ }

// RotationPreview returns the shape after a clockwise quarter turn without
// committing it. O is rotation-invariant.
func (p *Piece) RotationPreview() Shape {
	if p.Kind == O {
		return p.Shape
	}

	var rotated Shape
	n := len(p.Shape)
	for i := range n {
		for j := range n {
			rotated[j][n-1-i] = p.Shape[i][j]
		}
	}
	return rotated
}

// Rotate commits the rotation preview as the new shape.
func (p *Piece) Rotate() { p.Shape = p.RotationPreview() }
