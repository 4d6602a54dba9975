package game_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/game"
)

var allKinds = []game.Kind{game.I, game.O, game.T, game.S, game.Z, game.J, game.L}

func occupiedCells(s game.Shape) int {
	count := 0
	for i := range s {
		for j := range s[i] {
			if s[i][j] == game.Moving {
				count++
			}
		}
	}
	return count
}

func TestNewPiece(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := game.NewPiece(kind)
			assert.Equal(t, kind, p.Kind)
			assert.Equal(t, 0, p.X)
			assert.Equal(t, 0, p.Y)
			assert.Equal(t, 4, occupiedCells(p.Shape), "every tetromino has four cells")
		})
	}
}

func TestRotationGroupOrderFour(t *testing.T) {
	for _, kind := range allKinds {
		if kind == game.O {
			continue
		}
		t.Run(kind.String(), func(t *testing.T) {
			p := game.NewPiece(kind)
			original := p.Shape

			p.Rotate()
			assert.NotEqual(t, original, p.Shape, "one quarter turn must change the matrix")

			p.Rotate()
			p.Rotate()
			p.Rotate()
			assert.Equal(t, original, p.Shape, "four quarter turns must be the identity")
		})
	}
}

func TestRotationInvariantO(t *testing.T) {
	p := game.NewPiece(game.O)
	original := p.Shape

	assert.Equal(t, original, p.RotationPreview())
	p.Rotate()
	assert.Equal(t, original, p.Shape)
}

func TestRotationPreviewDoesNotMutate(t *testing.T) {
	p := game.NewPiece(game.T)
	original := p.Shape

	preview := p.RotationPreview()
	assert.NotEqual(t, original, preview)
	assert.Equal(t, original, p.Shape, "preview must leave the piece untouched")
}

func TestRotationTransform(t *testing.T) {
	// One quarter turn is the transpose-reverse transform:
	// rotated[j][n-1-i] = shape[i][j].
	p := game.NewPiece(game.I)
	rotated := p.RotationPreview()

	for j := 0; j < 4; j++ {
		assert.Equal(t, game.Moving, rotated[j][2], fmt.Sprintf("row %d", j))
	}
	assert.Equal(t, 4, occupiedCells(rotated))
}

func TestMoves(t *testing.T) {
	p := game.NewPiece(game.L)
	p.SetPosition(4, 7)

	p.MoveDown()
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 8, p.Y)

	p.MoveLeft()
	assert.Equal(t, 3, p.X)

	p.MoveRight()
	p.MoveRight()
	assert.Equal(t, 5, p.X)
	assert.Equal(t, 8, p.Y, "horizontal moves must not change the row")
}
