package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestNewPieceSpawnPosition(t *testing.T) {
	p := NewPiece(KindI, 10)
	assert.Equal(t, core.Point{X: 4, Y: 1}, p.Origin())
	assert.Equal(t, 0, p.Rotation())

	p = NewPiece(KindO, 12)
	assert.Equal(t, core.Point{X: 5, Y: 1}, p.Origin())
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(KindT, 10)
	assert.ElementsMatch(t, []core.Point{
		{X: 5, Y: 1},
		{X: 4, Y: 2}, {X: 5, Y: 2}, {X: 6, Y: 2},
	}, p.Cells())

	p.Move(-2, 3)
	assert.ElementsMatch(t, []core.Point{
		{X: 3, Y: 4},
		{X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5},
	}, p.Cells())
}

func TestRotateCyclesBack(t *testing.T) {
	for _, k := range Kinds {
		p := NewPiece(k, 10)
		start := p.Cells()
		for range k.RotationCount() {
			p.Rotate()
		}
		assert.Equal(t, 0, p.Rotation(), "kind %s", k)
		assert.Equal(t, start, p.Cells(), "kind %s", k)
	}
}

func TestRotateO(t *testing.T) {
	p := NewPiece(KindO, 10)
	p.Rotate()
	assert.Equal(t, 0, p.Rotation())
}

func TestRotateUnknownKind(t *testing.T) {
	p := NewPiece(Kind(99), 10)
	assert.NotPanics(t, p.Rotate)
	assert.Equal(t, 0, p.Rotation())
	assert.Empty(t, p.Cells())
}
