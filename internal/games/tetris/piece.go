package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Spawn row of a new piece's origin.
const spawnY = 1

// Piece is a falling tetromino: a kind, a rotation state and an origin.
// Piece methods never check legality; the Playfield does that.
type Piece struct {
	kind     Kind
	rotation int
	x, y     int
}

// NewPiece creates a piece at the spawn position for a field of the given width.
func NewPiece(kind Kind, fieldWidth int) Piece {
	return Piece{
		kind: kind,
		x:    fieldWidth/2 - 1,
		y:    spawnY,
	}
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind { return p.kind }

// Rotation returns the active rotation index.
func (p Piece) Rotation() int { return p.rotation }

// Origin returns the top-left corner of the active mask in field coordinates.
func (p Piece) Origin() core.Point { return core.Point{X: p.x, Y: p.y} }

// Color returns the kind's color.
func (p Piece) Color() core.Color { return p.kind.Color() }

// Shape returns the active rotation mask.
func (p Piece) Shape() Mask { return p.kind.Shape(p.rotation) }

// Rotate advances to the next rotation state.
// Unknown kinds have no rotations and stay put.
func (p *Piece) Rotate() {
	n := p.kind.RotationCount()
	if n == 0 {
		return
	}
	p.rotation = (p.rotation + 1) % n
}

// Move shifts the origin.
func (p *Piece) Move(dx, dy int) {
	p.x += dx
	p.y += dy
}

// Cells returns the absolute occupied cells for the active rotation.
func (p Piece) Cells() []core.Point {
	return p.cellsAt(p.Shape(), 0, 0)
}

func (p Piece) cellsAt(m Mask, dx, dy int) []core.Point {
	cells := make([]core.Point, 0, 4)
	for my, row := range m {
		for mx, set := range row {
			if set {
				cells = append(cells, core.Point{X: p.x + mx + dx, Y: p.y + my + dy})
			}
		}
	}
	return cells
}
