package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Compaction selects how rows above a cleared line collapse.
type Compaction int

const (
	// CompactFull shifts every row above the cleared one down; row 0 empties.
	CompactFull Compaction = iota
	// CompactLegacy shifts rows y..2 from y-1..1 and never touches rows 0 and 1,
	// so blocks in the top two rows are duplicated rather than moved.
	CompactLegacy
)

// String returns the config name of the policy.
func (c Compaction) String() string {
	if c == CompactLegacy {
		return "legacy"
	}
	return "full"
}

// Playfield is the grid of settled blocks, indexed cells[x][y].
// core.ColorDefault marks an empty cell.
type Playfield struct {
	width, height int
	cells         [][]core.Color
	compaction    Compaction
}

// NewPlayfield creates an empty width x height field.
func NewPlayfield(width, height int, compaction Compaction) *Playfield {
	f := &Playfield{
		width:      width,
		height:     height,
		compaction: compaction,
		cells:      make([][]core.Color, width),
	}
	for x := range f.cells {
		f.cells[x] = make([]core.Color, height)
	}
	return f
}

// Width returns the number of columns.
func (f *Playfield) Width() int { return f.width }

// Height returns the number of rows.
func (f *Playfield) Height() int { return f.height }

// Compaction returns the line-clear policy.
func (f *Playfield) Compaction() Compaction { return f.compaction }

func (f *Playfield) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Cell returns the color at (x, y), or ColorDefault outside the grid.
func (f *Playfield) Cell(x, y int) core.Color {
	if !f.inBounds(x, y) {
		return core.ColorDefault
	}
	return f.cells[x][y]
}

// IsEmpty reports whether (x, y) holds no block. Out-of-range cells are empty.
func (f *Playfield) IsEmpty(x, y int) bool {
	return f.Cell(x, y) == core.ColorDefault
}

// SetCell writes a color into the grid. Out-of-range writes are ignored.
func (f *Playfield) SetCell(x, y int, c core.Color) {
	if f.inBounds(x, y) {
		f.cells[x][y] = c
	}
}

// Fill sets every cell of row y to c except the listed columns.
func (f *Playfield) Fill(y int, c core.Color, except ...int) {
	for x := 0; x < f.width; x++ {
		f.SetCell(x, y, c)
	}
	for _, x := range except {
		f.SetCell(x, y, core.ColorDefault)
	}
}

// Grid returns a copy of the cells, indexed [x][y].
func (f *Playfield) Grid() [][]core.Color {
	grid := make([][]core.Color, f.width)
	for x := range f.cells {
		grid[x] = append([]core.Color(nil), f.cells[x]...)
	}
	return grid
}

// RowFull reports whether every cell of row y is occupied.
func (f *Playfield) RowFull(y int) bool {
	if y < 0 || y >= f.height {
		return false
	}
	for x := 0; x < f.width; x++ {
		if f.cells[x][y] == core.ColorDefault {
			return false
		}
	}
	return true
}

// Reset empties the grid.
func (f *Playfield) Reset() {
	for x := range f.cells {
		clear(f.cells[x])
	}
}

// CanPlace reports whether p shifted by (dx, dy) fits.
// Cells above row 0 count as free: pieces may hang over the top edge.
func (f *Playfield) CanPlace(p Piece, dx, dy int) bool {
	return f.fits(p.cellsAt(p.Shape(), dx, dy), false)
}

// CanRotate reports whether p's next rotation fits, checking all four edges.
// p is not modified.
func (f *Playfield) CanRotate(p Piece) bool {
	next := p
	next.Rotate()
	return f.fits(next.Cells(), true)
}

func (f *Playfield) fits(cells []core.Point, checkTop bool) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= f.width || c.Y >= f.height {
			return false
		}
		if c.Y < 0 {
			if checkTop {
				return false
			}
			continue
		}
		if f.cells[c.X][c.Y] != core.ColorDefault {
			return false
		}
	}
	return true
}

// Freeze writes p's color into each occupied cell inside the grid.
func (f *Playfield) Freeze(p Piece) {
	color := p.Color()
	for _, c := range p.Cells() {
		f.SetCell(c.X, c.Y, color)
	}
}

// ClearLines removes every full row, collapses the rows above it according
// to the compaction policy and returns the number of rows removed.
func (f *Playfield) ClearLines() int {
	cleared := 0
	for y := 0; y < f.height; y++ {
		if !f.RowFull(y) {
			continue
		}
		f.clearRow(y)
		cleared++
	}
	return cleared
}

func (f *Playfield) clearRow(y int) {
	for x := 0; x < f.width; x++ {
		f.cells[x][y] = core.ColorDefault
	}

	stop := 0
	if f.compaction == CompactLegacy {
		stop = 1
	}
	for row := y; row > stop; row-- {
		f.copyRow(row, row-1)
	}
	if f.compaction == CompactFull {
		for x := 0; x < f.width; x++ {
			f.cells[x][0] = core.ColorDefault
		}
	}
}

func (f *Playfield) copyRow(dst, src int) {
	for x := 0; x < f.width; x++ {
		f.cells[x][dst] = f.cells[x][src]
	}
}
