package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func allPieces(width int) []Piece {
	var pieces []Piece
	for _, k := range Kinds {
		p := NewPiece(k, width)
		for range k.RotationCount() {
			pieces = append(pieces, p)
			p.Rotate()
		}
	}
	return pieces
}

func TestCanPlaceRejectsSideAndBottomEdges(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	for _, p := range allPieces(f.Width()) {
		o := p.Origin()
		m := p.Shape()

		assert.True(t, f.CanPlace(p, -o.X, 0), "%s/%d flush left", p.Kind(), p.Rotation())
		assert.False(t, f.CanPlace(p, -o.X-1, 0), "%s/%d x<0", p.Kind(), p.Rotation())

		right := f.Width() - o.X - m.Width()
		assert.True(t, f.CanPlace(p, right, 0), "%s/%d flush right", p.Kind(), p.Rotation())
		assert.False(t, f.CanPlace(p, right+1, 0), "%s/%d x>=W", p.Kind(), p.Rotation())

		bottom := f.Height() - o.Y - m.Height()
		assert.True(t, f.CanPlace(p, 0, bottom), "%s/%d flush bottom", p.Kind(), p.Rotation())
		assert.False(t, f.CanPlace(p, 0, bottom+1), "%s/%d y>=H", p.Kind(), p.Rotation())
	}
}

func TestCanPlaceIgnoresTop(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	p := NewPiece(KindJ, 10)
	assert.True(t, f.CanPlace(p, 0, -5))
}

func TestCanPlaceRejectsOccupied(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	p := NewPiece(KindO, 10) // (4,1) (5,1) (4,2) (5,2)
	f.SetCell(5, 3, core.ColorGray)

	assert.True(t, f.CanPlace(p, 0, 0))
	assert.False(t, f.CanPlace(p, 0, 1))
	assert.True(t, f.CanPlace(p, -1, 0))
}

func TestIPieceFallsEighteenRows(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	p := NewPiece(KindI, 10)
	for step := 1; step <= 18; step++ {
		require.True(t, f.CanPlace(p, 0, 1), "step %d", step)
		p.Move(0, 1)
	}
	assert.False(t, f.CanPlace(p, 0, 1), "step 19")
	assert.Equal(t, 19, p.Origin().Y)
}

func TestCanRotateLeavesPieceUnchanged(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	for _, p := range allPieces(f.Width()) {
		before := p
		f.CanRotate(p)
		assert.Equal(t, before, p)
	}
}

func TestCanRotateChecksTopAndBlocks(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)

	p := NewPiece(KindI, 10)
	assert.True(t, f.CanRotate(p))

	p.Move(0, -2) // horizontal at y=-1
	assert.True(t, f.CanPlace(p, 0, 0), "placement ignores the top")
	assert.False(t, f.CanRotate(p), "rotation checks the top")

	p = NewPiece(KindI, 10)
	f.SetCell(4, 3, core.ColorGray)
	assert.False(t, f.CanRotate(p), "vertical I would overlap (4,3)")
}

func TestCanRotateAtRightWall(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	p := NewPiece(KindI, 10)
	p.Rotate()
	p.Move(5, 0) // vertical at x=9
	require.True(t, f.CanPlace(p, 0, 0))
	assert.False(t, f.CanRotate(p), "horizontal I would leave the field")
}

func TestFreeze(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	p := NewPiece(KindL, 10)
	p.Move(0, 10)
	f.Freeze(p)
	for _, c := range p.Cells() {
		assert.Equal(t, core.ColorOrange, f.Cell(c.X, c.Y))
	}
}

func TestFreezeSkipsCellsAboveTop(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	p := NewPiece(KindI, 10)
	p.Rotate()
	p.Move(0, -3) // vertical, y in [-2, 1]
	assert.NotPanics(t, func() { f.Freeze(p) })
	assert.Equal(t, core.ColorCyan, f.Cell(4, 0))
	assert.Equal(t, core.ColorCyan, f.Cell(4, 1))
}

func TestClearLinesTwoSeparatedRows(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	f.Fill(3, core.ColorGray)
	f.Fill(7, core.ColorGray)
	f.SetCell(1, 0, core.ColorRed)
	f.SetCell(2, 5, core.ColorBlue)
	f.SetCell(0, 19, core.ColorGreen)

	assert.Equal(t, 2, f.ClearLines())
	for y := 0; y < f.Height(); y++ {
		assert.False(t, f.RowFull(y), "row %d still full", y)
	}
	assert.Equal(t, core.ColorRed, f.Cell(1, 2))
	assert.Equal(t, core.ColorBlue, f.Cell(2, 6))
	assert.Equal(t, core.ColorGreen, f.Cell(0, 19), "rows below are untouched")
	assert.True(t, f.IsEmpty(1, 0))
}

func TestClearLinesNoneFull(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	f.Fill(19, core.ColorGray, 0)
	assert.Equal(t, 0, f.ClearLines())
	assert.Equal(t, core.ColorGray, f.Cell(1, 19))
}

func TestClearLinesAdjacentRows(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	for y := 16; y < 20; y++ {
		f.Fill(y, core.ColorGray)
	}
	f.SetCell(3, 15, core.ColorRed)

	assert.Equal(t, 4, f.ClearLines())
	assert.Equal(t, core.ColorRed, f.Cell(3, 19))
	assert.True(t, f.IsEmpty(3, 15))
}

func TestClearLinesCompactionPolicies(t *testing.T) {
	setup := func(c Compaction) *Playfield {
		f := NewPlayfield(10, 20, c)
		f.Fill(19, core.ColorGray)
		f.SetCell(3, 0, core.ColorRed)
		f.SetCell(4, 1, core.ColorBlue)
		return f
	}

	full := setup(CompactFull)
	require.Equal(t, 1, full.ClearLines())
	assert.True(t, full.IsEmpty(3, 0))
	assert.Equal(t, core.ColorRed, full.Cell(3, 1))
	assert.True(t, full.IsEmpty(4, 1))
	assert.Equal(t, core.ColorBlue, full.Cell(4, 2))

	legacy := setup(CompactLegacy)
	require.Equal(t, 1, legacy.ClearLines())
	assert.Equal(t, core.ColorRed, legacy.Cell(3, 0), "row 0 is never rewritten")
	assert.Equal(t, core.ColorBlue, legacy.Cell(4, 1), "row 1 is copied, not moved")
	assert.Equal(t, core.ColorBlue, legacy.Cell(4, 2))
	assert.True(t, legacy.IsEmpty(3, 1))
}

func TestFreezeOIntoGapClearsOneLine(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	f.Fill(19, core.ColorGray, 5)

	p := NewPiece(KindO, 10)
	p.Move(0, 17) // bottom cells at (4,19) and (5,19)
	f.Freeze(p)

	assert.Equal(t, 1, f.ClearLines())
	assert.Equal(t, core.ColorYellow, f.Cell(4, 19))
	assert.Equal(t, core.ColorYellow, f.Cell(5, 19))
	assert.True(t, f.IsEmpty(0, 19))
}

func TestPlayfieldResetAndBounds(t *testing.T) {
	f := NewPlayfield(10, 20, CompactFull)
	f.Fill(10, core.ColorGray)
	f.SetCell(-1, 0, core.ColorRed)
	f.SetCell(0, 20, core.ColorRed)
	assert.Equal(t, core.ColorDefault, f.Cell(-1, 0))
	assert.Equal(t, core.ColorDefault, f.Cell(10, 0))
	assert.False(t, f.RowFull(-1))

	grid := f.Grid()
	grid[0][10] = core.ColorRed
	assert.Equal(t, core.ColorGray, f.Cell(0, 10), "Grid returns a copy")

	f.Reset()
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			require.True(t, f.IsEmpty(x, y))
		}
	}
}
