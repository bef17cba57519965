package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every kind in catalog order. Piece draws index into it.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// Mask is a row-major occupancy grid: mask[y][x].
type Mask [][]bool

// Width returns the number of columns.
func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Mask) Height() int {
	return len(m)
}

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, set := range row {
			if set {
				n++
			}
		}
	}
	return n
}

type kindSpec struct {
	name   string
	color  core.Color
	shapes []Mask
}

var catalog = [...]kindSpec{
	KindI: {"I", core.ColorCyan, []Mask{
		mask("1111"),
		mask("1", "1", "1", "1"),
	}},
	KindO: {"O", core.ColorYellow, []Mask{
		mask("11", "11"),
	}},
	KindT: {"T", core.ColorMagenta, []Mask{
		mask("010", "111"),
		mask("10", "11", "10"),
		mask("111", "010"),
		mask("01", "11", "01"),
	}},
	KindS: {"S", core.ColorGreen, []Mask{
		mask("011", "110"),
		mask("10", "11", "01"),
	}},
	KindZ: {"Z", core.ColorRed, []Mask{
		mask("110", "011"),
		mask("01", "11", "10"),
	}},
	KindJ: {"J", core.ColorBlue, []Mask{
		mask("100", "111"),
		mask("11", "10", "10"),
		mask("111", "001"),
		mask("01", "01", "11"),
	}},
	KindL: {"L", core.ColorOrange, []Mask{
		mask("001", "111"),
		mask("11", "01", "01"),
		mask("111", "100"),
		mask("10", "10", "11"),
	}},
}

// mask builds a Mask from rows of '0'/'1'.
func mask(rows ...string) Mask {
	m := make(Mask, len(rows))
	for y, row := range rows {
		m[y] = make([]bool, len(row))
		for x, ch := range row {
			m[y][x] = ch == '1'
		}
	}
	return m
}

func (k Kind) valid() bool {
	return k >= KindI && k <= KindL
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.valid() {
		return "?"
	}
	return catalog[k].name
}

// Color returns the display color. Never core.ColorDefault for a valid kind.
func (k Kind) Color() core.Color {
	if !k.valid() {
		return core.ColorDefault
	}
	return catalog[k].color
}

// RotationCount returns the number of distinct rotation states (1, 2 or 4).
func (k Kind) RotationCount() int {
	if !k.valid() {
		return 0
	}
	return len(catalog[k].shapes)
}

// Shape returns the mask for a rotation index, wrapped into range.
// The returned mask is shared catalog data and must not be modified.
func (k Kind) Shape(rotation int) Mask {
	if !k.valid() {
		return nil
	}
	shapes := catalog[k].shapes
	r := rotation % len(shapes)
	if r < 0 {
		r += len(shapes)
	}
	return shapes[r]
}
