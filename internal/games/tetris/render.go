package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants for the terminal view.
const (
	cellW      = 2  // Screen columns per field cell
	panelW     = 20 // Side panel width
	panelGap   = 2
	blockRune  = '█'
	emptyRune  = '·'
	ghostColor = core.ColorGray
)

var controls = []string{
	"←/→  move",
	"↑    rotate",
	"↓    soft drop",
	"spc  hard drop",
	"p    pause",
	"esc  quit",
}

// RequiredSize returns the minimum screen size needed to draw the game.
func (g *Game) RequiredSize() (int, int) {
	w := g.rules.Width*cellW + 2 + panelGap + panelW
	h := g.rules.Height + 2
	return w, h
}

// Render draws the board, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	needW, needH := g.RequiredSize()
	if dst.Width() < needW || dst.Height() < needH {
		renderTooSmall(dst, needW, needH)
		return
	}

	s := g.session
	boardW := s.rules.Width*cellW + 2
	boardH := s.rules.Height + 2
	left := (dst.Width() - needW) / 2
	top := (dst.Height() - needH) / 2

	board := core.NewRect(left, top, boardW, boardH)
	dst.DrawBox(board, core.ColorWhite)
	renderField(dst, s, board.X+1, board.Y+1)

	panelX := board.Right() + panelGap
	renderPanel(dst, s, g.Title(), panelX, top)

	switch {
	case s.GameOver():
		renderOverlay(dst, board, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", s.Score()),
			"",
			"N  new game",
			"S  high scores",
			"Esc quit",
		)
	case s.Paused():
		renderOverlay(dst, board, core.ColorYellow, "PAUSED", "", "P to resume")
	}
}

func renderField(dst *core.Screen, s *Session, ox, oy int) {
	f := s.field
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.IsEmpty(x, y) {
				dst.SetWithColor(ox+x*cellW, oy+y, ' ', core.ColorDefault)
				dst.SetWithColor(ox+x*cellW+1, oy+y, emptyRune, ghostColor)
				continue
			}
			drawBlock(dst, ox+x*cellW, oy+y, f.Cell(x, y))
		}
	}

	if s.GameOver() {
		return
	}
	cur := s.current
	for _, c := range cur.Cells() {
		if c.Y < 0 || c.Y >= f.Height() {
			continue
		}
		drawBlock(dst, ox+c.X*cellW, oy+c.Y, cur.Color())
	}
}

func renderPanel(dst *core.Screen, s *Session, title string, x, y int) {
	dst.DrawTextColor(x, y, title, core.ColorCyan)

	dst.DrawText(x, y+2, "NEXT")
	next := s.next
	for my, row := range next.Shape() {
		for mx, set := range row {
			if set {
				drawBlock(dst, x+1+mx*cellW, y+3+my, next.Color())
			}
		}
	}

	dst.DrawText(x, y+8, fmt.Sprintf("Score  %d", s.Score()))
	dst.DrawText(x, y+9, fmt.Sprintf("Level  %d", s.Level()))
	dst.DrawText(x, y+10, fmt.Sprintf("Lines  %d", s.Lines()))

	for i, line := range controls {
		dst.DrawTextColor(x, y+12+i, line, core.ColorGray)
	}
}

func renderOverlay(dst *core.Screen, board core.Rect, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	box := core.NewRect(board.X+(board.W-w)/2, board.Y+(board.H-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		lx := box.X + (w-len([]rune(l)))/2
		dst.DrawTextColor(lx, box.Y+1+i, l, c)
	}
}

func renderTooSmall(dst *core.Screen, needW, needH int) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Terminal too small", core.ColorYellow)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorDefault)
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetWithColor(x, y, blockRune, c)
	dst.SetWithColor(x+1, y, blockRune, c)
}
