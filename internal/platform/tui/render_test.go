package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(1, 0, "ab", core.ColorRed)
	s.DrawText(4, 0, "cd")
	s.DrawTextColor(0, 2, "zz", core.ColorCyan)

	lines := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], " ab cd") {
		t.Errorf("row 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "zz") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestDrawDialogCentersText(t *testing.T) {
	s := core.NewScreen(30, 11)
	drawDialog(s, core.ColorYellow, "hello")

	// 11x5 box at (9,3); the text starts two rows down, centered.
	row := []rune(s.Row(5))
	if got := string(row[12:17]); got != "hello" {
		t.Errorf("row 5 = %q, want hello at column 12", string(row))
	}
	if s.GetCell(9, 3).Color != core.ColorYellow {
		t.Errorf("box corner color = %v", s.GetCell(9, 3).Color)
	}
}
