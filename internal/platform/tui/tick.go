// Package tui provides the Bubble Tea integration for the Tetris game.
// It handles the terminal UI loop, input mapping, modal screens and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game model that scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickGen numbers game models so ticks outliving their game can be dropped.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
