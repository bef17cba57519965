package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// N and S only mean something once the game is over.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, gameOver bool) core.Action {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit
	case "left", "h":
		return core.ActionLeft
	case "right", "l":
		return core.ActionRight
	case "up", "k":
		return core.ActionRotate
	case "down", "j":
		return core.ActionSoftDrop
	case " ":
		return core.ActionHardDrop
	case "p":
		return core.ActionPause
	case "esc":
		return core.ActionBack
	case "n", "N":
		if gameOver {
			return core.ActionRestart
		}
	case "s", "S":
		if gameOver {
			return core.ActionScores
		}
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
