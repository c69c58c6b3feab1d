package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to game key codes.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameKey translates a key message to the key code the simulation's
// input mapper understands. Returns the code (may be empty) and whether
// the key is a quit request.
func (km *KeyMapper) GameKey(msg tea.KeyMsg) (key string, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return "", true
	case "up", "k":
		return "up", false
	case "down", "j":
		return "down", false
	case "left", "h":
		return "left", false
	case "right", "l":
		return "right", false
	case "w", "a", "s", "d", "p", "r", "esc", "enter", " ":
		return msg.String(), false
	}
	return "", false
}

// IsScoreboardKey reports whether the key opens the scoreboard from the
// menu screen.
func (km *KeyMapper) IsScoreboardKey(msg tea.KeyMsg) bool {
	return msg.String() == "tab"
}
