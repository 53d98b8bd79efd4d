package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is one player command derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
	ActionHalfTurn
	ActionSwap
	ActionRestart
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "left", "h":
		return ActionLeft
	case "right", "l":
		return ActionRight
	case "down", "j":
		return ActionSoftDrop
	case " ":
		return ActionHardDrop
	case "up", "k", "x":
		return ActionRotateCW
	case "z":
		return ActionRotateCCW
	case "a":
		return ActionHalfTurn
	case "c", "tab":
		return ActionSwap
	case "r":
		return ActionRestart
	}
	return ActionNone
}
