package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg  tea.KeyMsg
		want Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionLeft},
		{runeKey('h'), ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, ActionRight},
		{runeKey('l'), ActionRight},
		{tea.KeyMsg{Type: tea.KeyDown}, ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeySpace}, ActionHardDrop},
		{tea.KeyMsg{Type: tea.KeyUp}, ActionRotateCW},
		{runeKey('x'), ActionRotateCW},
		{runeKey('z'), ActionRotateCCW},
		{runeKey('a'), ActionHalfTurn},
		{runeKey('c'), ActionSwap},
		{tea.KeyMsg{Type: tea.KeyTab}, ActionSwap},
		{runeKey('r'), ActionRestart},
		{runeKey('q'), ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{runeKey('?'), ActionNone},
	}

	for _, c := range cases {
		if got := km.MapKey(c.msg); got != c.want {
			t.Errorf("MapKey(%q) = %v, expected %v", c.msg.String(), got, c.want)
		}
	}
}
