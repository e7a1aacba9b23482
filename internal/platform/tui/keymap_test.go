package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("w"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runes("s"), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runes("d"), core.ActionRight},
		{runes("u"), core.ActionUndo},
		{runes("r"), core.ActionRestart},
		{runes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}
	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMenuKeyMapAction(t *testing.T) {
	keys := DefaultMenuKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runes("o"), MenuActionSettings},
		{runes("q"), MenuActionQuit},
		{runes("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := keys.MenuAction(tt.msg); got != tt.want {
			t.Errorf("MenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
