package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vforge/bubblestorm/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestMapKeyMovement(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key  string
		want core.Action
	}{
		{"w", core.ActionUp},
		{"up", core.ActionUp},
		{"s", core.ActionDown},
		{"down", core.ActionDown},
		{"a", core.ActionLeft},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"right", core.ActionRight},
		{"f", core.ActionFire},
		{"space", core.ActionFire},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
	}

	for _, tc := range cases {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if isQuit {
			t.Errorf("Key %q mapped to quit", tc.key)
		}
		if action != tc.want {
			t.Errorf("Key %q mapped to %v, expected %v", tc.key, action, tc.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, k := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(k))
		if !isQuit || action != core.ActionQuit {
			t.Errorf("Key %q should map to quit, got %v", k, action)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKeyToMenuAction(keyMsg("w")); got != MenuActionUp {
		t.Errorf("w in menu = %v, expected MenuActionUp", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter in menu = %v, expected MenuActionSelect", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab in menu = %v, expected MenuActionScoreboard", got)
	}
}
