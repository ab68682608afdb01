package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/word-rush/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSubmit},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBackspace},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionClear},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionShuffle},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionShuffle},
		{"ctrl+p", tea.KeyMsg{Type: tea.KeyCtrlP}, core.ActionPause},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionRestart},
		{"ctrl+e", tea.KeyMsg{Type: tea.KeyCtrlE}, core.ActionFinish},
		{"ctrl+b", tea.KeyMsg{Type: tea.KeyCtrlB}, core.ActionBack},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"letter", runes("q"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%s) = %v, expected %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrameTypesText(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runes("t"), &frame)
	km.MapKeyToFrame(runes("E"), &frame)
	km.MapKeyToFrame(runes("3"), &frame)
	km.MapKeyToFrame(runes("!"), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)

	if got := string(frame.Text); got != "tE3" {
		t.Errorf("Text = %q, expected letters and digits only", got)
	}
	if !frame.Has(core.ActionSubmit) {
		t.Error("Enter should be recorded as submit")
	}
}

func TestMapKeyToFrameReturnsQuitAndBack(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if a := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame); a != core.ActionQuit {
		t.Errorf("ctrl+c = %v, expected quit", a)
	}
	if a := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlB}, &frame); a != core.ActionBack {
		t.Errorf("ctrl+b = %v, expected back", a)
	}
	if !frame.Empty() {
		t.Error("quit and back should not be recorded in the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runes("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
