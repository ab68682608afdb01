package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/word-rush/internal/core"
)

// GameKeyMap holds the in-game bindings. Letter and digit keys are not
// bindings; they are passed through as typed text.
type GameKeyMap struct {
	Submit    key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Shuffle   key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Finish    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// DefaultGameKeyMap returns default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "undo letter")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Shuffle:   key.NewBinding(key.WithKeys(" ", "tab"), key.WithHelp("space", "shuffle")),
		Pause:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pause")),
		Restart:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "new round")),
		Finish:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "end round")),
		Back:      key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "menu")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to an action.
// Returns ActionNone for keys that are not bindings.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	case key.Matches(msg, km.keys.Submit):
		return core.ActionSubmit
	case key.Matches(msg, km.keys.Backspace):
		return core.ActionBackspace
	case key.Matches(msg, km.keys.Clear):
		return core.ActionClear
	case key.Matches(msg, km.keys.Shuffle):
		return core.ActionShuffle
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Finish):
		return core.ActionFinish
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Quit and Back are returned instead of being recorded in the frame.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action := km.MapKey(msg)
	switch action {
	case core.ActionQuit, core.ActionBack:
		return action
	case core.ActionNone:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			for _, r := range msg.Runes {
				if unicode.IsLetter(r) || unicode.IsDigit(r) {
					frame.Type(r)
				}
			}
		}
	default:
		frame.Set(action)
	}
	return action
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
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
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
