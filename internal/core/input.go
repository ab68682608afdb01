package core

// Action represents a semantic game action, abstracted from physical key presses.
// Letter keys are not actions; they arrive as runes in InputFrame.Text.
type Action int

const (
	ActionNone      Action = iota
	ActionSubmit           // Enter - submit the current word
	ActionBackspace        // Backspace - drop the last selected tile
	ActionClear            // Esc - clear the selection
	ActionShuffle          // Space, Tab - shuffle the rack
	ActionPause            // Ctrl+P - pause/unpause
	ActionRestart          // Ctrl+R - deal a new round
	ActionFinish           // Ctrl+E - end the round early
	ActionBack             // Ctrl+B - back to menu
	ActionQuit             // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSubmit:
		return "Submit"
	case ActionBackspace:
		return "Backspace"
	case ActionClear:
		return "Clear"
	case ActionShuffle:
		return "Shuffle"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionFinish:
		return "Finish"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Text holds letters typed this frame, in order.
	Text []rune
	// Dt is the time this tick covers, in milliseconds.
	Dt int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Type appends a typed letter to the frame.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was pressed this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Text) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
	f.Dt = 0
}
