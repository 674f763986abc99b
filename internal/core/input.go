package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move commander left
	ActionRight            // D, Right arrow - move commander right
	ActionUp               // W, Up arrow - move commander up / menu up
	ActionDown             // S, Down arrow - move commander down / menu down
	ActionFire             // Space - fire selected defense
	ActionSelect1          // 1 - firewall
	ActionSelect2          // 2 - encryption
	ActionSelect3          // 3 - detection
	ActionSelect4          // 4 - education
	ActionDeploy           // E - deploy agent of the selected type
	ActionSpecial          // X - special ability of the selected type
	ActionKnowledge        // K - toggle the knowledge journal
	ActionConfirm          // Enter - confirm selection / dismiss banner
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionFire:      "Fire",
	ActionSelect1:   "Select1",
	ActionSelect2:   "Select2",
	ActionSelect3:   "Select3",
	ActionSelect4:   "Select4",
	ActionDeploy:    "Deploy",
	ActionSpecial:   "Special",
	ActionKnowledge: "Knowledge",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the player's input during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool, len(actions)),
	}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
