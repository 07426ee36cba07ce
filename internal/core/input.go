package core

// Action is a semantic input, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Move paddle/player left
	ActionRight          // Move paddle/player right
	ActionJump           // Launch the ball, start falling
	ActionClear          // Clear all balls in play
	ActionRestart        // Restart after game over
	ActionQuit           // Leave the game
	ActionPause          // Toggle pause
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionJump:    "Jump",
	ActionClear:   "Clear",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one tick.
// The zero value is an empty frame and frames copy by value.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
// ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Any reports whether any action other than the listed ones was triggered.
func (f InputFrame) Any(except ...Action) bool {
	bits := f.bits
	for _, a := range except {
		if a < actionCount {
			bits &^= 1 << a
		}
	}
	return bits != 0
}

// Direction folds Left/Right into -1, 0 or +1.
func (f InputFrame) Direction() int {
	dir := 0
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
