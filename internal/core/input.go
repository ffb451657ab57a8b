package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform translates keys into actions; the engine never sees raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // S, Enter - start or resume
	ActionPause            // P, Escape - toggle pause
	ActionTerminate        // Q, Ctrl+C - end the session
	ActionLeft             // Left arrow, H - shift left
	ActionRight            // Right arrow, L - shift right
	ActionUp               // Up arrow, K - rotate
	ActionDown             // Down arrow, J - soft drop
	ActionDrop             // Space - hard drop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionTerminate:
		return "Terminate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionDrop:
		return "Drop"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the defined actions.
func (a Action) Valid() bool {
	return a >= ActionNone && a <= ActionDrop
}

// InputSlot holds at most one pending action between two polls.
// A newer action replaces an older one, except that a pending Terminate
// is never replaced. There is no queue.
type InputSlot struct {
	pending Action
}

// Put stores an action. Undefined actions are dropped.
func (s *InputSlot) Put(a Action) {
	if !a.Valid() || s.pending == ActionTerminate {
		return
	}
	s.pending = a
}

// Take returns the pending action and empties the slot.
func (s *InputSlot) Take() Action {
	a := s.pending
	s.pending = ActionNone
	return a
}
