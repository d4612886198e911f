package core

// Action represents a semantic player command, abstracted from the keys or
// text that produced it.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W - one row toward the start
	ActionLeft         // A - one column left
	ActionDown         // S - one row toward the destination
	ActionRight        // D - one column right
	ActionJump         // J - absolute destination (row, col)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// Delta returns the unit offset of a directional action.
// ok is false for Jump and None, which have no relative offset.
func (a Action) Delta() (d Pos, ok bool) {
	switch a {
	case ActionUp:
		return P(-1, 0), true
	case ActionLeft:
		return P(0, -1), true
	case ActionDown:
		return P(1, 0), true
	case ActionRight:
		return P(0, 1), true
	}
	return Pos{}, false
}

// IsDirection returns true for the four unit moves.
func (a Action) IsDirection() bool {
	_, ok := a.Delta()
	return ok
}
