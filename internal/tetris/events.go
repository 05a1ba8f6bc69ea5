package tetris

// Action is a decoded player input. The input source maps raw keys to
// actions; it never decides whether an action is relevant in the current
// state — that filtering belongs to the session.
type Action int

const (
	ActionDown Action = iota
	ActionLeft
	ActionRight
	ActionRotate
	ActionPlay
	ActionPause
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionPlay:
		return "Play"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is one item on the game's single ordered event queue: either a
// gravity tick or a key action.
type Event struct {
	Tick bool
	Key  Action
}

// TickEvent returns a gravity tick event.
func TickEvent() Event {
	return Event{Tick: true}
}

// KeyEvent returns a key event for the given action.
func KeyEvent(a Action) Event {
	return Event{Key: a}
}
