package mouse

import "fmt"

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse motion.
	ActionMove
	// ActionScrollUp indicates wheel scroll away from the user.
	ActionScrollUp
	// ActionScrollDown indicates wheel scroll toward the user.
	ActionScrollDown
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// IsScroll returns true for the scroll actions.
func (a Action) IsScroll() bool {
	return a == ActionScrollUp || a == ActionScrollDown
}

// Event represents a mouse input event.
type Event struct {
	// Action is the type of mouse action.
	Action Action

	// X and Y are the 1-indexed terminal coordinates, column before row.
	X int
	Y int

	// Button is the 1-indexed button number. For scroll actions it reflects
	// the wheel pseudo-button reported by the terminal.
	Button int

	// Delta is the scroll direction: -1 for scroll-up, +1 for scroll-down.
	// It is meaningful only when Action.IsScroll() is true.
	Delta int
}

// Cell returns the event position translated to 0-indexed cell coordinates.
func (e Event) Cell() (x, y int) {
	return e.X - 1, e.Y - 1
}

// String returns a representation like "press b1 @10,5".
func (e Event) String() string {
	return fmt.Sprintf("%s b%d @%d,%d", e.Action, e.Button, e.X, e.Y)
}
