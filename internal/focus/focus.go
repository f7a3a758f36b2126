package focus

import (
	"github.com/dshills/termkit/internal/input/key"
)

// Direction selects a focus movement.
type Direction uint8

const (
	// Next advances to the following element.
	Next Direction = iota
	// Previous retreats to the preceding element.
	Previous
	// Up is an alias for Previous.
	Up
	// Down is an alias for Next.
	Down
	// Left is an alias for Previous.
	Left
	// Right is an alias for Next.
	Right
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// forward reports whether the direction advances through the ring.
func (d Direction) forward() bool {
	switch d {
	case Next, Down, Right:
		return true
	default:
		return false
	}
}

// Focusable is the capability an element exposes to participate in focus
// traversal. HandleKey returns true when the element consumed the event.
type Focusable interface {
	ID() string
	Focus()
	Blur()
	HandleKey(ev key.Event) bool
}

// Manager tracks an ordered list of focusable elements and the current
// focus. The zero index invariant: focus is either nil (empty list) or a
// valid index into the list.
type Manager struct {
	elements []Focusable
	current  int
	focused  bool
}

// NewManager creates an empty focus manager.
func NewManager() *Manager {
	return &Manager{}
}

// Len returns the number of managed elements.
func (m *Manager) Len() int {
	return len(m.elements)
}

// Current returns the focused element, or nil when nothing has focus.
func (m *Manager) Current() Focusable {
	if !m.focused {
		return nil
	}
	return m.elements[m.current]
}

// Add appends an element to the tab order. The first element added is
// focused immediately.
func (m *Manager) Add(f Focusable) {
	m.elements = append(m.elements, f)
	if len(m.elements) == 1 {
		m.current = 0
		m.focused = true
		f.Focus()
	}
}

// Remove detaches the element with the given id. Removing the focused
// element blurs it and, if any elements remain, focuses element 0.
// Removing an element before the focus cursor shifts the cursor so it keeps
// pointing at the same logical element.
func (m *Manager) Remove(id string) bool {
	idx := -1
	for i, f := range m.elements {
		if f.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	wasFocused := m.focused && m.current == idx
	if wasFocused {
		m.elements[idx].Blur()
		m.focused = false
	}

	m.elements = append(m.elements[:idx], m.elements[idx+1:]...)

	if m.focused && idx < m.current {
		m.current--
	}

	if !m.focused && len(m.elements) > 0 {
		m.current = 0
		m.focused = true
		m.elements[0].Focus()
	}
	return true
}

// Move shifts focus in the given direction, wrapping at either end.
// With nothing focused, any direction focuses element 0. Returns true when
// focus changed.
func (m *Manager) Move(d Direction) bool {
	if len(m.elements) == 0 {
		return false
	}

	if !m.focused {
		m.current = 0
		m.focused = true
		m.elements[0].Focus()
		return true
	}

	next := m.current
	if d.forward() {
		next = (m.current + 1) % len(m.elements)
	} else {
		next = (m.current - 1 + len(m.elements)) % len(m.elements)
	}
	if next == m.current {
		return false
	}

	m.elements[m.current].Blur()
	m.current = next
	m.elements[m.current].Focus()
	return true
}

// HandleKey routes a key event through the focus machinery:
//
//  1. Tab without ctrl/alt moves focus next; Shift+Tab moves previous.
//  2. The focused element gets first refusal via HandleKey.
//  3. An unconsumed unmodified arrow or vi h/j/k/l falls back to a focus
//     move.
//
// Returns true when the event was consumed at any step.
func (m *Manager) HandleKey(ev key.Event) bool {
	if ev.Code == key.CodeTab && !ev.Mod.HasCtrl() && !ev.Mod.HasAlt() {
		if ev.Mod.HasShift() {
			m.Move(Previous)
		} else {
			m.Move(Next)
		}
		return true
	}

	if cur := m.Current(); cur != nil && cur.HandleKey(ev) {
		return true
	}

	if d, ok := fallbackDirection(ev); ok {
		return m.Move(d)
	}
	return false
}

// fallbackDirection maps unmodified arrows and vi-style h/j/k/l to focus
// directions.
func fallbackDirection(ev key.Event) (Direction, bool) {
	if ev.Mod != key.ModNone {
		return 0, false
	}
	switch ev.Code {
	case key.CodeUp, 'k':
		return Up, true
	case key.CodeDown, 'j':
		return Down, true
	case key.CodeLeft, 'h':
		return Left, true
	case key.CodeRight, 'l':
		return Right, true
	default:
		return 0, false
	}
}
