package key

import (
	"fmt"
	"strings"
)

// Event represents a single key press event.
type Event struct {
	// Code identifies the key pressed.
	Code Code

	// Mod contains the active modifier keys.
	Mod Modifier
}

// NewEvent creates a key event.
func NewEvent(code Code, mod Modifier) Event {
	return Event{Code: code, Mod: mod}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mod Modifier) Event {
	return Event{Code: Code(r), Mod: mod}
}

// IsSpecial returns true if this is a synthetic named key.
func (e Event) IsSpecial() bool {
	return e.Code.IsSpecial()
}

// IsModified returns true if any modifier is pressed.
func (e Event) IsModified() bool {
	return e.Mod != ModNone
}

// Normalize folds raw Ctrl+letter control bytes (codes 1-26) back to their
// base letter with ModCtrl set, so that a decoded 0x13 byte and a parsed
// "Ctrl+S" binding compare equal. Other events are returned unchanged.
func (e Event) Normalize() Event {
	if e.Code >= 1 && e.Code <= 26 && e.Code != CodeTab && e.Code != CodeEnter {
		return Event{
			Code: 'a' + e.Code - 1,
			Mod:  e.Mod.With(ModCtrl),
		}
	}
	return e
}

// Equals returns true if two events represent the same key press.
// Comparison is modifier aware and normalizes Ctrl+letter control bytes.
func (e Event) Equals(other Event) bool {
	a, b := e.Normalize(), other.Normalize()
	return a.Code == b.Code && a.Mod == b.Mod
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// String returns a canonical representation like "a", "Ctrl+s", or
// "Ctrl+Shift+Up". Modifiers keep the fixed Ctrl, Alt, Shift order.
func (e Event) String() string {
	n := e.Normalize()

	var name string
	switch {
	case n.Code.IsSpecial() || n.Code.IsControl():
		name = n.Code.String()
	case n.Code == CodeSpace:
		name = "Space"
	default:
		name = string(rune(n.Code))
	}

	if mods := n.Mod.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("key.Event{Code: %s, Mod: %q}", e.Code.String(), e.Mod.String())
}

// Chord is an ordered pair of key events delivered as one combined event
// because the second arrived within the chord window of the first.
type Chord struct {
	First  Event
	Second Event
}

// String returns a representation like "Ctrl+k Ctrl+c".
func (c Chord) String() string {
	return strings.Join([]string{c.First.String(), c.Second.String()}, " ")
}
