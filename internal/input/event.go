package input

import (
	"fmt"

	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/mouse"
)

// Kind tags the active variant of an Event.
type Kind uint8

const (
	// KindUnknown marks input the decoder could not classify.
	KindUnknown Kind = iota
	// KindKey marks a key press event.
	KindKey
	// KindChord marks two key presses combined within the chord window.
	KindChord
	// KindMouse marks a mouse event.
	KindMouse
	// KindResize marks a terminal size change.
	KindResize
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindChord:
		return "chord"
	case KindMouse:
		return "mouse"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is the canonical decode result. Exactly one variant is active,
// selected by Kind; the value is immutable once produced.
type Event struct {
	Kind Kind

	// Key is set for KindKey.
	Key key.Event

	// Chord is set for KindChord.
	Chord key.Chord

	// Mouse is set for KindMouse.
	Mouse mouse.Event

	// Width and Height are set for KindResize, in character cells.
	Width  int
	Height int
}

// Unknown returns the universal fallback event.
func Unknown() Event {
	return Event{Kind: KindUnknown}
}

// Key wraps a key event.
func Key(ev key.Event) Event {
	return Event{Kind: KindKey, Key: ev}
}

// Chord wraps a completed chord.
func Chord(c key.Chord) Event {
	return Event{Kind: KindChord, Chord: c}
}

// Mouse wraps a mouse event.
func Mouse(ev mouse.Event) Event {
	return Event{Kind: KindMouse, Mouse: ev}
}

// Resize builds a resize event with the new size in character cells.
func Resize(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// String returns a compact description for logging.
func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		return "key " + e.Key.String()
	case KindChord:
		return "chord " + e.Chord.String()
	case KindMouse:
		return "mouse " + e.Mouse.String()
	case KindResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	default:
		return "unknown"
	}
}
