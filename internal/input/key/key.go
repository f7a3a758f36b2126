package key

import (
	"fmt"
	"strings"
)

// Code identifies a keyboard key as a Unicode scalar value.
// Values 0-31 are raw control bytes, 32-126 are printable ASCII, and values
// at or above SpecialBase are synthetic named keys with no byte equivalent.
type Code rune

// SpecialBase is the first synthetic named key code. Everything below it is
// a literal character; everything at or above it is a named key. Consumers
// rely on this boundary via IsSpecial.
const SpecialBase Code = 1000

// Control byte codes that carry well-known names.
const (
	CodeNone      Code = 0
	CodeTab       Code = 0x09
	CodeEnter     Code = 0x0d
	CodeEscape    Code = 0x1b
	CodeSpace     Code = 0x20
	CodeBackspace Code = 0x7f
)

// Synthetic named keys. The numbering is fixed: Up=1001 through F12=1022.
const (
	CodeUp Code = SpecialBase + 1 + iota
	CodeDown
	CodeLeft
	CodeRight
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeInsert
	CodeDelete
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// IsSpecial returns true for synthetic named keys (arrows, navigation,
// function keys). This is the >= 1000 contract from the code space.
func (c Code) IsSpecial() bool {
	return c >= SpecialBase
}

// IsControl returns true for raw control bytes (0-31 and 127).
func (c Code) IsControl() bool {
	return (c >= 0 && c < 0x20) || c == CodeBackspace
}

// IsPrintable returns true for codes that render as a character.
func (c Code) IsPrintable() bool {
	return c >= CodeSpace && c != CodeBackspace && !c.IsSpecial()
}

// IsArrow returns true for the four arrow keys.
func (c Code) IsArrow() bool {
	return c >= CodeUp && c <= CodeRight
}

// IsNavigation returns true for arrows, Home/End, and PageUp/PageDown.
func (c Code) IsNavigation() bool {
	return c.IsArrow() || (c >= CodeHome && c <= CodePageDown)
}

// IsFunction returns true for function keys F1-F12.
func (c Code) IsFunction() bool {
	return c >= CodeF1 && c <= CodeF12
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodeTab:
		return "Tab"
	case CodeEnter:
		return "Enter"
	case CodeEscape:
		return "Escape"
	case CodeSpace:
		return "Space"
	case CodeBackspace:
		return "Backspace"
	case CodeUp:
		return "Up"
	case CodeDown:
		return "Down"
	case CodeLeft:
		return "Left"
	case CodeRight:
		return "Right"
	case CodeHome:
		return "Home"
	case CodeEnd:
		return "End"
	case CodePageUp:
		return "PageUp"
	case CodePageDown:
		return "PageDown"
	case CodeInsert:
		return "Insert"
	case CodeDelete:
		return "Delete"
	}
	if c.IsFunction() {
		return fmt.Sprintf("F%d", int(c-CodeF1)+1)
	}
	if c > 0 && c < 0x20 {
		return fmt.Sprintf("Ctrl-%c", rune('a'+c-1))
	}
	if c.IsPrintable() || c > CodeBackspace && c < SpecialBase {
		return string(rune(c))
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// codeNameMap maps key names (lowercase) to Code values.
var codeNameMap = map[string]Code{
	"tab":       CodeTab,
	"enter":     CodeEnter,
	"return":    CodeEnter,
	"cr":        CodeEnter,
	"escape":    CodeEscape,
	"esc":       CodeEscape,
	"space":     CodeSpace,
	"backspace": CodeBackspace,
	"bs":        CodeBackspace,
	"up":        CodeUp,
	"down":      CodeDown,
	"left":      CodeLeft,
	"right":     CodeRight,
	"home":      CodeHome,
	"end":       CodeEnd,
	"pageup":    CodePageUp,
	"pgup":      CodePageUp,
	"pagedown":  CodePageDown,
	"pgdn":      CodePageDown,
	"insert":    CodeInsert,
	"ins":       CodeInsert,
	"delete":    CodeDelete,
	"del":       CodeDelete,
	"f1":        CodeF1,
	"f2":        CodeF2,
	"f3":        CodeF3,
	"f4":        CodeF4,
	"f5":        CodeF5,
	"f6":        CodeF6,
	"f7":        CodeF7,
	"f8":        CodeF8,
	"f9":        CodeF9,
	"f10":       CodeF10,
	"f11":       CodeF11,
	"f12":       CodeF12,
}

// CodeFromName returns the Code for a given name (case-insensitive).
// Returns CodeNone if the name is not recognized.
func CodeFromName(name string) Code {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := codeNameMap[name]; ok {
		return c
	}
	return CodeNone
}
