package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Named keys: "Enter", "Escape", "Tab", "Up", "F5", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Modifier+key format (Ctrl+S, Alt+F4). A trailing "+" is the literal
	// plus key, possibly with modifiers ("Ctrl++").
	if strings.Contains(spec, "+") && !strings.HasSuffix(spec, "++") && spec != "+" {
		if i := strings.LastIndex(spec, "+"); i > 0 && i < len(spec)-1 {
			return parseModifierStyle(spec)
		}
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in binding tables.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic("invalid key spec: " + spec + ": " + err.Error())
	}
	return ev
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) > 1 {
		// "<C-->" style literal hyphen
		keyPart = "-"
		parts = parts[:len(parts)-1]
	}

	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "c":
			mods = mods.With(ModCtrl)
		case "a", "m":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseKeyWithModifiers resolves the key part and attaches modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	// Single character keys are taken literally, case preserved.
	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return NewRuneEvent(r, mods), nil
	}

	if code := CodeFromName(keyPart); code != CodeNone {
		return NewEvent(code, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
