package keymap

import (
	"fmt"
	"sync"

	"github.com/dshills/termkit/internal/input/key"
)

// Action is a semantic editor action identifier.
// Examples: "cursor.down", "edit.undo", "editor.save".
type Action string

// ActionNone is the zero action, returned when nothing matches.
const ActionNone Action = ""

// Binding maps one key event to an action.
type Binding struct {
	// Keys is the key spec that triggers this binding.
	// Formats: "j", "Ctrl+s", "<C-S-a>", "F5".
	Keys string

	// Action is the action to resolve to.
	Action Action

	// Description documents the binding for display.
	Description string

	// event is the parsed form of Keys, filled by Profile.compile.
	event key.Event
}

// Profile is an ordered list of bindings. Earlier bindings win; the first
// structural match terminates the scan.
type Profile struct {
	// Name identifies the profile.
	Name string

	// Source indicates where this profile was defined.
	// Examples: "builtin", "user", "lua:my-profile.lua".
	Source string

	// mu covers bindings; the watcher may swap them from its goroutine
	// while the poll loop resolves.
	mu       sync.RWMutex
	bindings []Binding
}

// NewProfile creates an empty profile with the given name.
func NewProfile(name string) *Profile {
	return &Profile{Name: name, Source: "builtin"}
}

// Add appends a binding parsed from a key spec. Invalid specs panic; use
// AddBinding for untrusted input.
func (p *Profile) Add(keys string, action Action) *Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bindings = append(p.bindings, Binding{
		Keys:   keys,
		Action: action,
		event:  key.MustParse(keys),
	})
	return p
}

// AddBinding appends a binding, parsing its key spec.
func (p *Profile) AddBinding(b Binding) error {
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	b.event = ev
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bindings = append(p.bindings, b)
	return nil
}

// Len returns the number of bindings in the profile.
func (p *Profile) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.bindings)
}

// Bindings returns a copy of the profile's bindings in scan order.
func (p *Profile) Bindings() []Binding {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Binding, len(p.bindings))
	copy(out, p.bindings)
	return out
}

// Match returns the action of the first binding structurally equal to ev.
func (p *Profile) Match(ev key.Event) (Action, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for i := range p.bindings {
		if p.bindings[i].event.Equals(ev) {
			return p.bindings[i].Action, true
		}
	}
	return ActionNone, false
}

// Replace swaps the profile's bindings for those of another profile while
// keeping identity. Used by the watcher for in-place reload.
func (p *Profile) Replace(other *Profile) {
	fresh := other.Bindings()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bindings = fresh
}
