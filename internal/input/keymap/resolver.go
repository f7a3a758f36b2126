package keymap

import (
	"sync"

	"github.com/dshills/termkit/internal/input/key"
)

// baseline maps the named navigation keys to cursor actions. It is consulted
// only after every profile has failed to match.
var baseline = map[key.Code]Action{
	key.CodeUp:       "cursor.up",
	key.CodeDown:     "cursor.down",
	key.CodeLeft:     "cursor.left",
	key.CodeRight:    "cursor.right",
	key.CodeHome:     "cursor.line_start",
	key.CodeEnd:      "cursor.line_end",
	key.CodePageUp:   "cursor.page_up",
	key.CodePageDown: "cursor.page_down",
}

// Resolver resolves key events against an ordered list of profiles.
// Profile order is resolution priority: the caller composes it once and the
// first match anywhere wins.
type Resolver struct {
	mu       sync.Mutex
	profiles []*Profile
}

// NewResolver creates a resolver scanning the given profiles in order.
func NewResolver(profiles ...*Profile) *Resolver {
	return &Resolver{profiles: profiles}
}

// Push appends a profile at the lowest priority position.
func (r *Resolver) Push(p *Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = append(r.profiles, p)
}

// Remove drops the first profile with the given name.
func (r *Resolver) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.profiles {
		if p.Name == name {
			r.profiles = append(r.profiles[:i], r.profiles[i+1:]...)
			return true
		}
	}
	return false
}

// Profile returns the named profile, or nil.
func (r *Resolver) Profile(name string) *Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Resolve returns the action bound to ev. Profiles are scanned in order and
// each profile's bindings in order; the first structural match wins. When no
// profile matches, unmodified navigation keys fall back to the baseline
// table. No match yields (ActionNone, false).
func (r *Resolver) Resolve(ev key.Event) (Action, bool) {
	r.mu.Lock()
	profiles := r.profiles
	r.mu.Unlock()

	for _, p := range profiles {
		if action, ok := p.Match(ev); ok {
			return action, true
		}
	}

	if ev.Mod == key.ModNone && ev.Code.IsNavigation() {
		if action, ok := baseline[ev.Code]; ok {
			return action, true
		}
	}
	return ActionNone, false
}
