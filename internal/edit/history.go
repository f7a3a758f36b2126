package edit

import (
	"bytes"
	"sync"
)

// DefaultMaxDepth bounds the undo stack when no depth is given.
const DefaultMaxDepth = 100

// History is a snapshot-based undo/redo stack. Snapshots are owned copies of
// widget content; Capture copies its input, Undo and Redo move snapshots
// between the stacks without reallocating them.
//
// The oldest captured state is never evicted by Undo: it is the floor the
// widget can always return to.
type History struct {
	mu       sync.Mutex
	undo     [][]byte
	redo     [][]byte
	maxDepth int
}

// NewHistory creates a history bounded to maxDepth snapshots.
// A depth of zero or less uses DefaultMaxDepth.
func NewHistory(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &History{maxDepth: maxDepth}
}

// Capture records a snapshot. Capturing bytes identical to the current top
// is a no-op. Any real capture clears the redo stack and, when the undo
// stack exceeds the depth bound, evicts the oldest snapshot.
func (h *History) Capture(snapshot []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.undo); n > 0 && bytes.Equal(h.undo[n-1], snapshot) {
		return
	}

	owned := append([]byte(nil), snapshot...)
	h.undo = append(h.undo, owned)
	h.redo = nil

	if len(h.undo) > h.maxDepth {
		excess := len(h.undo) - h.maxDepth
		h.undo = h.undo[excess:]
	}
}

// Undo moves the current top to the redo stack and returns the state
// beneath it. With one or zero states recorded there is nothing to go back
// to and Undo returns (nil, false).
func (h *History) Undo() ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) <= 1 {
		return nil, false
	}

	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, top)
	return h.undo[len(h.undo)-1], true
}

// Redo moves the most recent redo entry back onto the undo stack and
// returns it. Returns (nil, false) when there is nothing to redo.
func (h *History) Redo() ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return nil, false
	}

	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, top)
	return top, true
}

// CanUndo reports whether Undo would return a state.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 1
}

// CanRedo reports whether Redo would return a state.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

// Depth returns the number of snapshots on the undo stack.
func (h *History) Depth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo)
}

// Clear drops all recorded state.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo = nil
	h.redo = nil
}
