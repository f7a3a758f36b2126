package edit

import (
	"bytes"
	"fmt"
	"testing"
)

func TestCaptureAndUndo(t *testing.T) {
	h := NewHistory(10)
	h.Capture([]byte("one"))
	h.Capture([]byte("two"))
	h.Capture([]byte("three"))

	state, ok := h.Undo()
	if !ok || string(state) != "two" {
		t.Errorf("Undo = %q, %v; want two", state, ok)
	}
	state, ok = h.Undo()
	if !ok || string(state) != "one" {
		t.Errorf("Undo = %q, %v; want one", state, ok)
	}
}

func TestUndoFloor(t *testing.T) {
	// The oldest state is retained; Undo never exposes an empty history.
	h := NewHistory(10)
	h.Capture([]byte("only"))

	if _, ok := h.Undo(); ok {
		t.Error("Undo with one state succeeded")
	}
	if h.Depth() != 1 {
		t.Errorf("Depth = %d after refused undo", h.Depth())
	}

	h = NewHistory(10)
	if _, ok := h.Undo(); ok {
		t.Error("Undo on empty history succeeded")
	}
}

func TestCaptureDedup(t *testing.T) {
	h := NewHistory(10)
	h.Capture([]byte("same"))
	h.Capture([]byte("same"))
	h.Capture([]byte("same"))

	if h.Depth() != 1 {
		t.Errorf("Depth = %d, want 1 after duplicate captures", h.Depth())
	}
}

func TestCaptureOwnsSnapshot(t *testing.T) {
	h := NewHistory(10)
	buf := []byte("original")
	h.Capture(buf)
	h.Capture([]byte("second"))
	copy(buf, "MUTATED!")

	state, _ := h.Undo()
	if string(state) != "original" {
		t.Errorf("stored snapshot aliases caller memory: %q", state)
	}
}

func TestRedo(t *testing.T) {
	h := NewHistory(10)
	h.Capture([]byte("one"))
	h.Capture([]byte("two"))

	if _, ok := h.Undo(); !ok {
		t.Fatal("Undo failed")
	}
	state, ok := h.Redo()
	if !ok || string(state) != "two" {
		t.Errorf("Redo = %q, %v; want two", state, ok)
	}
	if _, ok := h.Redo(); ok {
		t.Error("second Redo succeeded with empty redo stack")
	}
}

func TestCaptureClearsRedo(t *testing.T) {
	h := NewHistory(10)
	h.Capture([]byte("one"))
	h.Capture([]byte("two"))
	h.Undo()

	if !h.CanRedo() {
		t.Fatal("CanRedo = false after undo")
	}
	h.Capture([]byte("branch"))
	if h.CanRedo() {
		t.Error("redo stack survived a new capture")
	}
}

func TestMaxDepthEviction(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Capture([]byte{byte('a' + i)})
	}

	if h.Depth() != 3 {
		t.Fatalf("Depth = %d, want 3", h.Depth())
	}

	// Oldest entries were evicted first: c, d, e remain.
	state, _ := h.Undo()
	if string(state) != "d" {
		t.Errorf("first undo = %q, want d", state)
	}
	state, _ = h.Undo()
	if string(state) != "c" {
		t.Errorf("second undo = %q, want c", state)
	}
	if _, ok := h.Undo(); ok {
		t.Error("undo past the floor succeeded")
	}
}

func TestUndoRedoMovesSnapshot(t *testing.T) {
	// The snapshot moved between stacks must be the same backing array,
	// not a copy.
	h := NewHistory(10)
	h.Capture([]byte("one"))
	h.Capture([]byte("two"))

	top := h.undo[len(h.undo)-1]
	h.Undo()
	if &h.redo[0][0] != &top[0] {
		t.Error("Undo reallocated the moved snapshot")
	}
	h.Redo()
	if &h.undo[len(h.undo)-1][0] != &top[0] {
		t.Error("Redo reallocated the moved snapshot")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h := NewHistory(0)
	var want [][]byte
	for i := 0; i < 20; i++ {
		s := []byte(fmt.Sprintf("state-%d", i))
		want = append(want, s)
		h.Capture(s)
	}

	// Walk all the way back, then all the way forward.
	for i := 18; i >= 0; i-- {
		state, ok := h.Undo()
		if !ok || !bytes.Equal(state, want[i]) {
			t.Fatalf("undo to %d: got %q, %v", i, state, ok)
		}
	}
	for i := 1; i < 20; i++ {
		state, ok := h.Redo()
		if !ok || !bytes.Equal(state, want[i]) {
			t.Fatalf("redo to %d: got %q, %v", i, state, ok)
		}
	}
}

func TestClear(t *testing.T) {
	h := NewHistory(10)
	h.Capture([]byte("one"))
	h.Capture([]byte("two"))
	h.Undo()
	h.Clear()

	if h.CanUndo() || h.CanRedo() || h.Depth() != 0 {
		t.Error("Clear left state behind")
	}
}
