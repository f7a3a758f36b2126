package widget

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/termkit/internal/input"
)

// Tree errors
var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrDuplicateNode = errors.New("duplicate node id")
	ErrUnknownParent = errors.New("unknown parent id")
)

// Node is one widget in the tree. The parent is held as an id, resolved
// through the registry at dispatch time.
type Node struct {
	id      string
	parent  string
	capture []Listener
	bubble  []Listener
}

// ID returns the node's id.
func (n *Node) ID() string {
	return n.id
}

// Parent returns the parent node id, empty for a root.
func (n *Node) Parent() string {
	return n.parent
}

// Listen registers a listener for the target and bubbling phases.
func (n *Node) Listen(fn Listener) *Node {
	n.bubble = append(n.bubble, fn)
	return n
}

// ListenCapture registers a listener for the capturing phase.
func (n *Node) ListenCapture(fn Listener) *Node {
	n.capture = append(n.capture, fn)
	return n
}

// Tree is the id-keyed widget registry.
type Tree struct {
	nodes map[string]*Node
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[string]*Node)}
}

// Add registers a node under parent. An empty id gets a generated uuid; an
// empty parent makes the node a root.
func (t *Tree) Add(id, parent string) (*Node, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := t.nodes[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, id)
	}
	if parent != "" {
		if _, ok := t.nodes[parent]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParent, parent)
		}
	}
	n := &Node{id: id, parent: parent}
	t.nodes[id] = n
	return n, nil
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id string) *Node {
	return t.nodes[id]
}

// Remove detaches a node. Children of a removed node keep their parent id
// and become unreachable for dispatch until re-parented.
func (t *Tree) Remove(id string) bool {
	if _, ok := t.nodes[id]; !ok {
		return false
	}
	delete(t.nodes, id)
	return true
}

// Len returns the number of registered nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Path builds the root-to-target chain of nodes by following parent ids.
// A dangling parent id terminates the walk as an error; a parent cycle does
// too.
func (t *Tree) Path(target string) ([]*Node, error) {
	n, ok := t.nodes[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, target)
	}

	var chain []*Node
	seen := make(map[string]bool)
	for n != nil {
		if seen[n.id] {
			return nil, fmt.Errorf("parent cycle through %s", n.id)
		}
		seen[n.id] = true
		chain = append(chain, n)
		if n.parent == "" {
			break
		}
		p, ok := t.nodes[n.parent]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParent, n.parent)
		}
		n = p
	}

	// Reverse into root-first order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// Dispatch delivers an input event to target through the three phases:
// capturing from the root down to the target's parent, then the target,
// then bubbling back up to the root. Handled and stop-propagation are
// checked after every listener. Returns whether the event was handled.
func (t *Tree) Dispatch(target string, in input.Event) (bool, error) {
	path, err := t.Path(target)
	if err != nil {
		return false, err
	}

	ev := &Event{Input: in, Target: target}

	// Capturing: root down, target excluded.
	ev.Phase = PhaseCapturing
	for _, n := range path[:len(path)-1] {
		if deliver(ev, n, n.capture) {
			return ev.Handled(), nil
		}
	}

	// Target.
	tgt := path[len(path)-1]
	ev.Phase = PhaseTarget
	if deliver(ev, tgt, tgt.bubble) {
		return ev.Handled(), nil
	}

	// Bubbling: target's parent back up to the root.
	ev.Phase = PhaseBubbling
	for i := len(path) - 2; i >= 0; i-- {
		if deliver(ev, path[i], path[i].bubble) {
			return ev.Handled(), nil
		}
	}
	return ev.Handled(), nil
}

// deliver runs one node's listeners for the current phase, checking the
// short-circuit flags between every call.
func deliver(ev *Event, n *Node, listeners []Listener) bool {
	ev.CurrentTarget = n.id
	for _, fn := range listeners {
		fn(ev)
		if ev.done() {
			return true
		}
	}
	return false
}
