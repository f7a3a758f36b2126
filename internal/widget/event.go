package widget

import (
	"fmt"

	"github.com/dshills/termkit/internal/input"
)

// Phase tags which delivery pass an event is in.
type Phase uint8

const (
	// PhaseNone is the state before dispatch begins.
	PhaseNone Phase = iota
	// PhaseCapturing runs root-down, excluding the target.
	PhaseCapturing
	// PhaseTarget runs on the target itself.
	PhaseTarget
	// PhaseBubbling runs target's parent up to the root.
	PhaseBubbling
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCapturing:
		return "capturing"
	case PhaseTarget:
		return "target"
	case PhaseBubbling:
		return "bubbling"
	default:
		return "none"
	}
}

// Event is an input event traversing the tree. Target is fixed at dispatch;
// CurrentTarget and Phase are updated at every delivery step.
type Event struct {
	// Input is the decoded terminal event being delivered.
	Input input.Event

	// Target is the id of the node the event is addressed to.
	Target string

	// CurrentTarget is the id of the node whose listener is running.
	CurrentTarget string

	// Phase is the current delivery pass.
	Phase Phase

	handled bool
	stopped bool
}

// MarkHandled records that a listener consumed the event. Delivery
// short-circuits at the next step boundary.
func (e *Event) MarkHandled() {
	e.handled = true
}

// Handled reports whether any listener consumed the event.
func (e *Event) Handled() bool {
	return e.handled
}

// StopPropagation halts delivery at the next step boundary without marking
// the event handled.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether propagation was stopped.
func (e *Event) Stopped() bool {
	return e.stopped
}

// done reports whether delivery should short-circuit.
func (e *Event) done() bool {
	return e.handled || e.stopped
}

// String returns a representation like "capturing@menu target=item".
func (e *Event) String() string {
	return fmt.Sprintf("%s@%s target=%s", e.Phase, e.CurrentTarget, e.Target)
}

// Listener receives an event at one node during one phase.
type Listener func(*Event)
