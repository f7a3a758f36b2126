// Package widget delivers events through a widget tree in three phases.
//
// The tree is id-keyed: every node is registered in a Tree under a string id
// and refers to its parent by id, never by pointer. Dispatch builds the
// root-to-target path from those links, then delivers the event three times:
// capturing (root down to the target's parent), target, and bubbling (the
// target's parent back up to the root). Any listener may mark the event
// handled or stop propagation; both are checked between every delivery step.
package widget
