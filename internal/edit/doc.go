// Package edit provides per-widget editing utilities: snapshot undo/redo
// history and a capped clipboard with optional OS-level mirroring.
//
// Each editable widget owns its own History and Clipboard; both live and die
// with the widget and are not shared.
package edit
