// Package mouse defines the mouse event model produced by the SGR decoder.
//
// Coordinates are carried exactly as the terminal reports them: 1-indexed,
// column before row. Translation to 0-indexed cell coordinates is the
// caller's responsibility via Event.Cell. Button numbers are 1-indexed
// (button 1 is the primary button).
package mouse
