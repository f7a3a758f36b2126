// Package input defines the canonical event union produced by the decoder.
//
// The input engine turns a raw terminal byte stream into structured events.
// Every decode attempt terminates in exactly one Event value: a key press, a
// chord, a mouse action, a resize, or Unknown for anything the decoder
// cannot classify. Unknown is a deliberate robustness choice - a corrupted
// or unsupported terminal sequence must never crash or stall the input loop.
//
// Events are transient: they are created per decode call and consumed
// synchronously by the dispatch step that follows.
package input
