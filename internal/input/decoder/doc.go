// Package decoder implements the escape-sequence state machine that turns a
// raw terminal byte stream into canonical input events.
//
// The decoder is driven by a single-threaded, cooperative poll loop: the
// caller invokes Poll with a bounded timeout, and one decode attempt runs
// synchronously to completion when a byte becomes ready. The only internal
// suspension is the short secondary wait used to tell a lone Escape key from
// the start of a sequence; total latency may therefore exceed the caller's
// timeout by that bounded amount. This is an accepted trade-off, not a bug.
//
// Malformed or incomplete sequences never produce an error: every decode
// attempt terminates in a concrete event, with Unknown as the universal
// fallback. Only transient unavailability (term.ErrWouldBlock) and stream
// closure (io.EOF) propagate to the caller.
package decoder
