// Package term abstracts the terminal input descriptor for the decoder.
//
// A Source yields single bytes and a bounded readiness wait. Every
// transient-unavailability condition from the operating system (would-block,
// interrupted, not ready) is normalized to ErrWouldBlock so upstream logic
// has exactly one case to handle; a closed stream surfaces as io.EOF.
//
// The concrete strategy is injected once at startup. PollSource drives
// poll(2) plus single-byte read(2) on the raw descriptor for platforms where
// the default non-blocking read primitive is unreliable; MemorySource is a
// deterministic in-memory source for tests and replay.
//
// The input descriptor is exclusively owned by one decoding instance.
// Concurrent readers are not supported.
package term
