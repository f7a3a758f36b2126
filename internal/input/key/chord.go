package key

import "time"

// DefaultChordTimeout is the window within which a second key press combines
// with the first into a Chord.
const DefaultChordTimeout = 500 * time.Millisecond

// ChordDetector correlates two key events arriving within a timeout window
// into a single Chord. The detector buffers the first key; the decode loop
// must call Expire on every poll tick so an unmatched first key is flushed
// as a standalone event once the window has lapsed.
type ChordDetector struct {
	timeout   time.Duration
	pending   Event
	pendingAt time.Time
	buffered  bool

	// stale holds a lapsed first key displaced by Feed before the caller
	// collected it. Drained by Expire ahead of the clock check.
	stale    Event
	hasStale bool
}

// NewChordDetector creates a detector with the given window.
// A zero or negative timeout selects DefaultChordTimeout.
func NewChordDetector(timeout time.Duration) *ChordDetector {
	if timeout <= 0 {
		timeout = DefaultChordTimeout
	}
	return &ChordDetector{timeout: timeout}
}

// Timeout returns the chord window.
func (d *ChordDetector) Timeout() time.Duration {
	return d.timeout
}

// Pending reports whether a first key is currently buffered.
func (d *ChordDetector) Pending() bool {
	return d.buffered || d.hasStale
}

// Expire returns a buffered key whose window has lapsed at now, flushing it
// as a standalone event. The decode loop calls this once per poll tick.
func (d *ChordDetector) Expire(now time.Time) (Event, bool) {
	if d.hasStale {
		ev := d.stale
		d.hasStale = false
		return ev, true
	}
	if d.buffered && now.Sub(d.pendingAt) > d.timeout {
		ev := d.pending
		d.buffered = false
		return ev, true
	}
	return Event{}, false
}

// Feed offers ev as the next key press. If a first key is buffered and still
// inside the window, the pair is returned as a completed Chord. Otherwise ev
// becomes the buffered first key and ok is false; any lapsed key it displaced
// is retrievable through Expire.
func (d *ChordDetector) Feed(ev Event, now time.Time) (Chord, bool) {
	if d.buffered {
		if now.Sub(d.pendingAt) <= d.timeout {
			chord := Chord{First: d.pending, Second: ev}
			d.buffered = false
			return chord, true
		}
		// Window lapsed without the caller flushing; park the old key.
		d.stale = d.pending
		d.hasStale = true
	}
	d.pending = ev
	d.pendingAt = now
	d.buffered = true
	return Chord{}, false
}

// Reset drops any buffered state.
func (d *ChordDetector) Reset() {
	d.buffered = false
	d.hasStale = false
}
