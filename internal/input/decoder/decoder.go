package decoder

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/dshills/termkit/internal/input"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/term"
)

// DefaultEscapeWait is the bounded secondary wait after an ESC byte before
// it is treated as a standalone Escape key press.
const DefaultEscapeWait = 10 * time.Millisecond

// ResizeChecker reports a pending terminal size change without blocking.
// term.ResizeMonitor satisfies it; tests supply fakes.
type ResizeChecker interface {
	Check() (width, height int, ok bool)
}

// Decoder turns bytes from a Source into input events.
// It owns its Source exclusively and must not be shared across goroutines.
type Decoder struct {
	src     term.Source
	escWait time.Duration
	chords  *key.ChordDetector
	resize  ResizeChecker
	now     func() time.Time
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithEscapeWait sets the secondary wait used to disambiguate a lone Escape
// from the start of an escape sequence.
func WithEscapeWait(d time.Duration) Option {
	return func(dec *Decoder) {
		if d > 0 {
			dec.escWait = d
		}
	}
}

// WithChords enables chord detection with the given window.
func WithChords(timeout time.Duration) Option {
	return func(dec *Decoder) {
		dec.chords = key.NewChordDetector(timeout)
	}
}

// WithResize attaches a resize checker polled at the top of every tick.
func WithResize(r ResizeChecker) Option {
	return func(dec *Decoder) {
		dec.resize = r
	}
}

// WithClock overrides the time source used for chord windows.
func WithClock(now func() time.Time) Option {
	return func(dec *Decoder) {
		dec.now = now
	}
}

// New creates a decoder over the given source.
func New(src term.Source, opts ...Option) *Decoder {
	d := &Decoder{
		src:     src,
		escWait: DefaultEscapeWait,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Poll waits up to timeout for input and performs one decode attempt.
// A timeout of zero checks once without blocking.
//
// It returns term.ErrWouldBlock when no event is available this tick (also
// when a key was buffered as a possible chord first half), io.EOF once the
// stream is closed, and otherwise exactly one decoded event. Events are
// strictly ordered by arrival; nothing is coalesced or batched.
func (d *Decoder) Poll(timeout time.Duration) (input.Event, error) {
	// A buffered chord key whose window lapsed flushes standalone before
	// anything else; this is the chord flush point for the whole engine.
	if d.chords != nil {
		if ev, ok := d.chords.Expire(d.now()); ok {
			return input.Key(ev), nil
		}
	}

	if d.resize != nil {
		if w, h, ok := d.resize.Check(); ok {
			return input.Resize(w, h), nil
		}
	}

	ready, err := d.src.Wait(timeout)
	if err != nil {
		return input.Event{}, err
	}
	if !ready {
		return input.Event{}, term.ErrWouldBlock
	}

	b, err := d.src.ReadByte()
	if err != nil {
		if errors.Is(err, term.ErrWouldBlock) {
			return input.Event{}, term.ErrWouldBlock
		}
		return input.Event{}, err
	}

	ev := d.decodeByte(b)

	if d.chords != nil && ev.Kind == input.KindKey {
		return d.feedChord(ev)
	}
	return ev, nil
}

// feedChord routes a key event through the chord detector.
func (d *Decoder) feedChord(ev input.Event) (input.Event, error) {
	now := d.now()
	if chord, ok := d.chords.Feed(ev.Key, now); ok {
		return input.Chord(chord), nil
	}
	// Feed may have displaced a lapsed first key; deliver it now, ahead of
	// the newly buffered one.
	if flushed, ok := d.chords.Expire(now); ok {
		return input.Key(flushed), nil
	}
	return input.Event{}, term.ErrWouldBlock
}

// decodeByte classifies a single lead byte and finishes any sequence it
// begins. Always terminates in a concrete event.
func (d *Decoder) decodeByte(b byte) input.Event {
	switch {
	case b == 0x1b:
		return d.decodeEscape()
	case b < 0x20 || b == 0x7f:
		// Raw control byte, delivered as-is; equality folds Ctrl+letter.
		return input.Key(key.NewEvent(key.Code(b), key.ModNone))
	case b < 0x80:
		return input.Key(key.NewEvent(key.Code(b), key.ModNone))
	default:
		return d.decodeUTF8(b)
	}
}

// decodeEscape disambiguates a lone Escape from a sequence start.
// ESC followed by nothing within the escape wait is the Escape key; '[' opens
// a CSI sequence; 'O' opens an SS3 sequence; any other byte is Alt+byte.
func (d *Decoder) decodeEscape() input.Event {
	ready, err := d.src.Wait(d.escWait)
	if err != nil || !ready {
		return input.Key(key.NewEvent(key.CodeEscape, key.ModNone))
	}

	b, err := d.src.ReadByte()
	if err != nil {
		return input.Key(key.NewEvent(key.CodeEscape, key.ModNone))
	}

	switch b {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	case 0x1b:
		return input.Key(key.NewEvent(key.CodeEscape, key.ModAlt))
	default:
		return input.Key(key.NewEvent(key.Code(b), key.ModAlt))
	}
}

// readSeqByte reads the next byte of an in-flight sequence. A transient gap
// gets one bounded wait; after that the sequence counts as exhausted.
func (d *Decoder) readSeqByte() (byte, bool) {
	b, err := d.src.ReadByte()
	if err == nil {
		return b, true
	}
	if !errors.Is(err, term.ErrWouldBlock) {
		return 0, false
	}
	if ready, werr := d.src.Wait(d.escWait); werr != nil || !ready {
		return 0, false
	}
	b, err = d.src.ReadByte()
	return b, err == nil
}

// decodeUTF8 assembles a multibyte character whose lead byte was already
// consumed. Invalid encodings fall back to Unknown.
func (d *Decoder) decodeUTF8(first byte) input.Event {
	var n int
	switch {
	case first&0xe0 == 0xc0:
		n = 2
	case first&0xf0 == 0xe0:
		n = 3
	case first&0xf8 == 0xf0:
		n = 4
	default:
		return input.Unknown()
	}

	var buf [4]byte
	buf[0] = first
	for i := 1; i < n; i++ {
		b, ok := d.readSeqByte()
		if !ok {
			return input.Unknown()
		}
		buf[i] = b
	}

	r, size := utf8.DecodeRune(buf[:n])
	if r == utf8.RuneError && size <= 1 {
		return input.Unknown()
	}
	return input.Key(key.NewRuneEvent(r, key.ModNone))
}
