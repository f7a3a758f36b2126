package decoder

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/dshills/termkit/internal/input"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/mouse"
	"github.com/dshills/termkit/internal/term"
)

// decodeOne runs a single poll over the given bytes and fails the test on
// any poll error.
func decodeOne(t *testing.T, data []byte) input.Event {
	t.Helper()
	d := New(term.NewMemorySource(data))
	ev, err := d.Poll(0)
	if err != nil {
		t.Fatalf("Poll(%q) error: %v", data, err)
	}
	return ev
}

func TestDecodePrintable(t *testing.T) {
	ev := decodeOne(t, []byte("a"))
	if ev.Kind != input.KindKey || ev.Key.Code != 'a' || ev.Key.Mod != key.ModNone {
		t.Errorf("got %v", ev)
	}
}

func TestDecodeControlBytes(t *testing.T) {
	tests := []struct {
		b    byte
		want key.Code
	}{
		{0x09, key.CodeTab},
		{0x0d, key.CodeEnter},
		{0x13, key.Code(0x13)}, // Ctrl+S, normalized at comparison time
		{0x7f, key.CodeBackspace},
	}

	for _, tt := range tests {
		ev := decodeOne(t, []byte{tt.b})
		if ev.Kind != input.KindKey || ev.Key.Code != tt.want {
			t.Errorf("byte 0x%02x: got %v, want code %v", tt.b, ev, tt.want)
		}
	}
}

func TestDecodeLoneEscape(t *testing.T) {
	// ESC with no follow-up byte inside the wait is the Escape key.
	d := New(term.NewMemorySource([]byte{0x1b}), WithEscapeWait(time.Millisecond))
	ev, err := d.Poll(0)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != input.KindKey || ev.Key.Code != key.CodeEscape || ev.Key.Mod != key.ModNone {
		t.Errorf("got %v, want lone Escape", ev)
	}
}

func TestDecodeAltKey(t *testing.T) {
	ev := decodeOne(t, []byte{0x1b, 'x'})
	want := key.NewEvent('x', key.ModAlt)
	if ev.Kind != input.KindKey || !ev.Key.Equals(want) {
		t.Errorf("got %v, want Alt+x", ev)
	}
}

func TestDecodeAltEscape(t *testing.T) {
	ev := decodeOne(t, []byte{0x1b, 0x1b})
	if ev.Kind != input.KindKey || ev.Key.Code != key.CodeEscape || !ev.Key.Mod.HasAlt() {
		t.Errorf("got %v, want Alt+Escape", ev)
	}
}

func TestDecodeArrows(t *testing.T) {
	tests := []struct {
		seq  string
		code key.Code
	}{
		{"\x1b[A", key.CodeUp},
		{"\x1b[B", key.CodeDown},
		{"\x1b[C", key.CodeRight},
		{"\x1b[D", key.CodeLeft},
		{"\x1b[H", key.CodeHome},
		{"\x1b[F", key.CodeEnd},
	}

	for _, tt := range tests {
		ev := decodeOne(t, []byte(tt.seq))
		if ev.Kind != input.KindKey || ev.Key.Code != tt.code || ev.Key.Mod != key.ModNone {
			t.Errorf("%q: got %v, want %v", tt.seq, ev, tt.code)
		}
	}
}

func TestDecodeArrowModifiers(t *testing.T) {
	// "1;5A" is Up with ctrl=true, alt=false, shift=false.
	ev := decodeOne(t, []byte("\x1b[1;5A"))
	if ev.Kind != input.KindKey || ev.Key.Code != key.CodeUp {
		t.Fatalf("got %v, want Up", ev)
	}
	if !ev.Key.Mod.HasCtrl() || ev.Key.Mod.HasAlt() || ev.Key.Mod.HasShift() {
		t.Errorf("mods = %v, want ctrl only", ev.Key.Mod)
	}
}

func TestDecodeArrowModifierMask(t *testing.T) {
	// For every wire parameter the decoded modifiers must match the
	// bitmask derived from (param - 1).
	for param := 2; param <= 8; param++ {
		seq := []byte("\x1b[1;" + string(rune('0'+param)) + "B")
		ev := decodeOne(t, seq)
		if ev.Kind != input.KindKey || ev.Key.Code != key.CodeDown {
			t.Fatalf("param %d: got %v", param, ev)
		}
		if ev.Key.Mod != key.DecodeParam(param) {
			t.Errorf("param %d: mods = %v, want %v", param, ev.Key.Mod, key.DecodeParam(param))
		}
	}
}

func TestDecodeShiftTab(t *testing.T) {
	// "Z" decodes to Tab with shift=true.
	ev := decodeOne(t, []byte("\x1b[Z"))
	if ev.Kind != input.KindKey || ev.Key.Code != key.CodeTab || !ev.Key.Mod.HasShift() {
		t.Errorf("got %v, want Shift+Tab", ev)
	}
}

func TestDecodeExtendedKeys(t *testing.T) {
	tests := []struct {
		seq  string
		code key.Code
		mod  key.Modifier
	}{
		{"\x1b[1~", key.CodeHome, key.ModNone},
		{"\x1b[2~", key.CodeInsert, key.ModNone},
		{"\x1b[3~", key.CodeDelete, key.ModNone},
		{"\x1b[4~", key.CodeEnd, key.ModNone},
		{"\x1b[5~", key.CodePageUp, key.ModNone},
		{"\x1b[6~", key.CodePageDown, key.ModNone},
		{"\x1b[11~", key.CodeF1, key.ModNone},
		{"\x1b[15~", key.CodeF5, key.ModNone},
		{"\x1b[17~", key.CodeF6, key.ModNone},
		{"\x1b[24~", key.CodeF12, key.ModNone},
		{"\x1b[3;5~", key.CodeDelete, key.ModCtrl},
		{"\x1b[5;2~", key.CodePageUp, key.ModShift},
	}

	for _, tt := range tests {
		ev := decodeOne(t, []byte(tt.seq))
		if ev.Kind != input.KindKey || ev.Key.Code != tt.code || ev.Key.Mod != tt.mod {
			t.Errorf("%q: got %v, want %v mod %v", tt.seq, ev, tt.code, tt.mod)
		}
	}
}

func TestDecodeSS3Keys(t *testing.T) {
	tests := []struct {
		seq  string
		code key.Code
	}{
		{"\x1bOA", key.CodeUp},
		{"\x1bOH", key.CodeHome},
		{"\x1bOP", key.CodeF1},
		{"\x1bOS", key.CodeF4},
	}

	for _, tt := range tests {
		ev := decodeOne(t, []byte(tt.seq))
		if ev.Kind != input.KindKey || ev.Key.Code != tt.code {
			t.Errorf("%q: got %v, want %v", tt.seq, ev, tt.code)
		}
	}
}

func TestDecodeUnknownSequences(t *testing.T) {
	// Unrecognized terminators, truncated sequences, and junk all terminate
	// in Unknown; never an error, never a hang.
	seqs := [][]byte{
		[]byte("\x1b[99q"),   // unknown terminator
		[]byte("\x1b[77~"),   // unknown extended code
		[]byte("\x1b[~"),     // extended with no parameter
		[]byte("\x1b[5"),     // truncated before terminator
		[]byte("\x1bOZ"),     // unknown SS3 final
		{0xff},               // invalid UTF-8 lead byte
		{0xc3},               // truncated UTF-8
	}

	for _, seq := range seqs {
		d := New(term.NewMemorySource(seq), WithEscapeWait(time.Millisecond))
		ev, err := d.Poll(0)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", seq, err)
		}
		if ev.Kind != input.KindUnknown {
			t.Errorf("%q: got %v, want Unknown", seq, ev)
		}
	}
}

func TestDecodeParamOverflowDropped(t *testing.T) {
	// Parameters beyond the fixed capacity are silently dropped; the
	// sequence still decodes from what was kept.
	ev := decodeOne(t, []byte("\x1b[1;2;3;4;5;6A"))
	if ev.Kind != input.KindKey || ev.Key.Code != key.CodeUp {
		t.Errorf("got %v, want Up", ev)
	}
}

func TestDecodeUTF8(t *testing.T) {
	tests := []struct {
		seq  string
		want rune
	}{
		{"é", 'é'},
		{"√", '√'},
		{"🚀", '🚀'},
	}

	for _, tt := range tests {
		ev := decodeOne(t, []byte(tt.seq))
		if ev.Kind != input.KindKey || ev.Key.Code != key.Code(tt.want) {
			t.Errorf("%q: got %v, want rune %q", tt.seq, ev, tt.want)
		}
	}
}

func TestDecodeSGRScrollUp(t *testing.T) {
	// "<64;10;5M" decodes to scroll-up, x=10, y=5, delta=-1.
	ev := decodeOne(t, []byte("\x1b[<64;10;5M"))
	if ev.Kind != input.KindMouse {
		t.Fatalf("got %v, want mouse", ev)
	}
	m := ev.Mouse
	if m.Action != mouse.ActionScrollUp || m.X != 10 || m.Y != 5 || m.Delta != -1 {
		t.Errorf("got %+v, want scroll-up @10,5 delta -1", m)
	}
}

func TestDecodeSGRMouse(t *testing.T) {
	tests := []struct {
		seq    string
		action string
		x, y   int
		button int
		delta  int
	}{
		{"\x1b[<0;3;7M", "press", 3, 7, 1, 0},
		{"\x1b[<0;3;7m", "release", 3, 7, 1, 0},
		{"\x1b[<2;1;1M", "press", 1, 1, 3, 0},
		{"\x1b[<32;15;8M", "move", 15, 8, 1, 0},
		{"\x1b[<35;15;8M", "move", 15, 8, 4, 0},
		{"\x1b[<64;10;5M", "scroll-up", 10, 5, 1, -1},
		{"\x1b[<65;10;5M", "scroll-down", 10, 5, 2, 1},
	}

	for _, tt := range tests {
		ev := decodeOne(t, []byte(tt.seq))
		if ev.Kind != input.KindMouse {
			t.Fatalf("%q: got %v, want mouse", tt.seq, ev)
		}
		m := ev.Mouse
		if m.Action.String() != tt.action || m.X != tt.x || m.Y != tt.y ||
			m.Button != tt.button || m.Delta != tt.delta {
			t.Errorf("%q: got %+v, want %s b%d @%d,%d delta %d",
				tt.seq, m, tt.action, tt.button, tt.x, tt.y, tt.delta)
		}
	}
}

func TestDecodeSGRMalformed(t *testing.T) {
	seqs := []string{
		"\x1b[<64;10M",    // only two parameters
		"\x1b[<64;10;5",   // no terminator
		"\x1b[<64;10;5;1", // too many separators
		"\x1b[<a;b;cM",    // non-digit parameters
	}

	for _, seq := range seqs {
		d := New(term.NewMemorySource([]byte(seq)), WithEscapeWait(time.Millisecond))
		ev, err := d.Poll(0)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", seq, err)
		}
		if ev.Kind != input.KindUnknown {
			t.Errorf("%q: got %v, want Unknown", seq, ev)
		}
	}
}

func TestPollWouldBlock(t *testing.T) {
	d := New(term.NewMemorySource(nil))
	if _, err := d.Poll(0); !errors.Is(err, term.ErrWouldBlock) {
		t.Errorf("empty source: got %v, want ErrWouldBlock", err)
	}
}

func TestPollEOF(t *testing.T) {
	src := term.NewMemorySource(nil)
	src.Close()
	d := New(src)
	if _, err := d.Poll(0); !errors.Is(err, io.EOF) {
		t.Errorf("closed source: got %v, want io.EOF", err)
	}
}

func TestPollEventOrdering(t *testing.T) {
	// Events come out strictly in arrival order.
	src := term.NewMemorySource([]byte("ab\x1b[A"))
	d := New(src)

	want := []key.Event{
		{Code: 'a'},
		{Code: 'b'},
		{Code: key.CodeUp},
	}
	for i, w := range want {
		ev, err := d.Poll(0)
		if err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
		if ev.Kind != input.KindKey || !ev.Key.Equals(w) {
			t.Errorf("event %d = %v, want %v", i, ev, w)
		}
	}
}

type fakeResize struct {
	w, h    int
	pending bool
}

func (f *fakeResize) Check() (int, int, bool) {
	if !f.pending {
		return 0, 0, false
	}
	f.pending = false
	return f.w, f.h, true
}

func TestPollResize(t *testing.T) {
	r := &fakeResize{w: 120, h: 40, pending: true}
	d := New(term.NewMemorySource([]byte("a")), WithResize(r))

	ev, err := d.Poll(0)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != input.KindResize || ev.Width != 120 || ev.Height != 40 {
		t.Fatalf("got %v, want resize 120x40", ev)
	}

	// The queued byte arrives on the next tick.
	ev, err = d.Poll(0)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != input.KindKey || ev.Key.Code != 'a' {
		t.Errorf("got %v, want 'a'", ev)
	}
}

func TestPollChords(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	src := term.NewMemorySource([]byte{0x0b, 'c'}) // Ctrl+K then c
	d := New(src, WithChords(100*time.Millisecond), WithClock(clock))

	// First key buffers.
	if _, err := d.Poll(0); !errors.Is(err, term.ErrWouldBlock) {
		t.Fatalf("first key should buffer, got %v", err)
	}

	// Second key inside the window completes a chord.
	now = now.Add(50 * time.Millisecond)
	ev, err := d.Poll(0)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != input.KindChord {
		t.Fatalf("got %v, want chord", ev)
	}
	if !ev.Chord.First.Matches("Ctrl+k") || !ev.Chord.Second.Matches("c") {
		t.Errorf("chord = %v, want Ctrl+k c", ev.Chord)
	}
}

func TestPollChordFlushOnTick(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	src := term.NewMemorySource([]byte{'g'})
	d := New(src, WithChords(100*time.Millisecond), WithClock(clock))

	if _, err := d.Poll(0); !errors.Is(err, term.ErrWouldBlock) {
		t.Fatalf("first key should buffer, got %v", err)
	}

	// Window lapses with no second key: the next poll tick flushes the
	// buffered key as a standalone event.
	now = now.Add(200 * time.Millisecond)
	ev, err := d.Poll(0)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != input.KindKey || ev.Key.Code != 'g' {
		t.Errorf("got %v, want standalone 'g'", ev)
	}
}
