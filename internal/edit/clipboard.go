package edit

import (
	"sync"

	"github.com/atotto/clipboard"
)

// DefaultMaxBytes caps the clipboard buffer when no cap is given.
const DefaultMaxBytes = 1 << 20

// SystemClipboard bridges to an OS-level clipboard. The default
// implementation shells out to the platform helper (pbcopy/pbpaste, xclip,
// xsel, wl-clipboard); tests inject fakes.
type SystemClipboard interface {
	Read() (string, error)
	Write(string) error
}

// osClipboard is the production bridge.
type osClipboard struct{}

func (osClipboard) Read() (string, error) { return clipboard.ReadAll() }
func (osClipboard) Write(s string) error  { return clipboard.WriteAll(s) }

// Clipboard holds one owned buffer capped at maxBytes, optionally mirrored
// to the OS clipboard. Bridge failures never surface; the internal buffer is
// always authoritative enough to keep editing working.
type Clipboard struct {
	mu       sync.Mutex
	buf      []byte
	maxBytes int
	mirror   bool
	system   SystemClipboard
}

// ClipboardOption configures a Clipboard.
type ClipboardOption func(*Clipboard)

// WithMaxBytes caps the owned buffer. Zero or negative keeps the default.
func WithMaxBytes(n int) ClipboardOption {
	return func(c *Clipboard) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// WithSystemMirror enables mirroring through the given bridge. A nil bridge
// uses the OS helper processes.
func WithSystemMirror(sys SystemClipboard) ClipboardOption {
	return func(c *Clipboard) {
		c.mirror = true
		if sys != nil {
			c.system = sys
		}
	}
}

// NewClipboard creates a clipboard.
func NewClipboard(opts ...ClipboardOption) *Clipboard {
	c := &Clipboard{
		maxBytes: DefaultMaxBytes,
		system:   osClipboard{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy truncates data to the byte cap, stores an owned copy, and mirrors to
// the OS clipboard when enabled. Mirror failures are silently ignored.
func (c *Clipboard) Copy(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(data) > c.maxBytes {
		data = data[:c.maxBytes]
	}
	c.buf = append(c.buf[:0], data...)

	if c.mirror {
		_ = c.system.Write(string(c.buf))
	}
}

// Paste returns the clipboard content. With mirroring enabled it prefers
// the OS clipboard, replacing the internal buffer on success; on bridge
// failure it falls back to the internal buffer.
func (c *Clipboard) Paste() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mirror {
		if s, err := c.system.Read(); err == nil {
			data := []byte(s)
			if len(data) > c.maxBytes {
				data = data[:c.maxBytes]
			}
			c.buf = append(c.buf[:0], data...)
		}
	}

	out := make([]byte, len(c.buf))
	copy(out, c.buf)
	return out
}

// Len returns the size of the internal buffer.
func (c *Clipboard) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buf)
}
