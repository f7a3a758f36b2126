//go:build unix

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal owns the interactive terminal for one decoding instance: raw
// mode, mouse reporting, and size queries. Rendering concerns live with the
// embedding application; this type only manages the input contract.
type Terminal struct {
	in    *os.File
	out   *os.File
	state *term.State
	mouse bool
	alt   bool
}

// Open wraps the process terminal (stdin/stdout).
func Open() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}
	if !term.IsTerminal(int(t.in.Fd())) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	return t, nil
}

// Fd returns the raw input descriptor for a PollSource.
func (t *Terminal) Fd() int {
	return int(t.in.Fd())
}

// EnterRaw switches the terminal to raw mode.
func (t *Terminal) EnterRaw() error {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Restore undoes raw mode and disables any reporting modes this Terminal
// enabled. Safe to call on all exit paths.
func (t *Terminal) Restore() error {
	if t.mouse {
		t.DisableMouse()
	}
	if t.alt {
		t.ExitAltScreen()
	}
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	return err
}

// EnableMouse turns on click tracking, motion tracking, and SGR extended
// coordinate reporting.
func (t *Terminal) EnableMouse() {
	t.out.Write(mouseClickOn)
	t.out.Write(mouseMotionOn)
	t.out.Write(mouseSGROn)
	t.mouse = true
}

// DisableMouse turns off all mouse reporting modes.
func (t *Terminal) DisableMouse() {
	t.out.Write(mouseSGROff)
	t.out.Write(mouseMotionOff)
	t.out.Write(mouseClickOff)
	t.mouse = false
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *Terminal) EnterAltScreen() {
	t.out.Write(altScreenEnter)
	t.alt = true
}

// ExitAltScreen returns to the main screen buffer.
func (t *Terminal) ExitAltScreen() {
	t.out.Write(altScreenExit)
	t.alt = false
}

// HideCursor hides the text cursor.
func (t *Terminal) HideCursor() {
	t.out.Write(cursorHide)
}

// ShowCursor shows the text cursor.
func (t *Terminal) ShowCursor() {
	t.out.Write(cursorShow)
}

// Size returns the terminal dimensions in character cells.
func (t *Terminal) Size() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}
