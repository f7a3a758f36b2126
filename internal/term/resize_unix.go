//go:build unix

package term

import (
	"os"
	"os/signal"
	"syscall"
)

// ResizeMonitor observes SIGWINCH and reports size changes when asked.
// It does no work on its own: the decode loop polls Check between ticks, so
// resize delivery stays on the single decoding goroutine.
type ResizeMonitor struct {
	ch   chan os.Signal
	size func() (int, int)
}

// NewResizeMonitor starts watching for terminal size changes.
// size is queried for the new dimensions when a change is observed.
func NewResizeMonitor(size func() (int, int)) *ResizeMonitor {
	m := &ResizeMonitor{
		ch:   make(chan os.Signal, 1),
		size: size,
	}
	signal.Notify(m.ch, syscall.SIGWINCH)
	return m
}

// Check reports a pending size change without blocking.
func (m *ResizeMonitor) Check() (width, height int, ok bool) {
	select {
	case <-m.ch:
		w, h := m.size()
		return w, h, true
	default:
		return 0, 0, false
	}
}

// Close stops signal delivery.
func (m *ResizeMonitor) Close() {
	signal.Stop(m.ch)
}
