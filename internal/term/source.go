package term

import (
	"errors"
	"io"
	"sync"
	"time"
)

// ErrWouldBlock is the uniform signal for "no data yet". All transient
// unavailability conditions from the underlying OS map to this one value.
// It is not an error condition for the poll loop; the caller simply tries
// again next tick.
var ErrWouldBlock = errors.New("input would block")

// Source is a single-byte terminal input source.
//
// ReadByte returns the next byte, ErrWouldBlock when no byte is ready, or
// io.EOF once the stream is closed. Wait blocks until a byte is readable or
// the timeout elapses; a timeout of zero checks once without blocking. There
// is no mid-read cancellation: once a read begins it completes or errors.
type Source interface {
	ReadByte() (byte, error)
	Wait(timeout time.Duration) (bool, error)
}

// MemorySource is a deterministic in-memory Source for tests and replay.
// Wait reports readiness immediately whenever bytes remain queued.
type MemorySource struct {
	mu     sync.Mutex
	data   []byte
	pos    int
	closed bool
}

// NewMemorySource creates a source pre-loaded with data.
func NewMemorySource(data []byte) *MemorySource {
	return &MemorySource{data: append([]byte(nil), data...)}
}

// Feed appends bytes to the queue.
func (s *MemorySource) Feed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, data...)
}

// Close marks the stream ended; subsequent drained reads return io.EOF.
func (s *MemorySource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// ReadByte returns the next queued byte.
func (s *MemorySource) ReadByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.data) {
		if s.closed {
			return 0, io.EOF
		}
		return 0, ErrWouldBlock
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// Wait reports whether a byte is queued. The timeout is ignored: an
// in-memory source is either ready now or will not become ready on its own.
func (s *MemorySource) Wait(timeout time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos < len(s.data) {
		return true, nil
	}
	if s.closed {
		return false, io.EOF
	}
	return false, nil
}
