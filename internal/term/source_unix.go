//go:build unix

package term

import (
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// PollSource reads the terminal input descriptor through poll(2) and
// single-byte read(2). This bypasses the default blocking-read abstraction,
// which is unreliable for sub-byte timeout control on raw terminals.
type PollSource struct {
	fd int
}

// NewPollSource creates a source over a raw input file descriptor.
// The descriptor must be exclusively owned by this source.
func NewPollSource(fd int) *PollSource {
	return &PollSource{fd: fd}
}

// Wait blocks until the descriptor is readable or the timeout elapses.
// A timeout of zero checks once without blocking. Hangup or error conditions
// on the descriptor surface as io.EOF.
func (s *PollSource) Wait(timeout time.Duration) (bool, error) {
	ms := int(timeout / time.Millisecond)
	if ms < 0 {
		ms = 0
	}

	for {
		fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, ms)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return false, err
		}
		if n == 0 {
			return false, nil
		}
		if fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0 &&
			fds[0].Revents&unix.POLLIN == 0 {
			return false, io.EOF
		}
		return true, nil
	}
}

// ReadByte reads a single byte from the descriptor. A zero-byte read while
// no bytes are ready is reported as ErrWouldBlock, not end of stream;
// EAGAIN, EWOULDBLOCK, and EINTR are likewise normalized to ErrWouldBlock.
func (s *PollSource) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := unix.Read(s.fd, buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
			return 0, ErrWouldBlock
		}
		return 0, err
	}
	if n == 0 {
		return 0, ErrWouldBlock
	}
	return buf[0], nil
}
