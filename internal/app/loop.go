package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/dshills/termkit/internal/focus"
	"github.com/dshills/termkit/internal/input"
	"github.com/dshills/termkit/internal/input/key"
	"github.com/dshills/termkit/internal/input/keymap"
	"github.com/dshills/termkit/internal/input/mouse"
	"github.com/dshills/termkit/internal/term"
)

// ErrQuit signals a clean shutdown request from a handler. Run returns nil
// when it sees it.
var ErrQuit = errors.New("quit requested")

// DefaultPollTimeout bounds each poll so the loop can notice context
// cancellation.
const DefaultPollTimeout = 50 * time.Millisecond

// Poller yields one decoded event per call. decoder.Decoder satisfies it.
type Poller interface {
	Poll(timeout time.Duration) (input.Event, error)
}

// Loop drives the input pipeline: poll, decode, resolve, deliver. It is
// single threaded; all callbacks run on the goroutine that called Run.
type Loop struct {
	poller   Poller
	resolver *keymap.Resolver
	focus    *focus.Manager
	log      *Logger
	timeout  time.Duration

	onAction func(keymap.Action, key.Event) error
	onChord  func(key.Chord) error
	onMouse  func(mouse.Event) error
	onResize func(width, height int) error
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithResolver sets the keybinding resolver consulted for key events.
func WithResolver(r *keymap.Resolver) LoopOption {
	return func(l *Loop) { l.resolver = r }
}

// WithFocus sets the focus manager that gets unresolved key events.
func WithFocus(m *focus.Manager) LoopOption {
	return func(l *Loop) { l.focus = m }
}

// WithLogger sets the loop logger.
func WithLogger(log *Logger) LoopOption {
	return func(l *Loop) { l.log = log }
}

// WithPollTimeout sets the per-tick poll bound.
func WithPollTimeout(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// OnAction sets the handler for resolved actions. Returning ErrQuit stops
// the loop cleanly; any other error aborts it.
func OnAction(fn func(keymap.Action, key.Event) error) LoopOption {
	return func(l *Loop) { l.onAction = fn }
}

// OnChord sets the handler for key chords.
func OnChord(fn func(key.Chord) error) LoopOption {
	return func(l *Loop) { l.onChord = fn }
}

// OnMouse sets the handler for mouse events.
func OnMouse(fn func(mouse.Event) error) LoopOption {
	return func(l *Loop) { l.onMouse = fn }
}

// OnResize sets the handler for terminal size changes.
func OnResize(fn func(width, height int) error) LoopOption {
	return func(l *Loop) { l.onResize = fn }
}

// NewLoop creates an event loop over a poller.
func NewLoop(p Poller, opts ...LoopOption) *Loop {
	l := &Loop{
		poller:  p,
		timeout: DefaultPollTimeout,
		log:     NewLogger(LoggerConfig{Level: LogLevelWarn}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run polls until the context is cancelled, the input stream closes, or a
// handler returns ErrQuit. The poll timeout bounds how long cancellation
// can go unnoticed.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ev, err := l.poller.Poll(l.timeout)
		if err != nil {
			if errors.Is(err, term.ErrWouldBlock) {
				continue
			}
			if errors.Is(err, io.EOF) {
				l.log.Info("input stream closed")
				return nil
			}
			return err
		}

		if err := l.dispatch(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				l.log.Info("quit requested")
				return nil
			}
			return err
		}
	}
}

// dispatch routes one decoded event.
func (l *Loop) dispatch(ev input.Event) error {
	switch ev.Kind {
	case input.KindKey:
		return l.dispatchKey(ev.Key)
	case input.KindChord:
		if l.onChord != nil {
			return l.onChord(ev.Chord)
		}
		return nil
	case input.KindMouse:
		if l.onMouse != nil {
			return l.onMouse(ev.Mouse)
		}
		return nil
	case input.KindResize:
		l.log.Debug("resize %dx%d", ev.Width, ev.Height)
		if l.onResize != nil {
			return l.onResize(ev.Width, ev.Height)
		}
		return nil
	default:
		// Malformed or unsupported sequences are expected noise.
		l.log.Debug("unknown input sequence")
		return nil
	}
}

// dispatchKey resolves a key against the profiles first, then offers it to
// the focus machinery.
func (l *Loop) dispatchKey(ev key.Event) error {
	if l.resolver != nil {
		if action, ok := l.resolver.Resolve(ev); ok {
			l.log.Debug("key %s -> %s", ev, action)
			if l.onAction != nil {
				return l.onAction(action, ev)
			}
			return nil
		}
	}

	if l.focus != nil && l.focus.HandleKey(ev) {
		return nil
	}

	l.log.Debug("key %s unhandled", ev)
	return nil
}
