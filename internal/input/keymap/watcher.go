package keymap

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads file-based profiles in place when their files change.
// The profile's bindings are swapped under the resolver without changing
// profile identity or priority order.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	loader   *Loader
	tracked  map[string]*Profile
	onReload func(*Profile)
	onError  func(error)
	done     chan struct{}
	closed   bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithReloadFunc sets a callback invoked after each successful reload.
func WithReloadFunc(fn func(*Profile)) WatcherOption {
	return func(w *Watcher) { w.onReload = fn }
}

// WithErrorFunc sets a callback invoked when a reload fails. The previous
// bindings stay active on failure.
func WithErrorFunc(fn func(error)) WatcherOption {
	return func(w *Watcher) { w.onError = fn }
}

// NewWatcher creates a profile watcher. Close releases the underlying
// OS watch descriptors.
func NewWatcher(loader *Loader, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		watcher: fsw,
		loader:  loader,
		tracked: make(map[string]*Profile),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

// Track starts watching the file behind a loaded profile. The profile must
// have been loaded by Loader.LoadFile so that Source holds its path.
func (w *Watcher) Track(p *Profile) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("watcher closed")
	}
	if err := w.watcher.Add(p.Source); err != nil {
		return fmt.Errorf("watching %s: %w", p.Source, err)
	}
	w.tracked[p.Source] = p
	return nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload(ev.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

func (w *Watcher) reload(path string) {
	w.mu.Lock()
	p, ok := w.tracked[path]
	w.mu.Unlock()
	if !ok {
		return
	}

	fresh, err := w.loader.LoadFile(path)
	if err != nil {
		w.reportError(fmt.Errorf("reloading %s: %w", path, err))
		return
	}

	p.Replace(fresh)
	if w.onReload != nil {
		w.onReload(p)
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
