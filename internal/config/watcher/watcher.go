// Package watcher reloads the configuration file when it changes on
// disk, so capacity and polling settings apply without a restart.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/clipstack/internal/config"
)

// ErrAlreadyRunning indicates Start was called twice.
var ErrAlreadyRunning = errors.New("config watcher already running")

// DefaultDebounce coalesces the rapid write bursts editors produce when
// saving a file.
const DefaultDebounce = 100 * time.Millisecond

// Handler receives the freshly loaded configuration after a change.
type Handler func(cfg config.Config)

// ErrorHandler receives reload failures (unparseable file, fs errors).
type ErrorHandler func(err error)

// Watcher reloads a config file on change.
type Watcher struct {
	mu sync.Mutex

	path     string
	debounce time.Duration

	onReload Handler
	onError  ErrorHandler

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce window for rapid successive writes.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the callback for reload failures.
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *Watcher) {
		w.onError = h
	}
}

// New creates a watcher for the config file at path, invoking onReload
// with the newly loaded configuration after each change.
func New(path string, onReload Handler, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		onReload: onReload,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. The watch runs until Stop is called or ctx is
// cancelled. The containing directory is watched rather than the file
// itself so atomic save (write temp, rename over) is still observed.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrAlreadyRunning
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.running = true

	w.wg.Add(1)
	go w.loop(ctx, fw)
	return nil
}

// Stop ends the watch and waits for the goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.running = false
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fw.Close()

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.reportError(err)

		case <-pending:
			pending = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := config.Load(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
