// Package poll watches the OS clipboard for text copied by other
// applications and feeds it into the engine as implicit pushes.
//
// Polling is the engine's one asynchronous boundary. The recorder
// (the clipboard manager) decides under its own lock whether an
// observed value is genuinely external or just the engine's last
// mirror echoed back, so an implicit push can never displace a
// navigation-selected entry.
package poll

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dshills/clipstack/internal/clipboard"
)

// ErrAlreadyRunning indicates Start was called twice.
var ErrAlreadyRunning = errors.New("clipboard poller already running")

// DefaultInterval is the polling period when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Recorder consumes observed clipboard text. Implemented by the
// clipboard manager.
type Recorder interface {
	// ObserveExternal reports text found on the OS clipboard.
	// Returns true if the text was captured as a new entry.
	ObserveExternal(text string) bool
}

// ErrorHandler receives clipboard read failures. Reads are retried on
// the next tick regardless.
type ErrorHandler func(err error)

// Poller periodically reads the clipboard provider and reports its
// content to the recorder.
type Poller struct {
	mu sync.Mutex

	clip     clipboard.Provider
	rec      Recorder
	interval time.Duration
	onError  ErrorHandler

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the polling period.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithErrorHandler sets the callback for clipboard read failures.
func WithErrorHandler(h ErrorHandler) Option {
	return func(p *Poller) {
		p.onError = h
	}
}

// New creates a poller reading from clip and reporting to rec.
func New(clip clipboard.Provider, rec Recorder, opts ...Option) *Poller {
	p := &Poller{
		clip:     clip,
		rec:      rec,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start begins polling until Stop is called or ctx is cancelled.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.running = true

	p.wg.Add(1)
	go p.loop(ctx)
	return nil
}

// Stop ends polling and waits for the goroutine to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.cancel()
	p.running = false
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Poller) loop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.observe()
		}
	}
}

func (p *Poller) observe() {
	text, err := p.clip.Get()
	if err != nil {
		if p.onError != nil {
			p.onError(err)
		}
		return
	}
	p.rec.ObserveExternal(text)
}
