package poll

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dshills/clipstack/internal/clipboard"
	"github.com/dshills/clipstack/internal/manager"
)

// recordingSink collects observed text for assertions.
type recordingSink struct {
	mu   sync.Mutex
	seen []string
}

func (r *recordingSink) ObserveExternal(text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, text)
	return true
}

func (r *recordingSink) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.seen))
	copy(out, r.seen)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestPollerObserves(t *testing.T) {
	clip := clipboard.NewMemory()
	clip.Set("external")
	sink := &recordingSink{}

	p := New(clip, sink, WithInterval(10*time.Millisecond))
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer p.Stop()

	waitFor(t, 2*time.Second, func() bool { return len(sink.all()) > 0 })
	if got := sink.all()[0]; got != "external" {
		t.Errorf("observed %q, want %q", got, "external")
	}
}

func TestPollerReportsReadErrors(t *testing.T) {
	clip := clipboard.NewMemory()
	boom := errors.New("no display")
	clip.FailReads(boom)

	errs := make(chan error, 1)
	p := New(clip, &recordingSink{},
		WithInterval(10*time.Millisecond),
		WithErrorHandler(func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer p.Stop()

	select {
	case err := <-errs:
		if !errors.Is(err, boom) {
			t.Errorf("reported err = %v, want injected failure", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error report")
	}
}

func TestPollerFeedsManager(t *testing.T) {
	clip := clipboard.NewMemory()
	m := manager.New(clip)
	m.Copy("engine write")

	p := New(clip, m, WithInterval(10*time.Millisecond))
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer p.Stop()

	// The engine's own mirror must not be re-captured.
	time.Sleep(50 * time.Millisecond)
	if m.HistoryLen() != 1 {
		t.Fatalf("HistoryLen = %d, own mirror was re-captured", m.HistoryLen())
	}

	// An external write is captured as an implicit push.
	clip.Set("from another app")
	waitFor(t, 2*time.Second, func() bool { return m.HistoryLen() == 2 })

	cur, _ := m.Current()
	if cur.Text != "from another app" {
		t.Errorf("Current = %q, want external text", cur.Text)
	}
}

func TestStartTwice(t *testing.T) {
	p := New(clipboard.NewMemory(), &recordingSink{}, WithInterval(10*time.Millisecond))
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer p.Stop()

	if err := p.Start(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start err = %v, want ErrAlreadyRunning", err)
	}
}

func TestStopIdempotent(t *testing.T) {
	p := New(clipboard.NewMemory(), &recordingSink{})
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	p.Stop()
	p.Stop()
}
