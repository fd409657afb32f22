// Package manager orchestrates the clipboard history, yank stack,
// register store and the OS clipboard mirror behind one public API.
//
// The central invariant: any operation that changes which history entry
// is currently selected (a push or a navigation) mirrors that entry's
// text to the clipboard provider before returning, so an ordinary
// host-level paste outside this engine sees the same value. Register
// operations mirror only on their own copy/paste, never in lockstep
// with navigation.
package manager

import (
	"fmt"
	"sync"

	"github.com/dshills/clipstack/internal/clipboard"
	"github.com/dshills/clipstack/internal/engine/entry"
	"github.com/dshills/clipstack/internal/engine/history"
	"github.com/dshills/clipstack/internal/engine/register"
)

// PasteOptions configures paste-type operations.
type PasteOptions struct {
	// Indent requests the host's indentation-aware insertion routine.
	// The engine never indents; it only threads the option through.
	Indent bool

	// Pop removes the pasted entry from its list after the paste.
	Pop bool
}

// Paste is the result handed back to the host for insertion.
type Paste struct {
	// Text is the content to insert.
	Text string

	// Indent mirrors PasteOptions.Indent for the host's paste routine.
	Indent bool
}

// Manager owns one history buffer, one yank stack and one register
// store per editing context, and mediates their synchronization with
// the single OS clipboard slot.
type Manager struct {
	mu sync.Mutex

	history   *history.Buffer
	yank      *history.Stack
	registers *register.Store
	clip      clipboard.Provider

	// yankMode routes captures onto the yank stack as well.
	yankMode bool

	// explicitYank keeps yank-mode captures off the regular history.
	explicitYank bool

	// lastMirrored is the text most recently written to the provider.
	// The poller uses it to distinguish external copies from the
	// engine's own mirrors.
	lastMirrored string
	hasMirrored  bool

	previewWidth int
}

// Option configures a Manager.
type Option func(*Manager)

// WithCapacity sets the history buffer capacity.
func WithCapacity(n int) Option {
	return func(m *Manager) {
		m.history.SetCapacity(n)
	}
}

// WithDuplicatePolicy recreates the history with the given duplicate
// policy. Must be applied before any entries are pushed.
func WithDuplicatePolicy(allow bool) Option {
	return func(m *Manager) {
		m.history = history.New(
			history.WithCapacity(m.history.Capacity()),
			history.WithDuplicates(allow),
		)
	}
}

// WithExplicitYank enables explicit yank mode: while yank mode is
// active, captures go only to the yank stack.
func WithExplicitYank(enabled bool) Option {
	return func(m *Manager) {
		m.explicitYank = enabled
		// Without explicit mode the yank stack always collects.
		m.yankMode = !enabled
	}
}

// WithPreviewWidth sets the truncation width for display projections.
func WithPreviewWidth(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.previewWidth = n
		}
	}
}

// New creates a manager mirroring into the given clipboard provider.
func New(clip clipboard.Provider, opts ...Option) *Manager {
	m := &Manager{
		history:      history.New(),
		yank:         history.NewStack(),
		registers:    register.New(),
		clip:         clip,
		yankMode:     true,
		previewWidth: entry.PreviewWidth,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// mirror writes text to the clipboard provider and records it as the
// engine's last-known clipboard value. Caller must hold m.mu.
func (m *Manager) mirror(text string) error {
	if err := m.clip.Set(text); err != nil {
		return fmt.Errorf("mirroring clipboard: %w", err)
	}
	m.lastMirrored = text
	m.hasMirrored = true
	return nil
}

// LastMirrored returns the text the engine last wrote to the provider.
// ok is false before the first mirror.
func (m *Manager) LastMirrored() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastMirrored, m.hasMirrored
}

// SetCapacity changes the history capacity live.
func (m *Manager) SetCapacity(n int) {
	m.history.SetCapacity(n)
}

// HistoryLen returns the number of entries in the history buffer.
func (m *Manager) HistoryLen() int {
	return m.history.Len()
}

// Current returns the currently selected history entry.
func (m *Manager) Current() (entry.Entry, bool) {
	return m.history.Current()
}
