package manager

import "github.com/dshills/clipstack/internal/engine/entry"

// Copy records selected text as the newest history entry and mirrors it
// to the clipboard provider. An empty selection is a no-op.
func (m *Manager) Copy(selected string) error {
	return m.capture(selected)
}

// Cut is identical to Copy from the engine's point of view; deleting
// the selection from the host buffer is the host's concern.
func (m *Manager) Cut(selected string) error {
	return m.capture(selected)
}

func (m *Manager) capture(selected string) error {
	if selected == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(selected)
	return m.mirror(selected)
}

// record routes captured text onto the appropriate lists.
// Caller must hold m.mu.
func (m *Manager) record(text string) entry.Entry {
	if m.yankMode {
		e := m.yank.Push(text)
		if m.explicitYank {
			return e
		}
	}
	return m.history.Push(text)
}

// ObserveExternal reports text found on the OS clipboard by the poller.
// Text matching the engine's last mirrored value is the engine's own
// write echoed back and is ignored, which also guarantees an implicit
// push can never displace a navigation-selected entry that was just
// mirrored. Returns true if the text was captured.
func (m *Manager) ObserveExternal(text string) bool {
	if text == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasMirrored && text == m.lastMirrored {
		return false
	}

	m.record(text)
	// The clipboard already holds this value; record it as known
	// without writing.
	m.lastMirrored = text
	m.hasMirrored = true
	return true
}
