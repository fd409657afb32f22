package manager

// PasteCurrent returns the currently selected history entry for the
// host to insert, re-mirroring it first so a host-level paste sees the
// same value. ok is false on an empty history; that is not an error.
func (m *Manager) PasteCurrent(opts PasteOptions) (Paste, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.history.Current()
	if !ok {
		return Paste{}, false, nil
	}
	if err := m.mirror(e.Text); err != nil {
		return Paste{}, false, err
	}
	if opts.Pop {
		if i, ok := m.history.CurrentIndex(); ok {
			m.history.Remove(i)
		}
	}
	return Paste{Text: e.Text, Indent: opts.Indent}, true, nil
}

// Next moves the history cursor one step toward the newest entry,
// mirrors the now-current entry and returns its text. The host decides
// whether to paste it or merely show it as a status message.
func (m *Manager) Next(opts PasteOptions) (Paste, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.history.MoveNext()
	if !ok {
		return Paste{}, false, nil
	}
	if err := m.mirror(e.Text); err != nil {
		return Paste{}, false, err
	}
	return Paste{Text: e.Text, Indent: opts.Indent}, true, nil
}

// Previous moves the history cursor one step toward the oldest entry,
// mirrors the now-current entry and returns its text.
func (m *Manager) Previous(opts PasteOptions) (Paste, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.history.MovePrevious()
	if !ok {
		return Paste{}, false, nil
	}
	if err := m.mirror(e.Text); err != nil {
		return Paste{}, false, err
	}
	return Paste{Text: e.Text, Indent: opts.Indent}, true, nil
}

// PasteAt selects the history entry at index i (as reported by history
// items) and returns it like PasteCurrent. Used by choose-and-paste
// pickers.
func (m *Manager) PasteAt(i int, opts PasteOptions) (Paste, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.history.MoveTo(i)
	if !ok {
		return Paste{}, false, nil
	}
	if err := m.mirror(e.Text); err != nil {
		return Paste{}, false, err
	}
	if opts.Pop {
		m.history.Remove(i)
	}
	return Paste{Text: e.Text, Indent: opts.Indent}, true, nil
}

// YankPaste pops the oldest entry off the yank stack, mirrors it and
// returns it for insertion. ok is false on an empty stack.
func (m *Manager) YankPaste(opts PasteOptions) (Paste, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.yank.PopOldest()
	if !ok {
		return Paste{}, false, nil
	}
	if err := m.mirror(e.Text); err != nil {
		return Paste{}, false, err
	}
	return Paste{Text: e.Text, Indent: opts.Indent}, true, nil
}

// SetYankMode toggles whether captures are collected on the yank stack.
// Leaving yank mode under explicit yank clears the stack, matching the
// mode's stash-then-drain usage.
func (m *Manager) SetYankMode(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.yankMode = enabled
	if !enabled && m.explicitYank {
		m.yank.Reset()
	}
}

// YankModeEnabled reports whether yank mode is active.
func (m *Manager) YankModeEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.yankMode
}

// YankLen returns the number of entries on the yank stack.
func (m *Manager) YankLen() int {
	return m.yank.Len()
}

// ClearYank empties the yank stack.
func (m *Manager) ClearYank() {
	m.yank.Reset()
}

// ClearHistory wipes the history buffer. Registers are unaffected.
func (m *Manager) ClearHistory() {
	m.history.Reset()
}

// TransformHistory applies fn to every history entry's text in place.
// Returns the number of entries changed. Registers are not touched.
func (m *Manager) TransformHistory(fn func(text string) (string, bool)) int {
	return m.history.Rewrite(fn)
}
