package manager

import "github.com/dshills/clipstack/internal/engine/register"

// CopyToRegister stores selected text under a single-character register
// key and mirrors it to the clipboard provider. The register holds its
// own copy: later history eviction never affects it. Returns
// register.ErrInvalidKey for a key that is not one printable character.
func (m *Manager) CopyToRegister(key rune, selected string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.registers.Set(key, selected); err != nil {
		return err
	}
	return m.mirror(selected)
}

// PasteFromRegister returns the text stored under key for the host to
// insert, mirroring it first. ok is false for a register that was never
// set; the host should show a notice rather than paste nothing.
func (m *Manager) PasteFromRegister(key rune, opts PasteOptions) (Paste, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.registers.Get(key)
	if !ok {
		return Paste{}, false, nil
	}
	if err := m.mirror(e.Text); err != nil {
		return Paste{}, false, err
	}
	return Paste{Text: e.Text, Indent: opts.Indent}, true, nil
}

// SetClipboardFromRegister mirrors a register's content to the provider
// without returning it for insertion. ok is false for an unset key.
func (m *Manager) SetClipboardFromRegister(key rune) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.registers.Get(key)
	if !ok {
		return false, nil
	}
	if err := m.mirror(e.Text); err != nil {
		return false, err
	}
	return true, nil
}

// ResetRegisters clears the registers selected by class.
func (m *Manager) ResetRegisters(class register.Class) {
	m.registers.Reset(class)
}
