package manager

import (
	"github.com/dshills/clipstack/internal/engine/history"
	"github.com/dshills/clipstack/internal/engine/register"
)

// DescribeHistory renders the history buffer for an output panel.
func (m *Manager) DescribeHistory() string {
	return m.history.Describe("CLIPBOARD")
}

// DescribeYank renders the yank stack for an output panel.
func (m *Manager) DescribeYank() string {
	return m.yank.Describe()
}

// DescribeRegisters renders the register store for an output panel.
func (m *Manager) DescribeRegisters() string {
	return m.registers.Describe()
}

// HistoryItems returns the history projection, newest first, for hosts
// that render their own quick panels.
func (m *Manager) HistoryItems() []history.Item {
	return m.history.Items(m.previewWidth)
}

// YankItems returns the yank stack projection, newest first.
func (m *Manager) YankItems() []history.Item {
	return m.yank.Items(m.previewWidth)
}

// RegisterItems returns the register projection, sorted by key.
func (m *Manager) RegisterItems() []register.Item {
	return m.registers.List(m.previewWidth)
}
