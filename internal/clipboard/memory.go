package clipboard

import "sync"

// Memory is an in-process Provider for tests and headless use.
// Failures can be injected to exercise error propagation.
type Memory struct {
	mu      sync.Mutex
	content string

	getErr error
	setErr error
}

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the stored content, or the injected read failure.
func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return "", m.getErr
	}
	return m.content, nil
}

// Set stores content, or returns the injected write failure.
func (m *Memory) Set(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.setErr != nil {
		return m.setErr
	}
	m.content = content
	return nil
}

// FailReads makes subsequent Get calls return err. Pass nil to restore.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// FailWrites makes subsequent Set calls return err. Pass nil to restore.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}
