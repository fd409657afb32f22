package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System is a Provider backed by the OS clipboard.
type System struct{}

// NewSystem creates a system clipboard provider.
func NewSystem() *System {
	return &System{}
}

// Get returns the OS clipboard content.
func (s *System) Get() (string, error) {
	content, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading system clipboard: %w", err)
	}
	return content, nil
}

// Set writes content to the OS clipboard.
func (s *System) Set(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}
