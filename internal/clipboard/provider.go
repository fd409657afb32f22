// Package clipboard abstracts the single OS clipboard slot the engine
// mirrors into.
package clipboard

// Provider abstracts system clipboard access.
//
// The OS clipboard is treated as a single external register with no
// guarantee beyond last-writer-wins: an external application may
// overwrite it between engine operations and the engine does not
// reconcile that, it simply overwrites on its next mirror.
type Provider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}
