// Package dispatch maps external command identifiers onto typed
// clipboard manager operations.
//
// Host integrations bind keys or menu items to command names; the
// registry resolves each name to a handler and returns a uniform
// response the host renders (an insertion, a status notice or a panel).
// The mapping is a plain lookup table; the engine itself never
// dispatches on strings.
package dispatch

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownCommand indicates a command name with no registered handler.
var ErrUnknownCommand = errors.New("unknown command")

// Request carries one parsed host command.
type Request struct {
	// Command is the command identifier, e.g. "next_and_paste".
	Command string

	// Text is the host's selected text for capture commands.
	Text string

	// Key is the register key for register commands.
	Key string

	// Index is the chosen entry index for choose_and_paste.
	Index int

	// Indent requests indentation-aware insertion from the host.
	Indent bool

	// Pop removes the pasted entry after pasting.
	Pop bool
}

// Response is what the host renders after a command.
type Response struct {
	// Text is the content for insertion or status display.
	Text string

	// Indent mirrors the request option for the host's paste routine.
	Indent bool

	// Paste tells the host to insert Text into the buffer; when false
	// Text is informational only.
	Paste bool

	// Display holds panel content for show commands.
	Display string

	// Cut tells the host to delete the captured selection.
	Cut bool

	// NoEntry is set when the command targeted an empty history or an
	// unset register; the host shows a notice instead of acting.
	NoEntry bool
}

// Handler executes one command.
type Handler func(req Request) (Response, error)

// Registry resolves command names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register binds a handler to a command name, replacing any previous
// binding.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Has returns true if a handler is registered for the command.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch resolves and runs the command in req.
func (r *Registry) Dispatch(req Request) (Response, error) {
	r.mu.RLock()
	h, ok := r.handlers[req.Command]
	r.mu.RUnlock()

	if !ok {
		return Response{}, fmt.Errorf("%w: %s", ErrUnknownCommand, req.Command)
	}
	return h(req)
}
