package history

import "github.com/dshills/clipstack/internal/engine/entry"

// Stack is a consumable variant of Buffer used by yank mode: entries are
// collected like history entries but pasting pops them, oldest first.
type Stack struct {
	buf *Buffer
}

// NewStack creates an empty yank stack.
func NewStack(opts ...Option) *Stack {
	return &Stack{buf: New(opts...)}
}

// Push inserts text as the newest entry.
func (s *Stack) Push(text string) entry.Entry {
	return s.buf.Push(text)
}

// PopOldest removes and returns the oldest entry.
func (s *Stack) PopOldest() (entry.Entry, bool) {
	return s.buf.Remove(0)
}

// PopAt removes and returns the entry at index i.
func (s *Stack) PopAt(i int) (entry.Entry, bool) {
	return s.buf.Remove(i)
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	return s.buf.Len()
}

// Entries returns a snapshot of the stack, oldest first.
func (s *Stack) Entries() []entry.Entry {
	return s.buf.Entries()
}

// Items returns a display projection of the stack, newest first.
func (s *Stack) Items(width int) []Item {
	return s.buf.Items(width)
}

// Describe renders the stack as an output-panel block.
func (s *Stack) Describe() string {
	return s.buf.Describe("YANK")
}

// Reset clears the stack.
func (s *Stack) Reset() {
	s.buf.Reset()
}
