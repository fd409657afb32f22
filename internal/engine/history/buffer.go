package history

import (
	"sync"

	"github.com/dshills/clipstack/internal/engine/entry"
)

// DefaultCapacity is the number of entries retained when no capacity is
// configured.
const DefaultCapacity = 256

// Buffer is a bounded, ordered sequence of clipboard entries with a
// current-position cursor. Entries are stored most-recent-last; the
// oldest entry is evicted first when the buffer exceeds capacity.
//
// All methods are safe for concurrent use: the clipboard poller writes
// to the buffer from its own goroutine.
type Buffer struct {
	mu sync.Mutex

	entries []entry.Entry
	cursor  int

	capacity        int
	allowDuplicates bool

	seq uint64
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithCapacity sets the maximum number of retained entries.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.capacity = n
		}
	}
}

// WithDuplicates controls whether the same text may appear in the buffer
// more than once. When disallowed (the default), pushing text that exists
// anywhere in the buffer removes the older occurrence and re-inserts the
// text as newest. Pushes identical to the newest entry never create a new
// entry regardless of this setting.
func WithDuplicates(allow bool) Option {
	return func(b *Buffer) {
		b.allowDuplicates = allow
	}
}

// New creates an empty history buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Push inserts text as the newest entry and resets the cursor to it.
//
// If the newest entry already holds identical text, no entry is created;
// the existing entry is returned with the cursor reset. If duplicates are
// disallowed and the text exists deeper in the buffer, the older
// occurrence is removed first. The oldest entry is evicted when the push
// would exceed capacity. Push never fails; empty text is accepted.
func (b *Buffer) Push(text string) entry.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n := len(b.entries); n > 0 && b.entries[n-1].Text == text {
		b.cursor = n - 1
		return b.entries[n-1]
	}

	if !b.allowDuplicates {
		for i, e := range b.entries {
			if e.Text == text {
				b.entries = append(b.entries[:i], b.entries[i+1:]...)
				break
			}
		}
	}

	b.seq++
	e := entry.New(text, b.seq)
	b.entries = append(b.entries, e)

	if len(b.entries) > b.capacity {
		excess := len(b.entries) - b.capacity
		b.entries = b.entries[excess:]
	}

	b.cursor = len(b.entries) - 1
	return e
}

// Current returns the entry at the cursor without moving it.
func (b *Buffer) Current() (entry.Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return entry.Entry{}, false
	}
	return b.entries[b.cursor], true
}

// CurrentIndex returns the cursor position, newest-last ordering.
func (b *Buffer) CurrentIndex() (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return 0, false
	}
	return b.cursor, true
}

// MoveNext moves the cursor one step toward the newest entry, clamping
// at the newest. Returns the entry at the new cursor position.
func (b *Buffer) MoveNext() (entry.Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return entry.Entry{}, false
	}
	if b.cursor < len(b.entries)-1 {
		b.cursor++
	}
	return b.entries[b.cursor], true
}

// MovePrevious moves the cursor one step toward the oldest entry,
// clamping at the oldest. Returns the entry at the new cursor position.
func (b *Buffer) MovePrevious() (entry.Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return entry.Entry{}, false
	}
	if b.cursor > 0 {
		b.cursor--
	}
	return b.entries[b.cursor], true
}

// MoveTo positions the cursor at index i. Returns false if i is out of
// range; the cursor is left unchanged in that case.
func (b *Buffer) MoveTo(i int) (entry.Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.entries) {
		return entry.Entry{}, false
	}
	b.cursor = i
	return b.entries[b.cursor], true
}

// MoveOldest positions the cursor at the oldest entry.
func (b *Buffer) MoveOldest() (entry.Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return entry.Entry{}, false
	}
	b.cursor = 0
	return b.entries[b.cursor], true
}

// MoveNewest positions the cursor at the newest entry.
func (b *Buffer) MoveNewest() (entry.Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return entry.Entry{}, false
	}
	b.cursor = len(b.entries) - 1
	return b.entries[b.cursor], true
}

// Remove deletes the entry at index i and returns it. The cursor is
// adjusted to stay on the same entry where possible, and clamped into
// range otherwise.
func (b *Buffer) Remove(i int) (entry.Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.entries) {
		return entry.Entry{}, false
	}

	e := b.entries[i]
	b.entries = append(b.entries[:i], b.entries[i+1:]...)

	if i < b.cursor {
		b.cursor--
	}
	if b.cursor >= len(b.entries) {
		b.cursor = len(b.entries) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
	return e, true
}

// Len returns the number of entries in the buffer.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Reset clears all entries and the cursor.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = nil
	b.cursor = 0
}

// Entries returns a snapshot copy of all entries, oldest first.
func (b *Buffer) Entries() []entry.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entry.Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// SetCapacity changes the maximum number of entries. If the buffer is
// larger, the oldest entries are evicted and the cursor shifted to keep
// pointing at the same entry where possible.
func (b *Buffer) SetCapacity(n int) {
	if n <= 0 {
		n = DefaultCapacity
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.capacity = n

	if len(b.entries) > n {
		excess := len(b.entries) - n
		b.entries = b.entries[excess:]
		b.cursor -= excess
		if b.cursor < 0 {
			b.cursor = 0
		}
	}
}

// Rewrite applies fn to each entry's text, oldest first. When fn
// reports a change the entry's text is replaced in place; identity,
// sequence and position are preserved. Returns the number of entries
// changed.
func (b *Buffer) Rewrite(fn func(text string) (string, bool)) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	changed := 0
	for i := range b.entries {
		if text, ok := fn(b.entries[i].Text); ok && text != b.entries[i].Text {
			b.entries[i].Text = text
			changed++
		}
	}
	return changed
}

// Capacity returns the maximum number of retained entries.
func (b *Buffer) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capacity
}
