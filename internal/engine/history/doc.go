// Package history provides the bounded, navigable clipboard history.
//
// The history system tracks every captured clip in insertion order and
// maintains a cursor marking the currently selected entry. Key concepts:
//
// # Buffer
//
// Buffer is a bounded sequence of entries, most-recent-last, with FIFO
// eviction once capacity is exceeded:
//
//	buf := history.New(history.WithCapacity(256))
//
//	buf.Push("copied text") // newest, cursor reset
//	buf.MovePrevious()      // walk toward older entries
//	buf.MoveNext()          // walk back toward newest
//	buf.Current()           // entry under the cursor
//
// Navigation clamps at both ends rather than wrapping, and every
// operation is total over an empty buffer: callers get ok=false, never
// an error.
//
// # Deduplication
//
// Pushing text identical to the newest entry reuses that entry and only
// resets the cursor. With duplicates disallowed (the default), text
// already present deeper in the buffer is repositioned to newest instead
// of being stored twice.
//
// # Yank Stack
//
// Stack is a consumable history used by yank mode: clips accumulate the
// same way but pasting pops them, oldest first, until the stack empties.
package history
