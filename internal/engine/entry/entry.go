// Package entry defines the immutable clipboard entry value shared by the
// history buffer and the register store, along with the text formatting
// helpers used by display projections.
package entry

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one captured unit of clipboard text.
//
// Entries are immutable once created. Absence of an entry is always
// represented by an explicit ok=false return, never by an Entry with
// empty text.
type Entry struct {
	// ID is a stable identity for the entry, used by display
	// projections that need to track entries across reorderings.
	ID string

	// Text is the captured text fragment.
	Text string

	// Seq is a monotonic sequence number assigned by the producing
	// buffer. Used only for display ordering tie-breaks.
	Seq uint64

	// CreatedAt is when the entry was captured.
	CreatedAt time.Time
}

// New creates an entry for the given text and sequence number.
func New(text string, seq uint64) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Text:      text,
		Seq:       seq,
		CreatedAt: time.Now(),
	}
}

// IsZero returns true if the entry is the zero value.
func (e Entry) IsZero() bool {
	return e.ID == ""
}
