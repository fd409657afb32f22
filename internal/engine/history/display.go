package history

import (
	"fmt"
	"strings"
)

// Item is one row of a history display projection.
type Item struct {
	// Index is the buffer index of the entry (oldest = 0).
	Index int

	// Preview is the single-line escaped preview of the entry text.
	Preview string

	// Current marks the entry the cursor points at.
	Current bool
}

// Items returns a display projection of the buffer, newest first.
// Purely a read; never mutates the buffer.
func (b *Buffer) Items(width int) []Item {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := make([]Item, 0, len(b.entries))
	for i := len(b.entries) - 1; i >= 0; i-- {
		items = append(items, Item{
			Index:   i,
			Preview: b.entries[i].Preview(width),
			Current: i == b.cursor,
		})
	}
	return items
}

// Describe renders the buffer as an output-panel block: a title header
// followed by one numbered row per entry, newest first, with the current
// entry marked by an arrow. Multi-line clips are continued on indented
// marker lines.
func (b *Buffer) Describe(title string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	count := len(b.entries)
	fmt.Fprintf(&sb, " %s HISTORY (%d)\n", title, count)
	sb.WriteString(strings.Repeat("=", 22+len(fmt.Sprint(count))) + "\n")

	row := 1
	for i := count - 1; i >= 0; i-- {
		if i == b.cursor {
			sb.WriteString("--> ")
		} else {
			sb.WriteString("    ")
		}
		fmt.Fprintf(&sb, "%3d. %s\n", row, b.entries[i].PanelText("       > "))
		row++
	}
	return sb.String()
}
