package register

import (
	"fmt"
	"sort"
	"strings"
)

// Describe renders the registers as an output-panel block, sorted by
// key, with multi-line contents continued on marker lines.
func (s *Store) Describe() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	count := len(s.registers)
	fmt.Fprintf(&sb, " CLIPBOARD REGISTERS (%d)\n", count)
	sb.WriteString(strings.Repeat("=", 23+len(fmt.Sprint(count))) + "\n")

	keys := make([]rune, 0, count)
	for key := range s.registers {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		fmt.Fprintf(&sb, "%c: %s\n", key, s.registers[key].PanelText(" > "))
	}
	return sb.String()
}
