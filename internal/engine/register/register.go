// Package register provides named single-slot clipboard storage.
//
// Registers are addressed by a single printable character and hold one
// clipboard entry each. They are fully independent of the history
// buffer: history eviction never touches a register, and register
// writes never enter the history.
package register

import (
	"errors"
	"sort"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/clipstack/internal/engine/entry"
)

// ErrInvalidKey indicates a register key that is not exactly one
// printable character.
var ErrInvalidKey = errors.New("register key must be a single printable character")

// Class selects a group of register keys for bulk reset.
type Class int

const (
	// ClassAll selects every register.
	ClassAll Class = iota

	// ClassDigits selects registers 0-9.
	ClassDigits

	// ClassLower selects registers a-z.
	ClassLower

	// ClassUpper selects registers A-Z.
	ClassUpper
)

// ParseKey validates a register key supplied as a string by a host
// integration. Returns ErrInvalidKey unless the string is exactly one
// printable character.
func ParseKey(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	// DecodeRuneInString reports invalid bytes as RuneError with size 1;
	// a literal U+FFFD decodes with size 3 and is a valid key.
	if (r == utf8.RuneError && size <= 1) || size != len(s) || !unicode.IsPrint(r) {
		return 0, ErrInvalidKey
	}
	return r, nil
}

// Store maps single-character keys to clipboard entries.
// Writes overwrite: last writer wins, never merges.
type Store struct {
	mu        sync.RWMutex
	registers map[rune]entry.Entry
	seq       uint64
}

// New creates an empty register store.
func New() *Store {
	return &Store{
		registers: make(map[rune]entry.Entry),
	}
}

// Set stores text under key, overwriting any previous entry.
// The entry is held by value so later history eviction or mutation of
// the source cannot affect it.
func (s *Store) Set(key rune, text string) (entry.Entry, error) {
	if !unicode.IsPrint(key) {
		return entry.Entry{}, ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	e := entry.New(text, s.seq)
	s.registers[key] = e
	return e, nil
}

// Get returns the entry stored under key. ok is false if the key was
// never set; that is a normal state, not an error.
func (s *Store) Get(key rune) (entry.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.registers[key]
	return e, ok
}

// Len returns the number of populated registers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registers)
}

// Reset clears the registers selected by class.
func (s *Store) Reset(class Class) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if class == ClassAll {
		s.registers = make(map[rune]entry.Entry)
		return
	}

	for key := range s.registers {
		switch class {
		case ClassDigits:
			if key >= '0' && key <= '9' {
				delete(s.registers, key)
			}
		case ClassLower:
			if key >= 'a' && key <= 'z' {
				delete(s.registers, key)
			}
		case ClassUpper:
			if key >= 'A' && key <= 'Z' {
				delete(s.registers, key)
			}
		}
	}
}

// Item is one row of a register display projection.
type Item struct {
	// Key is the register character.
	Key rune

	// Preview is the single-line escaped preview of the stored text.
	Preview string
}

// List returns a display projection of all populated registers, sorted
// by key for stable presentation.
func (s *Store) List(width int) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]rune, 0, len(s.registers))
	for key := range s.registers {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	items := make([]Item, 0, len(keys))
	for _, key := range keys {
		items = append(items, Item{
			Key:     key,
			Preview: s.registers[key].Preview(width),
		})
	}
	return items
}
