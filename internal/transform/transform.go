// Package transform applies cleanup functions to clipboard history
// entries, either built-in or supplied as Lua scripts.
package transform

import (
	"regexp"
	"strings"
)

// Transform rewrites entry text. It returns the replacement text and
// true when the entry should change; false leaves the entry untouched.
type Transform func(text string) (string, bool)

// ibooksRE matches text copied from Apple Books: the quoted excerpt
// followed by an "Excerpt From:" citation block.
var ibooksRE = regexp.MustCompile(`(?s)^“(.*?)”\s+Excerpt From:.*$`)

// IBooks strips the smart quotes and citation that Apple Books wraps
// around copied excerpts, leaving only the quoted text.
func IBooks(text string) (string, bool) {
	m := ibooksRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// TrimSpace removes leading and trailing whitespace.
func TrimSpace(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == text {
		return "", false
	}
	return trimmed, true
}

// Builtins returns the named built-in transforms.
func Builtins() map[string]Transform {
	return map[string]Transform{
		"ibooks": IBooks,
		"trim":   TrimSpace,
	}
}
