package entry

import "strings"

// PreviewWidth is the default truncation width for single-line previews.
const PreviewWidth = 64

// Preview returns a single-line preview of the entry text, with control
// characters escaped and the result truncated to width runes.
func (e Entry) Preview(width int) string {
	if width <= 0 {
		width = PreviewWidth
	}
	s := escapeInline(e.Text)
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s
}

// PanelText returns the entry text formatted for a multi-line panel:
// tabs escaped, line endings normalized, and continuation lines prefixed
// so multi-line clips read as a single block.
func (e Entry) PanelText(prefix string) string {
	s := strings.ReplaceAll(e.Text, "\t", `\t`)
	s = normalizeNewlines(s)
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// escapeInline flattens text to one line for status bars and pickers.
func escapeInline(s string) string {
	s = strings.ReplaceAll(s, "\t", `\t`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\n`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
