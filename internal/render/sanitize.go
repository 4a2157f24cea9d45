package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// Sanitize strips ANSI escape sequences and control characters from s.
// Newlines are kept and tabs become a single space.
func Sanitize(s string) string {
	s = ansi.Strip(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeLine is Sanitize for single-line fields: line breaks become spaces
// and the result is trimmed.
func SanitizeLine(s string) string {
	s = strings.ReplaceAll(Sanitize(s), "\n", " ")
	return strings.TrimSpace(s)
}

// Truncate shortens s to at most width terminal cells, ending with an
// ellipsis when something was cut. A non-positive width returns "".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	limit := width - lipgloss.Width(ellipsis)
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > limit {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + ellipsis
}
