package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	out, _ := ExpandTabsAt(text, tabWidth, 0)
	return out
}

// ExpandTabsAt expands tabs in text that starts at the given column and
// returns the column reached after it.
func ExpandTabsAt(text string, tabWidth int, column int) (string, int) {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text, column + DisplayWidth(text)
	}

	var builder strings.Builder
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		column += runeCells(ru)
	}
	return builder.String(), column
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight appends spaces until text occupies width cells.
func PadRight(text string, width int) string {
	if gap := width - DisplayWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

// Truncate shortens text to at most width cells, ending it with an ellipsis
// when something was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

func runeCells(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 1 {
		w = 1
	}
	return w
}
