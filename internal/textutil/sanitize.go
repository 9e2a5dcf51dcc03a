package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeTerminalText replaces control characters so document text cannot
// inject terminal escape sequences when printed. Bidi and zero-width
// formatting runes are made visible as ⟪U+XXXX⟫.
func SanitizeTerminalText(text string) string {
	if !strings.ContainsFunc(text, requiresSanitization) {
		return text
	}

	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case isFormattingRune(r):
			fmt.Fprintf(&b, "⟪U+%04X⟫", r)
		case unicode.IsControl(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasFormattingRunes reports whether text contains bidi or zero-width formatting runes.
func HasFormattingRunes(text string) bool {
	return strings.ContainsFunc(text, isFormattingRune)
}

func requiresSanitization(r rune) bool {
	if r == '\t' {
		return false
	}
	return unicode.IsControl(r) || isFormattingRune(r)
}

func isFormattingRune(r rune) bool {
	return unicode.Is(unicode.Cf, r) || r == 0x2028 || r == 0x2029
}
