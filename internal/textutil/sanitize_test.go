package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTerminalTextLeavesSafeInput(t *testing.T) {
	input := "safe heading\twith tab"
	if got := SanitizeTerminalText(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	input := "bad\x1b[31m\ntext"
	got := SanitizeTerminalText(input)
	if got != "bad?[31m text" {
		t.Fatalf("expected sanitized string \"bad?[31m text\", got %q", got)
	}
}

func TestSanitizeTerminalTextLabelsFormattingRunes(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c"
	got := SanitizeTerminalText(input)
	if strings.ContainsRune(got, 0x202E) || strings.ContainsRune(got, 0x200B) {
		t.Fatalf("sanitize left formatting runes in output: %q", got)
	}
	if !strings.Contains(got, "⟪U+202E⟫") || !strings.Contains(got, "⟪U+200B⟫") {
		t.Fatalf("expected formatting runes to be labeled, got %q", got)
	}
}

func TestHasFormattingRunes(t *testing.T) {
	if HasFormattingRunes("plain") {
		t.Fatalf("expected plain text to have no formatting runes")
	}
	if !HasFormattingRunes("hi" + string(rune(0x2067))) {
		t.Fatalf("expected formatting runes to be detected")
	}
}
