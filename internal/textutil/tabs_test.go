package textutil

import "testing"

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"no tabs", "abc", 4, "abc"},
		{"leading tab", "\tx", 4, "    x"},
		{"tab after text", "ab\tc", 4, "ab  c"},
		{"disabled", "a\tb", 0, "a\tb"},
		{"wide runes count double", "日\tx", 4, "日  x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandTabs(tt.text, tt.width); got != tt.want {
				t.Fatalf("ExpandTabs(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestExpandTabsAtContinuesColumn(t *testing.T) {
	got, column := ExpandTabsAt("\tz", 4, 2)
	if got != "  z" || column != 5 {
		t.Fatalf("ExpandTabsAt = (%q, %d), want (\"  z\", 5)", got, column)
	}
	plain, column := ExpandTabsAt("abc", 4, 3)
	if plain != "abc" || column != 6 {
		t.Fatalf("ExpandTabsAt without tabs = (%q, %d)", plain, column)
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"ascii", 5},
		{"日本", 4},
		{"Zażółć", 6},
	}
	for _, tt := range tests {
		if got := DisplayWidth(tt.text); got != tt.want {
			t.Fatalf("DisplayWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestPadRightAndTruncate(t *testing.T) {
	if got := PadRight("日", 4); got != "日  " {
		t.Fatalf("PadRight = %q", got)
	}
	if got := PadRight("toolong", 3); got != "toolong" {
		t.Fatalf("PadRight should not cut text, got %q", got)
	}
	if got := Truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("abc", 10); got != "abc" {
		t.Fatalf("Truncate should keep short text, got %q", got)
	}
}
