package search

import (
	"reflect"
	"testing"
)

func TestFuzzyMatch_BasicMatching(t *testing.T) {
	fm := NewFuzzyMatcher()

	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"", "anything", true},
		{"a", "apple", true},
		{"app", "apple", true},
		{"apl", "apple", true},
		{"abc", "axbycz", true},
		{"xyz", "apple", false},
		{"inst", "Installation", true},
		{"Inst", "installation", false},
		{"gs", "Getting Started", true},
		{"zół", "Zażółć gęślą jaźń", true},
		{"toolong", "tool", false},
	}

	for _, tt := range tests {
		score, matched := fm.Match(tt.pattern, tt.text)
		if matched != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v (score: %f)",
				tt.pattern, tt.text, matched, tt.want, score)
		}
		if matched && (score <= 0 || score > 1) {
			t.Errorf("Match(%q, %q) score %f out of range", tt.pattern, tt.text, score)
		}
	}
}

func TestFuzzyMatch_ScoreOrdering(t *testing.T) {
	fm := NewFuzzyMatcher()

	tests := []struct {
		name    string
		pattern string
		better  string
		worse   string
	}{
		{"substring beats scattered", "setup", "Setup guide", "Save extra time upstream"},
		{"word start beats interior", "api", "API reference", "Capital ideas"},
		{"tight beats loose", "cfg", "cfg files", "config flags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			good, ok := fm.Match(tt.pattern, tt.better)
			if !ok {
				t.Fatalf("expected %q to match %q", tt.pattern, tt.better)
			}
			bad, ok := fm.Match(tt.pattern, tt.worse)
			if !ok {
				t.Fatalf("expected %q to match %q", tt.pattern, tt.worse)
			}
			if good <= bad {
				t.Fatalf("score(%q)=%f should exceed score(%q)=%f", tt.better, good, tt.worse, bad)
			}
		})
	}
}

func TestMatchDetailedSpans(t *testing.T) {
	fm := NewFuzzyMatcher()

	_, matched, spans := fm.MatchDetailed("start", "Getting Started")
	if !matched {
		t.Fatalf("expected match")
	}
	want := []MatchSpan{{Start: 8, End: 12}}
	if !reflect.DeepEqual(spans, want) {
		t.Fatalf("spans = %#v, want %#v", spans, want)
	}

	_, matched, spans = fm.MatchDetailed("gs", "Getting Started")
	if !matched {
		t.Fatalf("expected match")
	}
	// The window is tightened backwards from the first complete match.
	want = []MatchSpan{{Start: 6, End: 6}, {Start: 8, End: 8}}
	if !reflect.DeepEqual(spans, want) {
		t.Fatalf("spans = %#v, want %#v", spans, want)
	}
}

func TestMatchMultipleSortsByScore(t *testing.T) {
	fm := NewFuzzyMatcher()
	texts := []string{"Overview", "Install notes", "Installation", "Usage"}

	matches := fm.MatchMultiple("install", texts)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %#v", matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Fatalf("matches not sorted: %#v", matches)
		}
	}
	seen := map[int]bool{}
	for _, m := range matches {
		seen[m.Index] = true
	}
	if !seen[1] || !seen[2] {
		t.Fatalf("expected indexes 1 and 2, got %#v", matches)
	}

	all := fm.MatchMultiple("", texts)
	if len(all) != len(texts) || all[0].Index != 0 || all[3].Index != 3 {
		t.Fatalf("empty pattern should keep every text in order, got %#v", all)
	}
}
