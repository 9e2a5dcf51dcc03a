// Package search ranks short texts such as headings against a fuzzy query.
package search

import (
	"slices"
	"unicode"
)

// FuzzyMatch represents a single match result
type FuzzyMatch struct {
	Index int
	Score float64 // 0.0 to 1.0
}

// MatchSpan represents the inclusive [Start, End] range of a match in rune indexes.
type MatchSpan struct {
	Start int
	End   int
}

// FuzzyMatcher performs fuzzy pattern matching.
// Scoring:
//   - Every matched character: +charBonus
//   - Character following a matched one: +consecutiveBonus
//   - Character at a word boundary: +wordBoundaryBonus
//   - Skipped characters inside the match: -gapPenalty each
//   - Pattern found as a substring: +substringBonus
type FuzzyMatcher struct {
	charBonus         float64
	consecutiveBonus  float64
	wordBoundaryBonus float64
	gapPenalty        float64
	substringBonus    float64
}

// NewFuzzyMatcher creates a new fuzzy matcher with default settings
func NewFuzzyMatcher() *FuzzyMatcher {
	return &FuzzyMatcher{
		charBonus:         1.2,
		consecutiveBonus:  1.2,
		wordBoundaryBonus: 0.6,
		gapPenalty:        0.18,
		substringBonus:    1.2,
	}
}

// patternHasUppercase enables smart case: a pattern with an uppercase rune
// matches case-sensitively.
func patternHasUppercase(pattern string) bool {
	for _, r := range pattern {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// Match calculates match score between pattern and text
// Returns:
//   - score: 0.0 if no match, higher for better matches
//   - matched: true if all pattern characters are found in order
func (fm *FuzzyMatcher) Match(pattern, text string) (score float64, matched bool) {
	score, matched, _ = fm.MatchDetailed(pattern, text)
	return score, matched
}

// MatchDetailed is Match that also reports which runes of text matched.
func (fm *FuzzyMatcher) MatchDetailed(pattern, text string) (float64, bool, []MatchSpan) {
	if pattern == "" {
		return 1.0, true, nil
	}
	fold := !patternHasUppercase(pattern)
	patternRunes := foldRunes(pattern, fold)
	textRunes := []rune(text)
	return fm.matchRunes(patternRunes, textRunes, fold)
}

func (fm *FuzzyMatcher) matchRunes(pattern, original []rune, fold bool) (float64, bool, []MatchSpan) {
	text := original
	if fold {
		text = make([]rune, len(original))
		for i, r := range original {
			text[i] = unicode.ToLower(r)
		}
	}

	positions, substring := fm.locate(pattern, text)
	if positions == nil {
		return 0, false, nil
	}

	raw := 0.0
	for i, pos := range positions {
		raw += fm.charBonus
		if i > 0 {
			if gap := pos - positions[i-1] - 1; gap == 0 {
				raw += fm.consecutiveBonus
			} else {
				raw -= fm.gapPenalty * float64(gap)
			}
		}
		if isWordBoundaryRune(original, pos) {
			raw += fm.wordBoundaryBonus
		}
	}
	if substring {
		raw += fm.substringBonus
	}

	best := float64(len(pattern))*(fm.charBonus+fm.consecutiveBonus+fm.wordBoundaryBonus) + fm.substringBonus
	score := raw / best
	if score <= 0 {
		score = 0.01
	}
	if score > 1 {
		score = 1
	}
	return score, true, spansFrom(positions)
}

// locate returns the matched rune positions. A contiguous occurrence is
// preferred, earliest word-boundary occurrence first; otherwise the
// shortest window ending at the first complete in-order match is used.
func (fm *FuzzyMatcher) locate(pattern, text []rune) ([]int, bool) {
	if idx := indexRunesAtBoundary(text, pattern); idx >= 0 {
		positions := make([]int, len(pattern))
		for i := range positions {
			positions[i] = idx + i
		}
		return positions, true
	}

	end := -1
	pi := 0
	for ti := 0; ti < len(text) && pi < len(pattern); ti++ {
		if text[ti] == pattern[pi] {
			pi++
			if pi == len(pattern) {
				end = ti
			}
		}
	}
	if end < 0 {
		return nil, false
	}

	// Walk backwards from end to tighten the window.
	positions := make([]int, len(pattern))
	pi = len(pattern) - 1
	for ti := end; ti >= 0 && pi >= 0; ti-- {
		if text[ti] == pattern[pi] {
			positions[pi] = ti
			pi--
		}
	}
	return positions, false
}

func indexRunesAtBoundary(haystack, needle []rune) int {
	first := -1
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if !slices.Equal(haystack[i:i+len(needle)], needle) {
			continue
		}
		if isWordBoundaryRune(haystack, i) {
			return i
		}
		if first < 0 {
			first = i
		}
	}
	return first
}

func spansFrom(positions []int) []MatchSpan {
	var spans []MatchSpan
	for _, pos := range positions {
		if n := len(spans); n > 0 && spans[n-1].End == pos-1 {
			spans[n-1].End = pos
			continue
		}
		spans = append(spans, MatchSpan{Start: pos, End: pos})
	}
	return spans
}

func foldRunes(s string, fold bool) []rune {
	runes := []rune(s)
	if fold {
		for i, r := range runes {
			runes[i] = unicode.ToLower(r)
		}
	}
	return runes
}

func isWordBoundaryRune(text []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	prev := text[idx-1]
	curr := text[idx]
	switch prev {
	case '/', '\\', '-', '_', ' ', '.', ':':
		return true
	}
	if !unicode.IsLetter(prev) && unicode.IsLetter(curr) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}

// MatchMultiple finds fuzzy matches for a pattern in a list of texts.
// Matches are sorted by score, highest first; equal scores keep input order.
func (fm *FuzzyMatcher) MatchMultiple(pattern string, texts []string) []FuzzyMatch {
	var matches []FuzzyMatch
	for idx, text := range texts {
		if score, matched := fm.Match(pattern, text); matched {
			matches = append(matches, FuzzyMatch{Index: idx, Score: score})
		}
	}

	slices.SortStableFunc(matches, func(a, b FuzzyMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})
	return matches
}
