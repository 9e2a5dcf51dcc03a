package format

import (
	"strings"

	"github.com/kk-code-lab/mdtree/internal/markdown"
	"github.com/kk-code-lab/mdtree/internal/textutil"
)

// Segments renders doc as styled lines. Blocks are separated by an empty
// line; links and images show their destination in parentheses.
func Segments(doc *markdown.Document, tabWidth int) [][]StyledTextSegment {
	var lines [][]StyledTextSegment
	for idx, block := range doc.Blocks() {
		rendered := renderBlockSegments(block, tabWidth)
		if idx > 0 && len(rendered) > 0 && len(lines) > 0 && len(lines[len(lines)-1]) != 0 {
			lines = append(lines, nil)
		}
		lines = append(lines, rendered...)
	}
	return lines
}

// Lines renders doc as plain text lines.
func Lines(doc *markdown.Document, tabWidth int) []string {
	segments := Segments(doc, tabWidth)
	lines := make([]string, len(segments))
	for i, line := range segments {
		lines[i] = JoinSegmentsText(line)
	}
	return lines
}

func renderBlockSegments(block markdown.Block, tabWidth int) [][]StyledTextSegment {
	switch b := block.(type) {
	case markdown.Heading:
		prefix := strings.Repeat("#", b.Level())
		line := []StyledTextSegment{{Text: prefix + " ", Style: TextStyleHeading}}
		if text := flattenLine(b.Text()); text != "" {
			line = append(line, StyledTextSegment{Text: textutil.ExpandTabs(text, tabWidth), Style: TextStyleHeading})
		}
		return [][]StyledTextSegment{line}
	case markdown.Paragraph:
		return renderParagraphSegments(b.Inlines(), tabWidth)
	default:
		return nil
	}
}

type lineBuilder struct {
	tabWidth int
	lines    [][]StyledTextSegment
	current  []StyledTextSegment
	column   int
}

func (lb *lineBuilder) write(text string, style TextStyleKind) {
	for {
		before, after, found := strings.Cut(text, "\n")
		if before != "" {
			expanded, column := textutil.ExpandTabsAt(before, lb.tabWidth, lb.column)
			lb.current = append(lb.current, StyledTextSegment{Text: expanded, Style: style})
			lb.column = column
		}
		if !found {
			return
		}
		lb.flush()
		text = after
	}
}

func (lb *lineBuilder) flush() {
	if lb.current == nil {
		lb.current = []StyledTextSegment{}
	}
	lb.lines = append(lb.lines, lb.current)
	lb.current = nil
	lb.column = 0
}

func renderParagraphSegments(inlines []markdown.Inline, tabWidth int) [][]StyledTextSegment {
	lb := &lineBuilder{tabWidth: tabWidth}
	for _, inline := range inlines {
		switch n := inline.(type) {
		case markdown.Text:
			lb.write(n.Value, TextStylePlain)
		case markdown.Link:
			lb.write(flattenLine(markdown.VisibleText(n.Text)), TextStyleLink)
			writeDestination(lb, n.URL)
		case markdown.Image:
			lb.write(flattenLine(markdown.VisibleText(n.Alt)), TextStyleImage)
			writeDestination(lb, n.URL)
		}
	}
	lb.flush()
	return lb.lines
}

func writeDestination(lb *lineBuilder, url string) {
	if url == "" {
		return
	}
	lb.write(" (", TextStylePlain)
	lb.write(flattenLine(url), TextStyleURL)
	lb.write(")", TextStylePlain)
}

func flattenLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
