package markdown

import "strings"

// InlineType identifies the concrete kind of an Inline.
type InlineType int

const (
	InlineText InlineType = iota
	InlineLink
	InlineImage
)

// Inline is a unit of paragraph content: Text, Link or Image.
type Inline interface {
	InlineType() InlineType
	sealedInline()
}

// Text is literal content with no further structure.
type Text struct {
	Value string
}

// Link is `[text](url "title")`. Title is nil when no title was given.
type Link struct {
	Text  []Inline
	URL   string
	Title *string

	scan *scanned
}

// Image is `![alt](url "title")`. Title is nil when no title was given.
type Image struct {
	Alt   []Inline
	URL   string
	Title *string

	scan *scanned
}

func (Text) InlineType() InlineType  { return InlineText }
func (Link) InlineType() InlineType  { return InlineLink }
func (Image) InlineType() InlineType { return InlineImage }

func (Text) sealedInline()  {}
func (Link) sealedInline()  {}
func (Image) sealedInline() {}

// scanned records the source text of a scanned link or image together with
// the fields it produced.
type scanned struct {
	source string
	label  string
	url    string
	title  *string
}

func newScanned(source, label, url string, title *string) *scanned {
	if title != nil {
		t := *title
		title = &t
	}
	return &scanned{source: source, label: label, url: url, title: title}
}

// matches reports whether the fields still hold what was scanned.
func (s *scanned) matches(label []Inline, url string, title *string) bool {
	if s == nil || url != s.url || Literal(label) != s.label {
		return false
	}
	if title == nil || s.title == nil {
		return title == nil && s.title == nil
	}
	return *title == *s.title
}

// Source returns the Markdown the link was scanned from. Links built by hand,
// or whose fields changed after scanning, get a synthesized equivalent.
func (l Link) Source() string {
	if l.scan.matches(l.Text, l.URL, l.Title) {
		return l.scan.source
	}
	return "[" + Literal(l.Text) + "](" + destination(l.URL, l.Title) + ")"
}

// Source returns the Markdown the image was scanned from. Images built by
// hand, or whose fields changed after scanning, get a synthesized equivalent.
func (i Image) Source() string {
	if i.scan.matches(i.Alt, i.URL, i.Title) {
		return i.scan.source
	}
	return "![" + Literal(i.Alt) + "](" + destination(i.URL, i.Title) + ")"
}

func destination(url string, title *string) string {
	if title == nil {
		return url
	}
	return url + ` "` + *title + `"`
}

// Literal concatenates the source text behind inlines. For the output of
// ParseInlines it reproduces the scanned input exactly.
func Literal(inlines []Inline) string {
	var b strings.Builder
	for _, inline := range inlines {
		switch n := inline.(type) {
		case Text:
			b.WriteString(n.Value)
		case Link:
			b.WriteString(n.Source())
		case Image:
			b.WriteString(n.Source())
		}
	}
	return b.String()
}

// VisibleText concatenates the human readable text of inlines: plain text,
// link labels and image alt text.
func VisibleText(inlines []Inline) string {
	var b strings.Builder
	appendVisible(&b, inlines)
	return b.String()
}

func appendVisible(b *strings.Builder, inlines []Inline) {
	for _, inline := range inlines {
		switch n := inline.(type) {
		case Text:
			b.WriteString(n.Value)
		case Link:
			appendVisible(b, n.Text)
		case Image:
			appendVisible(b, n.Alt)
		}
	}
}

// ParseInlines scans paragraph text into text runs, links and images.
// It never fails: any opener that does not complete a link or image is kept
// as text. Delimiters are ASCII, so the scan works on byte offsets and every
// run is a slice of text.
func ParseInlines(text string) []Inline {
	m := matchDelimiters(text)
	var nodes []Inline
	textStart := 0

	flushText := func(end int) {
		if end > textStart {
			nodes = append(nodes, Text{Value: text[textStart:end]})
		}
	}

	i := 0
	for i < len(text) {
		switch text[i] {
		case '!':
			if i+1 < len(text) && text[i+1] == '[' {
				if node, end, ok := m.scanLinkOrImage(text, i, true); ok {
					flushText(i)
					nodes = append(nodes, node)
					i, textStart = end, end
					continue
				}
			}
			i++
		case '[':
			if node, end, ok := m.scanLinkOrImage(text, i, false); ok {
				flushText(i)
				nodes = append(nodes, node)
				i, textStart = end, end
				continue
			}
			i++
		default:
			i = nextOpener(text, i+1)
		}
	}

	flushText(len(text))
	return nodes
}

func nextOpener(text string, from int) int {
	if idx := strings.IndexAny(text[from:], "[!"); idx >= 0 {
		return from + idx
	}
	return len(text)
}

// delimiterMatches maps the offset of every balanced '[' and '(' to the
// offset of its closer.
type delimiterMatches struct {
	bracket map[int]int
	paren   map[int]int
}

// matchDelimiters pairs brackets and parentheses in one pass. The two kinds
// are matched independently; a closer with no open counterpart is ignored.
func matchDelimiters(text string) delimiterMatches {
	m := delimiterMatches{bracket: make(map[int]int), paren: make(map[int]int)}
	var brackets, parens []int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			brackets = append(brackets, i)
		case ']':
			if n := len(brackets); n > 0 {
				m.bracket[brackets[n-1]] = i
				brackets = brackets[:n-1]
			}
		case '(':
			parens = append(parens, i)
		case ')':
			if n := len(parens); n > 0 {
				m.paren[parens[n-1]] = i
				parens = parens[:n-1]
			}
		}
	}
	return m
}

// scanLinkOrImage tries to read a link (or image) starting at start and
// returns it with the offset just past its closing parenthesis.
func (m delimiterMatches) scanLinkOrImage(text string, start int, isImage bool) (Inline, int, bool) {
	open := start
	if isImage {
		open++
	}

	closeLabel, ok := m.bracket[open]
	if !ok || closeLabel+1 >= len(text) || text[closeLabel+1] != '(' {
		return nil, 0, false
	}
	closeDest, ok := m.paren[closeLabel+1]
	if !ok {
		return nil, 0, false
	}

	label := text[open+1 : closeLabel]
	url, title := splitDestination(text[closeLabel+2 : closeDest])
	end := closeDest + 1
	scan := newScanned(text[start:end], label, url, title)

	if isImage {
		return Image{
			Alt:   []Inline{Text{Value: label}},
			URL:   url,
			Title: title,
			scan:  scan,
		}, end, true
	}
	return Link{
		Text:  []Inline{Text{Value: label}},
		URL:   url,
		Title: title,
		scan:  scan,
	}, end, true
}

// splitDestination splits on the first space. The remainder becomes the
// title only when it is wrapped in double quotes; otherwise the whole content
// is the URL.
func splitDestination(raw string) (string, *string) {
	dest := strings.TrimSpace(raw)
	url, rest, found := strings.Cut(dest, " ")
	if !found {
		return dest, nil
	}
	rest = strings.TrimSpace(rest)
	if len(rest) >= 2 && strings.HasPrefix(rest, `"`) && strings.HasSuffix(rest, `"`) {
		title := rest[1 : len(rest)-1]
		return url, &title
	}
	return dest, nil
}
