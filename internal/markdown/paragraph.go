package markdown

// Paragraph is a run of inline elements. It holds at least one inline.
type Paragraph struct {
	inlines []Inline
}

// NewParagraph treats the whole text as a single Text inline.
func NewParagraph(text string) Paragraph {
	return Paragraph{inlines: []Inline{Text{Value: text}}}
}

// ParseParagraph scans raw paragraph text for links and images.
func ParseParagraph(raw string) Paragraph {
	return NewParagraphInlines(ParseInlines(raw)...)
}

// NewParagraphInlines builds a paragraph from explicit inlines. An empty list
// becomes a single empty Text.
func NewParagraphInlines(inlines ...Inline) Paragraph {
	if len(inlines) == 0 {
		return NewParagraph("")
	}
	return Paragraph{inlines: append([]Inline(nil), inlines...)}
}

// Inlines returns the paragraph content. The slice must not be modified.
func (p Paragraph) Inlines() []Inline {
	if len(p.inlines) == 0 {
		return []Inline{Text{}}
	}
	return p.inlines
}

// VisibleText concatenates plain text, link labels and image alt text.
func (p Paragraph) VisibleText() string {
	return VisibleText(p.Inlines())
}

// Literal returns the Markdown source of the paragraph content.
func (p Paragraph) Literal() string {
	return Literal(p.Inlines())
}
