package markdown

// OutlineEntry is a heading together with its position in the document.
type OutlineEntry struct {
	Index int
	Level int
	Text  string
}

// Headings returns every heading in reading order.
func (d *Document) Headings() []Heading {
	var out []Heading
	for _, block := range d.blocks {
		if h, ok := block.(Heading); ok {
			out = append(out, h)
		}
	}
	return out
}

// Outline lists the headings with the index of the block they occupy.
func (d *Document) Outline() []OutlineEntry {
	var out []OutlineEntry
	for idx, block := range d.blocks {
		if h, ok := block.(Heading); ok {
			out = append(out, OutlineEntry{Index: idx, Level: h.level, Text: h.text})
		}
	}
	return out
}

// Links returns every link in reading order, including links nested in
// labels of other links or images.
func (d *Document) Links() []Link {
	var out []Link
	d.walkInlines(func(inline Inline) {
		if l, ok := inline.(Link); ok {
			out = append(out, l)
		}
	})
	return out
}

// Images returns every image in reading order.
func (d *Document) Images() []Image {
	var out []Image
	d.walkInlines(func(inline Inline) {
		if img, ok := inline.(Image); ok {
			out = append(out, img)
		}
	})
	return out
}

func (d *Document) walkInlines(fn func(Inline)) {
	for _, block := range d.blocks {
		if p, ok := block.(Paragraph); ok {
			walkInlines(p.Inlines(), fn)
		}
	}
}

func walkInlines(inlines []Inline, fn func(Inline)) {
	for _, inline := range inlines {
		fn(inline)
		switch n := inline.(type) {
		case Link:
			walkInlines(n.Text, fn)
		case Image:
			walkInlines(n.Alt, fn)
		}
	}
}
