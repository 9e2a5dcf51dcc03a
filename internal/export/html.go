package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kk-code-lab/mdtree/internal/markdown"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes doc as an HTML fragment, one block element per line.
func HTML(w io.Writer, doc *markdown.Document) error {
	for _, block := range doc.Blocks() {
		if err := html.Render(w, blockNode(block)); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func blockNode(block markdown.Block) *html.Node {
	switch b := block.(type) {
	case markdown.Heading:
		n := element("h"+strconv.Itoa(b.Level()), nil)
		n.AppendChild(textNode(b.Text()))
		return n
	case markdown.Paragraph:
		n := element("p", nil)
		appendInlines(n, b.Inlines())
		return n
	default:
		return textNode("")
	}
}

func appendInlines(parent *html.Node, inlines []markdown.Inline) {
	for _, inline := range inlines {
		switch n := inline.(type) {
		case markdown.Text:
			parent.AppendChild(textNode(n.Value))
		case markdown.Link:
			a := element("a", withTitle([]html.Attribute{{Key: "href", Val: n.URL}}, n.Title))
			appendInlines(a, n.Text)
			parent.AppendChild(a)
		case markdown.Image:
			attrs := []html.Attribute{
				{Key: "src", Val: n.URL},
				{Key: "alt", Val: markdown.VisibleText(n.Alt)},
			}
			parent.AppendChild(element("img", withTitle(attrs, n.Title)))
		}
	}
}

func withTitle(attrs []html.Attribute, title *string) []html.Attribute {
	if title == nil {
		return attrs
	}
	return append(attrs, html.Attribute{Key: "title", Val: *title})
}

func element(tag string, attrs []html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
