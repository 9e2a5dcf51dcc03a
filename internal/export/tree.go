// Package export serializes documents to JSON, YAML and HTML.
package export

import (
	"fmt"

	"github.com/kk-code-lab/mdtree/internal/markdown"
)

const (
	nodeHeading   = "heading"
	nodeParagraph = "paragraph"
	nodeText      = "text"
	nodeLink      = "link"
	nodeImage     = "image"
)

// Tree is the serializable form of a document.
type Tree struct {
	Blocks []Node `json:"blocks" yaml:"blocks"`
}

// Node is a block or inline element. Children holds paragraph inlines and
// link labels or image alt text.
type Node struct {
	Type     string  `json:"type" yaml:"type"`
	Level    int     `json:"level,omitempty" yaml:"level,omitempty"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	URL      string  `json:"url,omitempty" yaml:"url,omitempty"`
	Title    *string `json:"title,omitempty" yaml:"title,omitempty"`
	Children []Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewTree converts doc into its serializable form.
func NewTree(doc *markdown.Document) Tree {
	tree := Tree{Blocks: make([]Node, 0, doc.Len())}
	for _, block := range doc.Blocks() {
		switch b := block.(type) {
		case markdown.Heading:
			tree.Blocks = append(tree.Blocks, Node{Type: nodeHeading, Level: b.Level(), Text: b.Text()})
		case markdown.Paragraph:
			tree.Blocks = append(tree.Blocks, Node{Type: nodeParagraph, Children: inlineNodes(b.Inlines())})
		}
	}
	return tree
}

func inlineNodes(inlines []markdown.Inline) []Node {
	nodes := make([]Node, 0, len(inlines))
	for _, inline := range inlines {
		switch n := inline.(type) {
		case markdown.Text:
			nodes = append(nodes, Node{Type: nodeText, Text: n.Value})
		case markdown.Link:
			nodes = append(nodes, Node{Type: nodeLink, URL: n.URL, Title: n.Title, Children: inlineNodes(n.Text)})
		case markdown.Image:
			nodes = append(nodes, Node{Type: nodeImage, URL: n.URL, Title: n.Title, Children: inlineNodes(n.Alt)})
		}
	}
	return nodes
}

// Document rebuilds a document from its serializable form. Heading levels
// are validated the same way the parser validates them.
func (t Tree) Document() (*markdown.Document, error) {
	doc := markdown.NewDocument()
	for idx, node := range t.Blocks {
		switch node.Type {
		case nodeHeading:
			h, err := markdown.NewHeading(node.Level, node.Text)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", idx, err)
			}
			doc.Push(h)
		case nodeParagraph:
			inlines, err := treeInlines(node.Children)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", idx, err)
			}
			doc.Push(markdown.NewParagraphInlines(inlines...))
		default:
			return nil, fmt.Errorf("block %d: unknown block type %q", idx, node.Type)
		}
	}
	return doc, nil
}

func treeInlines(nodes []Node) ([]markdown.Inline, error) {
	inlines := make([]markdown.Inline, 0, len(nodes))
	for _, node := range nodes {
		switch node.Type {
		case nodeText:
			inlines = append(inlines, markdown.Text{Value: node.Text})
		case nodeLink, nodeImage:
			children, err := treeInlines(node.Children)
			if err != nil {
				return nil, err
			}
			if node.Type == nodeLink {
				inlines = append(inlines, markdown.Link{Text: children, URL: node.URL, Title: node.Title})
			} else {
				inlines = append(inlines, markdown.Image{Alt: children, URL: node.URL, Title: node.Title})
			}
		default:
			return nil, fmt.Errorf("unknown inline type %q", node.Type)
		}
	}
	return inlines, nil
}
