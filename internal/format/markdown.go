package format

import (
	"strings"

	"github.com/kk-code-lab/mdtree/internal/markdown"
)

// Markdown writes doc back as Markdown source. Headings are written in ATX
// form and blocks are separated by a blank line, so parsing the output of a
// parsed document yields the same blocks.
func Markdown(doc *markdown.Document) string {
	var b strings.Builder
	for idx, block := range doc.Blocks() {
		if idx > 0 {
			b.WriteString("\n\n")
		}
		switch blk := block.(type) {
		case markdown.Heading:
			b.WriteString(strings.Repeat("#", blk.Level()))
			if blk.Text() != "" {
				b.WriteByte(' ')
				b.WriteString(blk.Text())
			}
		case markdown.Paragraph:
			b.WriteString(blk.Literal())
		}
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}
