// Package markdown turns Markdown text into a small document tree made of
// ATX headings and paragraphs whose text may carry links and images.
package markdown

// BlockType identifies the concrete kind of a Block.
type BlockType int

const (
	BlockParagraph BlockType = iota
	BlockHeading
)

func (t BlockType) String() string {
	switch t {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Block is a top-level element of a Document. Heading and Paragraph are the
// only implementations.
type Block interface {
	BlockType() BlockType
	sealedBlock()
}

func (Heading) BlockType() BlockType   { return BlockHeading }
func (Paragraph) BlockType() BlockType { return BlockParagraph }

func (Heading) sealedBlock()   {}
func (Paragraph) sealedBlock() {}

// Document is an ordered sequence of blocks in reading order.
type Document struct {
	blocks []Block
}

func NewDocument() *Document {
	return &Document{}
}

// Blocks returns the blocks in reading order. The slice must not be modified.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// Push appends a block to the end of the document.
func (d *Document) Push(block Block) {
	d.blocks = append(d.blocks, block)
}

// Get returns the block at index i. It panics when i is out of range.
func (d *Document) Get(i int) Block {
	return d.blocks[i]
}

func (d *Document) Len() int {
	return len(d.blocks)
}

func (d *Document) IsEmpty() bool {
	return len(d.blocks) == 0
}
