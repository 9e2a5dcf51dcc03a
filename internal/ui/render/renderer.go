package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdtree/internal/format"
	"github.com/kk-code-lab/mdtree/internal/textutil"
)

// View is what the renderer needs to draw one frame of a document.
type View struct {
	Title  string
	Lines  [][]format.StyledTextSegment
	Offset int
}

// Renderer draws formatted documents onto a tcell screen.
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
	}
}

// ContentRows reports how many document lines fit above the status line.
func (r *Renderer) ContentRows() int {
	_, h := r.screen.Size()
	if h <= 1 {
		return 1
	}
	return h - 1
}

// Render draws the visible window of the document and the status line.
func (r *Renderer) Render(view View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	rows := r.ContentRows()

	for row := 0; row < rows && row < h; row++ {
		idx := view.Offset + row
		if idx < 0 || idx >= len(view.Lines) {
			break
		}
		r.drawSegments(0, row, w, view.Lines[idx])
	}

	if h > 1 {
		r.drawStatusLine(view, w, h-1)
	}
	r.screen.Show()
}

func (r *Renderer) drawSegments(startX, y, maxX int, segments []format.StyledTextSegment) int {
	x := startX
	for _, seg := range segments {
		if x >= maxX {
			break
		}
		text := textutil.SanitizeTerminalText(seg.Text)
		x = r.drawTextLine(x, y, maxX-x, text, r.segmentStyle(seg.Style))
	}
	return x
}

func (r *Renderer) segmentStyle(kind format.TextStyleKind) tcell.Style {
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	switch kind {
	case format.TextStyleHeading:
		return base.Foreground(r.theme.HeadingFg).Bold(true)
	case format.TextStyleLink:
		return base.Foreground(r.theme.LinkFg).Underline(true)
	case format.TextStyleImage:
		return base.Foreground(r.theme.ImageFg).Italic(true)
	case format.TextStyleURL:
		return base.Foreground(r.theme.URLFg).Dim(true)
	default:
		return base
	}
}

func (r *Renderer) drawStatusLine(view View, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	position := statusPosition(view.Offset, r.ContentRows(), len(view.Lines))
	posWidth := r.measureTextWidth(position)
	titleWidth := w - posWidth - 2
	title := r.truncateTextToWidth(textutil.SanitizeTerminalText(view.Title), titleWidth)
	r.drawTextLine(0, y, titleWidth, title, style.Bold(true))
	if posWidth < w {
		r.drawTextLine(w-posWidth, y, posWidth, position, style)
	}
}

func statusPosition(offset, rows, total int) string {
	if total == 0 {
		return "empty"
	}
	last := offset + rows
	if last > total {
		last = total
	}
	return fmt.Sprintf("%d-%d/%d", offset+1, last, total)
}
