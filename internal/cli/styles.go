package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorHeading = "#78DCE8"
	colorLink    = "#AB9DF2"
	colorDim     = "#727072"
	colorTitle   = "#FFD866"
)

// styles are bound to the output writer so color is only emitted for
// terminals.
type styles struct {
	heading lipgloss.Style
	top     lipgloss.Style
	link    lipgloss.Style
	dim     lipgloss.Style
	label   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Foreground(lipgloss.Color(colorHeading)),
		top:     r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorTitle)),
		link:    r.NewStyle().Foreground(lipgloss.Color(colorLink)).Underline(true),
		dim:     r.NewStyle().Foreground(lipgloss.Color(colorDim)),
		label:   r.NewStyle().Bold(true),
	}
}
