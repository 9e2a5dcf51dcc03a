package cli

import (
	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/mdtree/internal/app"
	"github.com/kk-code-lab/mdtree/internal/format"
	renderui "github.com/kk-code-lab/mdtree/internal/ui/render"
	"github.com/spf13/cobra"
)

// newScreen is swapped in tests for a simulation screen.
var newScreen = apppkg.NewScreen

func newViewCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view [FILE]",
		Short: "Page through the rendered document",
		Long: `Open the rendered document in an interactive pager.

Keys: j/k or arrows scroll, space/b page, d/u half page, g/G top and
bottom, n/p jump between headings, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			doc, src, err := e.parse(cmd, inputPath(args))
			if err != nil {
				return err
			}

			screen, err := newScreen()
			if err != nil {
				return err
			}
			return runViewer(screen, src.Name, format.Segments(doc, e.cfg.TabWidth), e.cfg.Theme)
		},
	}
}

func runViewer(screen tcell.Screen, title string, lines [][]format.StyledTextSegment, theme string) error {
	app := apppkg.NewApplication(screen, title, lines, renderui.GetColorTheme(theme))
	defer func() {
		_ = app.Close()
	}()
	app.Run()
	return nil
}
