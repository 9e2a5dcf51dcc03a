package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kk-code-lab/mdtree/internal/fs"
	"github.com/kk-code-lab/mdtree/internal/markdown"
	"github.com/kk-code-lab/mdtree/internal/search"
	"github.com/kk-code-lab/mdtree/internal/textutil"
	"github.com/spf13/cobra"
)

const maxLabelWidth = 40

func writeSummary(w io.Writer, src fs.Source, doc *markdown.Document) error {
	st := newStyles(w)
	paragraphs := doc.Len() - len(doc.Headings())
	rows := []struct {
		label string
		value any
	}{
		{"source", src.Name},
		{"bytes", src.Size},
		{"blocks", doc.Len()},
		{"headings", len(doc.Headings())},
		{"paragraphs", paragraphs},
		{"links", len(doc.Links())},
		{"images", len(doc.Images())},
	}
	for _, row := range rows {
		label := st.label.Render(textutil.PadRight(row.label+":", 12))
		if _, err := fmt.Fprintf(w, "%s%v\n", label, row.value); err != nil {
			return err
		}
	}
	return nil
}

func newOutlineCommand(opts *rootOptions) *cobra.Command {
	var (
		numbered bool
		filter   string
	)
	cmd := &cobra.Command{
		Use:   "outline [FILE]",
		Short: "Print the heading outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			doc, _, err := e.parse(cmd, inputPath(args))
			if err != nil {
				return err
			}
			return writeOutline(cmd.OutOrStdout(), filterOutline(doc.Outline(), filter), numbered)
		},
	}
	cmd.Flags().BoolVarP(&numbered, "numbers", "n", false, "prefix entries with section numbers")
	cmd.Flags().StringVar(&filter, "filter", "", "only show headings fuzzy-matching the query")
	return cmd
}

// filterOutline keeps the entries whose text fuzzy-matches query, in
// document order.
func filterOutline(entries []markdown.OutlineEntry, query string) []markdown.OutlineEntry {
	if query == "" {
		return entries
	}
	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Text
	}
	keep := make(map[int]bool)
	for _, match := range search.NewFuzzyMatcher().MatchMultiple(query, texts) {
		keep[match.Index] = true
	}
	var out []markdown.OutlineEntry
	for i, entry := range entries {
		if keep[i] {
			out = append(out, entry)
		}
	}
	return out
}

func writeOutline(w io.Writer, entries []markdown.OutlineEntry, numbered bool) error {
	st := newStyles(w)
	var counters [6]int
	for _, entry := range entries {
		text := textutil.SanitizeTerminalText(entry.Text)
		if text == "" {
			text = st.dim.Render("(untitled)")
		} else if entry.Level == 1 {
			text = st.top.Render(text)
		} else {
			text = st.heading.Render(text)
		}

		prefix := ""
		if numbered {
			prefix = sectionNumber(&counters, entry.Level) + " "
		}
		indent := strings.Repeat("  ", entry.Level-1)
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, prefix, text); err != nil {
			return err
		}
	}
	return nil
}

// sectionNumber advances the counter for level and returns a dotted number
// such as "2.1". Skipped levels count as zero.
func sectionNumber(counters *[6]int, level int) string {
	counters[level-1]++
	for i := level; i < len(counters); i++ {
		counters[i] = 0
	}
	parts := make([]string, level)
	for i := 0; i < level; i++ {
		parts[i] = fmt.Sprint(counters[i])
	}
	return strings.Join(parts, ".")
}

func newLinksCommand(opts *rootOptions) *cobra.Command {
	var withImages bool
	cmd := &cobra.Command{
		Use:   "links [FILE]",
		Short: "List link destinations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			doc, _, err := e.parse(cmd, inputPath(args))
			if err != nil {
				return err
			}
			return writeLinks(cmd.OutOrStdout(), collectTargets(doc, withImages))
		},
	}
	cmd.Flags().BoolVarP(&withImages, "images", "i", false, "include image sources")
	return cmd
}

type target struct {
	kind  string
	label string
	url   string
	title *string
}

func collectTargets(doc *markdown.Document, withImages bool) []target {
	var out []target
	for _, block := range doc.Blocks() {
		p, ok := block.(markdown.Paragraph)
		if !ok {
			continue
		}
		out = appendTargets(out, p.Inlines(), withImages)
	}
	return out
}

func appendTargets(out []target, inlines []markdown.Inline, withImages bool) []target {
	for _, inline := range inlines {
		switch n := inline.(type) {
		case markdown.Link:
			out = append(out, target{kind: "link", label: markdown.VisibleText(n.Text), url: n.URL, title: n.Title})
			out = appendTargets(out, n.Text, withImages)
		case markdown.Image:
			if withImages {
				out = append(out, target{kind: "image", label: markdown.VisibleText(n.Alt), url: n.URL, title: n.Title})
			}
			out = appendTargets(out, n.Alt, withImages)
		}
	}
	return out
}

func writeLinks(w io.Writer, targets []target) error {
	st := newStyles(w)
	width := 0
	for i := range targets {
		targets[i].label = textutil.Truncate(textutil.SanitizeTerminalText(targets[i].label), maxLabelWidth)
		width = max(width, textutil.DisplayWidth(targets[i].label))
	}

	for _, t := range targets {
		line := fmt.Sprintf("%s  %s  %s",
			st.dim.Render(textutil.PadRight(t.kind, 5)),
			textutil.PadRight(t.label, width),
			st.link.Render(textutil.SanitizeTerminalText(t.url)))
		if t.title != nil {
			line += " " + st.dim.Render(fmt.Sprintf("%q", *t.title))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
