package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var (
	dumpFormats  = []string{"json", "yaml"}
	inputFormats = []string{"markdown", "json", "yaml"}
)

func newRenderCommand(opts *rootOptions, use, short, formatName string) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   use + " [FILE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(inputFormats, from) {
				return fmt.Errorf("invalid input format %q: must be markdown, json or yaml", from)
			}
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			doc, src, err := e.read(cmd, inputPath(args), from)
			if err != nil {
				return err
			}
			return e.render(cmd.OutOrStdout(), doc, src.Name, formatName)
		},
	}
	cmd.Flags().StringVar(&from, "from", "markdown", "input format (markdown, or a json/yaml tree written by dump)")
	return cmd
}

func newDumpCommand(opts *rootOptions) *cobra.Command {
	var dumpFormat string
	cmd := &cobra.Command{
		Use:   "dump [FILE]",
		Short: "Dump the document tree as JSON or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(dumpFormats, dumpFormat) {
				return fmt.Errorf("invalid dump format %q: must be json or yaml", dumpFormat)
			}
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			doc, src, err := e.parse(cmd, inputPath(args))
			if err != nil {
				return err
			}
			return e.render(cmd.OutOrStdout(), doc, src.Name, dumpFormat)
		},
	}
	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "json", "output format (json or yaml)")
	return cmd
}

func newParseCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Parse the document and print a summary",
		Long: `Parse the document and print block and inline counts.

A heading with more than six '#' characters fails the parse and is
reported with its line number.`,
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
			return writeSummary(cmd.OutOrStdout(), src, doc)
		},
	}
}
