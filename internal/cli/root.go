// Package cli wires the mdtree commands together.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kk-code-lab/mdtree/internal/config"
	"github.com/kk-code-lab/mdtree/internal/export"
	"github.com/kk-code-lab/mdtree/internal/format"
	"github.com/kk-code-lab/mdtree/internal/fs"
	"github.com/kk-code-lab/mdtree/internal/logger"
	"github.com/kk-code-lab/mdtree/internal/markdown"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgFile string
	verbose bool
}

// env is the per-invocation state shared by all commands.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

// NewRootCommand builds the mdtree command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "mdtree [FILE]",
		Short: "Parse Markdown headings, paragraphs, links and images",
		Long: `mdtree parses a small Markdown subset (ATX headings, paragraphs,
inline links and images) into a document tree and renders it.

Without a subcommand the document is rendered in the configured format
(text, markdown, json, yaml or html). FILE defaults to standard input;
"-" selects it explicitly.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			doc, src, err := e.parse(cmd, inputPath(args))
			if err != nil {
				return err
			}
			return e.render(cmd.OutOrStdout(), doc, src.Name, e.cfg.Format)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/mdtree/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newParseCommand(opts),
		newRenderCommand(opts, "text", "Render the document as plain text", "text"),
		newRenderCommand(opts, "fmt", "Rewrite the document as canonical Markdown", "markdown"),
		newRenderCommand(opts, "html", "Render the document as HTML", "html"),
		newDumpCommand(opts),
		newOutlineCommand(opts),
		newLinksCommand(opts),
		newViewCommand(opts),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return fs.StdinName
	}
	return args[0]
}

func setup(cmd *cobra.Command, opts *rootOptions) (*env, error) {
	path := opts.cfgFile
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	lg, err := logger.NewFromConfig(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		lg.SetLevel(log.DebugLevel)
	}
	lg = lg.WithRun()
	lg.ConfigLoaded(path, cfg.Format)

	return &env{cfg: cfg, log: lg}, nil
}

func (e *env) load(cmd *cobra.Command, path string) (fs.Source, error) {
	src, err := fs.Load(path, fs.LoadOptions{
		MaxBytes:  e.cfg.MaxBytes,
		Normalize: e.cfg.Normalize,
		Stdin:     cmd.InOrStdin(),
	})
	if err != nil {
		e.log.LoadFailed(path, err)
		return fs.Source{}, err
	}
	return src, nil
}

// read loads a document either as Markdown or as a tree written by dump.
func (e *env) read(cmd *cobra.Command, path, from string) (*markdown.Document, fs.Source, error) {
	var decode func(io.Reader) (*markdown.Document, error)
	switch from {
	case "json":
		decode = export.ReadJSON
	case "yaml":
		decode = export.ReadYAML
	default:
		return e.parse(cmd, path)
	}

	src, err := e.load(cmd, path)
	if err != nil {
		return nil, fs.Source{}, err
	}
	doc, err := decode(strings.NewReader(src.Text))
	if err != nil {
		return nil, src, fmt.Errorf("%s: %w", src.Name, err)
	}
	e.log.TreeDecoded(src.Name, from, doc.Len())
	return doc, src, nil
}

func (e *env) parse(cmd *cobra.Command, path string) (*markdown.Document, fs.Source, error) {
	src, err := e.load(cmd, path)
	if err != nil {
		return nil, fs.Source{}, err
	}

	e.log.ParseStarted(src.Name, src.Size)
	start := time.Now()
	doc, err := markdown.Parse(src.Text)
	if err != nil {
		var perr *markdown.ParseError
		if errors.As(err, &perr) {
			e.log.ParseFailed(src.Name, perr.Line, perr.Column, err)
		}
		return nil, src, fmt.Errorf("%s: %w", src.Name, err)
	}
	e.log.ParseCompleted(src.Name, doc.Len(), time.Since(start))
	return doc, src, nil
}

// countingWriter counts bytes for the render log entry.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

func (e *env) render(w io.Writer, doc *markdown.Document, source, name string) error {
	cw := &countingWriter{w: w}
	var err error
	switch name {
	case "text":
		err = writeLines(cw, format.Lines(doc, e.cfg.TabWidth))
	case "markdown":
		_, err = io.WriteString(cw, format.Markdown(doc))
	case "json":
		err = export.JSON(cw, doc)
	case "yaml":
		err = export.YAML(cw, doc)
	case "html":
		err = export.HTML(cw, doc)
	default:
		return fmt.Errorf("unknown format %q", name)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	e.log.Rendered(source, name, cw.n)
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
