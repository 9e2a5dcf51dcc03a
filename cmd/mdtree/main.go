package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdtree/internal/cli"
)

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII text displays correctly
	// on terminals that do not advertise a charset.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
