package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/credport/credport/internal/importers"
)

// FormatsCommand lists the supported import formats.
type FormatsCommand struct{}

func NewFormatsCommand() *FormatsCommand {
	return &FormatsCommand{}
}

func (cmd *FormatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("formats", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s formats\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List the supported password manager export formats.\n")
	}

	return fs.Parse(args)
}

func (cmd *FormatsCommand) Run() error {
	fmt.Println("Supported formats:")
	for _, format := range importers.SupportedFormats() {
		suffix := ""
		if format == string(importers.FormatKDBX) {
			suffix = " (encrypted, requires -password)"
		}
		fmt.Printf("  %s%s\n", format, suffix)
	}
	return nil
}
