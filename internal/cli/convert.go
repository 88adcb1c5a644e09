package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/credport/credport/internal/importers"
)

// ConvertCommand parses a password manager export file and writes the
// normalized entries as JSON.
type ConvertCommand struct {
	FilePath   string
	Format     string
	OutputPath string
	Password   string
	Pretty     bool
}

func NewConvertCommand() *ConvertCommand {
	return &ConvertCommand{}
}

func (cmd *ConvertCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the export file (required)")
	fs.StringVar(&cmd.Format, "format", "", "Source format: "+strings.Join(importers.SupportedFormats(), ", ")+" (required)")
	fs.StringVar(&cmd.OutputPath, "output", "", "Write JSON to this file instead of stdout")
	fs.StringVar(&cmd.Password, "password", "", "Master password for kdbx files (prompted interactively if omitted)")
	fs.BoolVar(&cmd.Pretty, "pretty", false, "Indent the JSON output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s convert -file <path> -format <format> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parse a password manager export and print the normalized entries as JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Convert a LastPass export:\n")
		fmt.Fprintf(os.Stderr, "  %s convert -file lastpass_export.csv -format lastpass\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Decrypt and convert a KeePass database (prompts for the password):\n")
		fmt.Fprintf(os.Stderr, "  %s convert -file Passwords.kdbx -format kdbx -pretty\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	if cmd.Format == "" {
		return fmt.Errorf("required flag -format not provided")
	}

	return nil
}

func (cmd *ConvertCommand) Run() error {
	content, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read export file: %w", err)
	}

	password := cmd.Password
	if password == "" && importers.Format(cmd.Format) == importers.FormatKDBX {
		password, err = promptPassword("Master password: ")
		if err != nil {
			return err
		}
	}

	entries, err := importers.Parse(importers.Request{
		Format:   importers.Format(cmd.Format),
		Content:  content,
		Password: password,
	})
	if err != nil {
		return err
	}

	var data []byte
	if cmd.Pretty {
		data, err = json.MarshalIndent(entries, "", "  ")
	} else {
		data, err = json.Marshal(entries)
	}
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	data = append(data, '\n')

	if cmd.OutputPath != "" {
		if err := os.WriteFile(cmd.OutputPath, data, 0o600); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d entries to %s\n", len(entries), cmd.OutputPath)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

// promptPassword reads a password from the terminal without echoing it.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
