package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/credport/credport/internal/auth"
)

// HashPasswordCommand generates the bcrypt hash expected by API_PASSWORD_HASH.
type HashPasswordCommand struct {
	Password string
	Cost     int
}

func NewHashPasswordCommand() *HashPasswordCommand {
	return &HashPasswordCommand{}
}

func (cmd *HashPasswordCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)

	fs.StringVar(&cmd.Password, "password", "", "Password to hash (prompted interactively if omitted)")
	fs.IntVar(&cmd.Cost, "cost", 12, "bcrypt cost factor")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s hash-password [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate a bcrypt hash for the API_PASSWORD_HASH environment variable.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *HashPasswordCommand) Run() error {
	password := cmd.Password
	if password == "" {
		var err error
		password, err = promptPassword("API password: ")
		if err != nil {
			return err
		}

		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	hash, err := auth.HashPassword(password, cmd.Cost)
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
