package importers

import (
	"fmt"
	"strings"
)

// InputError means the caller's request was incomplete before any parsing
// began, e.g. a missing password for an encrypted format.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// UnsupportedFormatError means the format discriminator is not one of the
// supported set.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (supported: %s)", e.Format, strings.Join(SupportedFormats(), ", "))
}

// AuthenticationError means the supplied decryption password was wrong.
// It is kept distinct from CorruptInputError so callers can re-prompt
// instead of reporting corruption.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return "incorrect password"
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// CorruptInputError wraps any decryption or parse failure that is not an
// authentication problem.
type CorruptInputError struct {
	Err error
}

func (e *CorruptInputError) Error() string {
	return "corrupt or unreadable export: " + e.Err.Error()
}

func (e *CorruptInputError) Unwrap() error {
	return e.Err
}
