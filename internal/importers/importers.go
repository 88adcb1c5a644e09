package importers

import (
	"github.com/credport/credport/internal/entities"
	"github.com/credport/credport/internal/keepass"
	"github.com/credport/credport/internal/lastpass"
	"github.com/credport/credport/internal/nordpass"
)

// Format discriminates between the supported source export formats.
type Format string

const (
	FormatKeePassCSV Format = "keepass-csv"
	FormatKeePassXML Format = "keepass-xml"
	FormatKDBX       Format = "kdbx"
	FormatLastPass   Format = "lastpass"
	FormatNordPass   Format = "nordpass"
)

// SupportedFormats returns the allowed format discriminators in a stable order.
func SupportedFormats() []string {
	return []string{
		string(FormatKeePassCSV),
		string(FormatKeePassXML),
		string(FormatKDBX),
		string(FormatLastPass),
		string(FormatNordPass),
	}
}

// Request describes one import: the raw export content, which format it
// claims to be, and, for the encrypted kdbx format only, the master
// password to decrypt it with.
type Request struct {
	Format   Format
	Content  []byte
	Password string
}

// Parse runs the pipeline matching the declared format and returns the
// normalized entries in source order. Empty input yields an empty
// sequence, never an error.
//
// Error taxonomy: *InputError when the kdbx password is missing,
// *UnsupportedFormatError for an unknown discriminator,
// *AuthenticationError for a wrong kdbx password, and *CorruptInputError
// wrapping every other parse or decryption failure.
func Parse(req Request) ([]entities.Entry, error) {
	switch req.Format {
	case FormatKeePassCSV:
		return wrapCorrupt(keepass.ParseCSV(string(req.Content)))

	case FormatKeePassXML:
		return wrapCorrupt(keepass.ParseXML(string(req.Content)))

	case FormatKDBX:
		if req.Password == "" {
			return nil, &InputError{Message: "a password is required to open a kdbx database"}
		}
		entries, err := keepass.ParseKDBX(req.Content, req.Password)
		if err != nil {
			if keepass.IsKeyMismatch(err) {
				return nil, &AuthenticationError{Err: err}
			}
			return nil, &CorruptInputError{Err: err}
		}
		return entries, nil

	case FormatLastPass:
		return wrapCorrupt(lastpass.ParseCSV(string(req.Content)))

	case FormatNordPass:
		return wrapCorrupt(nordpass.ParseCSV(string(req.Content)))

	default:
		return nil, &UnsupportedFormatError{Format: string(req.Format)}
	}
}

func wrapCorrupt(entries []entities.Entry, err error) ([]entities.Entry, error) {
	if err != nil {
		return nil, &CorruptInputError{Err: err}
	}
	return entries, nil
}

// CountByType tallies entries per variant, for audit metadata and import
// summaries.
func CountByType(entries []entities.Entry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[string(e.Type)]++
	}
	return counts
}
