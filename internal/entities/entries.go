package entities

// EntryType identifies which variant of entry data a record carries.
type EntryType string

const (
	EntryTypeLogin        EntryType = "login"
	EntryTypeCreditCard   EntryType = "creditCard"
	EntryTypeIdentity     EntryType = "identity"
	EntryTypeNote         EntryType = "note"
	EntryTypeWifiPassword EntryType = "wifiPassword"
	EntryTypeCustom       EntryType = "custom" // fallback when no other variant applies
)

// CustomField is a flattened "Label: value" fact attached to an entry.
// Source formats with dozens of optional named fields collapse into this
// uniform list rather than a dedicated type per field name.
type CustomField struct {
	Type string `json:"type"`
	Note string `json:"note"`
}

// NewCustomField formats a labeled value as a note-typed custom field.
func NewCustomField(label, value string) CustomField {
	return CustomField{Type: "note", Note: label + ": " + value}
}

// Entry is one normalized credential record produced by an import.
// Folder is a slash-joined ancestor path, nil when the record sits at the
// hierarchy root. Data holds the variant-specific field set matching Type.
type Entry struct {
	Type       EntryType `json:"type"`
	Folder     *string   `json:"folder"`
	IsFavorite bool      `json:"isFavorite"`
	Data       any       `json:"data"`
}

// FolderPath converts a reconstructed group path into the Folder field
// representation. An empty path means "no folder", not an empty string.
func FolderPath(path string) *string {
	if path == "" {
		return nil
	}
	return &path
}

type LoginData struct {
	Title        string        `json:"title"`
	Username     string        `json:"username"`
	Password     string        `json:"password"`
	Note         string        `json:"note"`
	Websites     []string      `json:"websites"`
	CustomFields []CustomField `json:"customFields"`
}

type CreditCardData struct {
	Title          string        `json:"title"`
	CardholderName string        `json:"cardholderName"`
	CardNumber     string        `json:"cardNumber"`
	ExpirationDate string        `json:"expirationDate"` // normalized to MM/YY when parseable
	SecurityCode   string        `json:"securityCode"`
	PIN            string        `json:"pin"`
	Note           string        `json:"note"`
	CustomFields   []CustomField `json:"customFields"`
}

type IdentityData struct {
	Title        string        `json:"title"`
	FullName     string        `json:"fullName"`
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	ZipCode      string        `json:"zipCode"`
	City         string        `json:"city"`
	State        string        `json:"state"`
	Country      string        `json:"country"`
	Note         string        `json:"note"`
	CustomFields []CustomField `json:"customFields"`
}

type NoteData struct {
	Title        string        `json:"title"`
	Note         string        `json:"note"`
	CustomFields []CustomField `json:"customFields"`
}

type WifiPasswordData struct {
	Title        string        `json:"title"` // network name
	Password     string        `json:"password"`
	Note         string        `json:"note"`
	CustomFields []CustomField `json:"customFields"`
}

type CustomData struct {
	Title        string        `json:"title"`
	CustomFields []CustomField `json:"customFields"`
}
