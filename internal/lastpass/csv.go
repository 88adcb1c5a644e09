// Package lastpass parses LastPass CSV exports. Credit card, identity,
// and Wi-Fi records arrive as free-text blobs in the extra column, tagged
// with a NoteType marker line and unpacked field by field.
package lastpass

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/credport/credport/internal/entities"
	"github.com/credport/credport/internal/normalize"
)

type csvRow struct {
	URL      string
	Username string
	Password string
	TOTP     string
	Extra    string
	Name     string
	Grouping string
	Fav      string
}

// ParseCSV parses a LastPass export into entries, one per source row, in
// source order.
func ParseCSV(content string) ([]entities.Entry, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err == io.EOF {
		return []entities.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	entries := []entities.Entry{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := csvRow{
			URL:      getCSVValue(record, headerIndex, "url"),
			Username: getCSVValue(record, headerIndex, "username"),
			Password: getCSVValue(record, headerIndex, "password"),
			TOTP:     getCSVValue(record, headerIndex, "totp"),
			Extra:    getRawCSVValue(record, headerIndex, "extra"),
			Name:     getCSVValue(record, headerIndex, "name"),
			Grouping: getCSVValue(record, headerIndex, "grouping"),
			Fav:      getCSVValue(record, headerIndex, "fav"),
		}

		entries = append(entries, convertRow(row))
	}

	return entries, nil
}

// convertRow dispatches on the extra column's embedded type marker. Rows
// without a marker are secure notes when they carry no password, plain
// logins otherwise.
func convertRow(row csvRow) entities.Entry {
	entry := entities.Entry{
		Folder:     entities.FolderPath(row.Grouping),
		IsFavorite: row.Fav == "1",
	}

	switch classifyNote(row.Extra) {
	case noteKindCreditCard:
		entry.Type = entities.EntryTypeCreditCard
		entry.Data = convertCreditCard(row)
	case noteKindAddress:
		entry.Type = entities.EntryTypeIdentity
		entry.Data = convertIdentity(row)
	case noteKindWifi:
		entry.Type = entities.EntryTypeWifiPassword
		entry.Data = convertWifi(row)
	default:
		if row.Password == "" {
			entry.Type = entities.EntryTypeNote
			entry.Data = entities.NoteData{
				Title:        row.Name,
				Note:         row.Extra,
				CustomFields: []entities.CustomField{},
			}
		} else {
			entry.Type = entities.EntryTypeLogin
			entry.Data = convertLogin(row)
		}
	}

	return entry
}

func convertLogin(row csvRow) entities.LoginData {
	data := entities.LoginData{
		Title:        row.Name,
		Username:     row.Username,
		Password:     row.Password,
		Note:         row.Extra,
		Websites:     normalize.Websites(row.URL),
		CustomFields: []entities.CustomField{},
	}
	if row.TOTP != "" {
		data.CustomFields = append(data.CustomFields, entities.NewCustomField("TOTP", row.TOTP))
	}
	return data
}

func convertCreditCard(row csvRow) entities.CreditCardData {
	lines := parseNoteLines(row.Extra)

	name := noteField(lines, "Name on Card")
	number := noteField(lines, "Number")
	securityCode := noteField(lines, "Security Code")
	expiry := noteField(lines, "Expiration Date")
	notes := noteField(lines, "Notes")

	return entities.CreditCardData{
		Title:          row.Name,
		CardholderName: name,
		CardNumber:     number,
		ExpirationDate: normalize.Expiry(expiry),
		SecurityCode:   securityCode,
		Note:           notes,
		CustomFields:   customFields(lines, usedValues(row.Name, name, number, securityCode, expiry, notes)),
	}
}

func convertIdentity(row csvRow) entities.IdentityData {
	lines := parseNoteLines(row.Extra)

	firstName := noteField(lines, "First Name")
	middleName := noteField(lines, "Middle Name")
	lastName := noteField(lines, "Last Name")
	username := noteField(lines, "Username")
	email := noteField(lines, "Email Address")
	phone := noteField(lines, "Phone")
	address1 := noteField(lines, "Address 1")
	address2 := noteField(lines, "Address 2")
	address3 := noteField(lines, "Address 3")
	city := noteField(lines, "City / Town")
	state := noteField(lines, "State")
	zipCode := noteField(lines, "Zip / Postal Code")
	country := noteField(lines, "Country")
	notes := noteField(lines, "Notes")

	used := usedValues(
		row.Name, firstName, middleName, lastName, username, email, phone,
		address1, address2, address3, city, state, zipCode, country, notes,
	)

	return entities.IdentityData{
		Title:        row.Name,
		FullName:     joinNonEmpty(" ", firstName, middleName, lastName),
		Username:     username,
		Email:        email,
		Phone:        normalize.Phone(phone),
		Address:      joinNonEmpty(", ", address1, address2, address3),
		ZipCode:      zipCode,
		City:         city,
		State:        state,
		Country:      country,
		Note:         notes,
		CustomFields: customFields(lines, used),
	}
}

func convertWifi(row csvRow) entities.WifiPasswordData {
	lines := parseNoteLines(row.Extra)

	password := noteField(lines, "Password")
	notes := noteField(lines, "Notes")

	return entities.WifiPasswordData{
		Title:        row.Name,
		Password:     password,
		Note:         notes,
		CustomFields: customFields(lines, usedValues(row.Name, password, notes)),
	}
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func getCSVValue(record []string, headerIndex map[string]int, header string) string {
	if idx, ok := headerIndex[header]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

// getRawCSVValue keeps leading/trailing whitespace; the extra column's
// note blobs are line-structured and must survive intact.
func getRawCSVValue(record []string, headerIndex map[string]int, header string) string {
	if idx, ok := headerIndex[header]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
