// Package nordpass parses NordPass CSV exports. Every row declares its
// record type in a type column; website lists and custom fields arrive as
// JSON array literals inside single cells.
package nordpass

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/credport/credport/internal/entities"
	"github.com/credport/credport/internal/normalize"
	"github.com/credport/credport/internal/urlx"
)

type csvRow struct {
	Type           string
	Folder         string
	Name           string
	Username       string
	Password       string
	Note           string
	CardholderName string
	CardNumber     string
	CVC            string
	ExpiryDate     string
	PIN            string
	URL            string
	AdditionalURLs string
	CustomFields   string
	FullName       string
	PhoneNumber    string
	Email          string
	Address1       string
	Address2       string
	City           string
	State          string
	Country        string
	ZipCode        string
}

// customFieldLiteral is one element of the custom_fields JSON array.
type customFieldLiteral struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ParseCSV parses a NordPass export into entries, one per source row, in
// source order. Rows of type "folder" only declare folders and produce no
// entry.
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

		row := mapRow(record, headerIndex)
		if strings.EqualFold(row.Type, "folder") {
			continue
		}
		entries = append(entries, convertRow(row))
	}

	return entries, nil
}

func mapRow(record []string, headerIndex map[string]int) csvRow {
	get := func(name string) string {
		if idx, ok := headerIndex[name]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	return csvRow{
		Type:           get("type"),
		Folder:         get("folder"),
		Name:           get("name"),
		Username:       get("username"),
		Password:       get("password"),
		Note:           get("note"),
		CardholderName: get("cardholdername"),
		CardNumber:     get("cardnumber"),
		CVC:            get("cvc"),
		ExpiryDate:     get("expirydate"),
		PIN:            get("pin"),
		URL:            get("url"),
		AdditionalURLs: get("additional_urls"),
		CustomFields:   get("custom_fields"),
		FullName:       get("full_name"),
		PhoneNumber:    get("phone_number"),
		Email:          get("email"),
		Address1:       get("address1"),
		Address2:       get("address2"),
		City:           get("city"),
		State:          get("state"),
		Country:        get("country"),
		ZipCode:        get("zipcode"),
	}
}

func convertRow(row csvRow) entities.Entry {
	entry := entities.Entry{
		Folder: entities.FolderPath(row.Folder),
	}

	switch row.Type {
	case "password":
		entry.Type = entities.EntryTypeLogin
		entry.Data = entities.LoginData{
			Title:        row.Name,
			Username:     row.Username,
			Password:     row.Password,
			Note:         row.Note,
			Websites:     websites(row),
			CustomFields: parseCustomFields(row.CustomFields),
		}
	case "credit_card":
		entry.Type = entities.EntryTypeCreditCard
		entry.Data = entities.CreditCardData{
			Title:          row.Name,
			CardholderName: row.CardholderName,
			CardNumber:     row.CardNumber,
			ExpirationDate: normalize.Expiry(row.ExpiryDate),
			SecurityCode:   row.CVC,
			PIN:            row.PIN,
			Note:           row.Note,
			CustomFields:   parseCustomFields(row.CustomFields),
		}
	case "identity":
		entry.Type = entities.EntryTypeIdentity
		entry.Data = entities.IdentityData{
			Title:        row.Name,
			FullName:     row.FullName,
			Username:     row.Username,
			Email:        row.Email,
			Phone:        normalize.Phone(row.PhoneNumber),
			Address:      joinNonEmpty(", ", row.Address1, row.Address2),
			ZipCode:      row.ZipCode,
			City:         row.City,
			State:        row.State,
			Country:      row.Country,
			Note:         row.Note,
			CustomFields: parseCustomFields(row.CustomFields),
		}
	case "note":
		entry.Type = entities.EntryTypeNote
		entry.Data = entities.NoteData{
			Title:        row.Name,
			Note:         row.Note,
			CustomFields: parseCustomFields(row.CustomFields),
		}
	default:
		entry.Type = entities.EntryTypeCustom
		entry.Data = entities.CustomData{
			Title:        row.Name,
			CustomFields: parseCustomFields(row.CustomFields),
		}
	}

	return entry
}

// websites merges the url column with the additional_urls JSON array
// literal, scheme-qualifying every element.
func websites(row csvRow) []string {
	sites := normalize.Websites(row.URL)

	if row.AdditionalURLs == "" {
		return sites
	}
	var additional []string
	if err := json.Unmarshal([]byte(row.AdditionalURLs), &additional); err != nil {
		// Malformed literal: best effort, keep what the url column gave us.
		return sites
	}
	for _, raw := range additional {
		if site := urlx.WithScheme(raw); site != "" {
			sites = append(sites, site)
		}
	}
	return sites
}

// parseCustomFields decodes the custom_fields JSON array-of-label/value
// literal. A malformed literal degrades to no custom fields.
func parseCustomFields(raw string) []entities.CustomField {
	fields := []entities.CustomField{}
	if raw == "" {
		return fields
	}

	var literals []customFieldLiteral
	if err := json.Unmarshal([]byte(raw), &literals); err != nil {
		return fields
	}
	for _, l := range literals {
		if l.Value == "" {
			continue
		}
		fields = append(fields, entities.NewCustomField(l.Label, l.Value))
	}
	return fields
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
