// Package keepass parses KeePass-family exports: the CSV dialects, the
// 2.x XML export, and the encrypted kdbx database.
package keepass

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/credport/credport/internal/entities"
	"github.com/credport/credport/internal/normalize"
)

// rowMapper converts one CSV record into an entry using the header index
// of the detected dialect.
type rowMapper func(record []string, headerIndex map[string]int) entities.Entry

// ParseCSV parses a KeePass CSV export. Two column layouts are recognized
// by inspecting the header row; unrecognized headers fall back to the
// current layout, mapping whatever columns happen to match by name.
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

	// Build header index map
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	mapRow := selectRowMapper(headerIndex)

	entries := []entities.Entry{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		entries = append(entries, mapRow(record, headerIndex))
	}

	return entries, nil
}

// selectRowMapper picks the dialect by header content. KeePassXC-era
// exports carry Title/Username columns; the legacy 1.x layout uses
// Account/Login Name instead.
func selectRowMapper(headerIndex map[string]int) rowMapper {
	_, hasTitle := headerIndex["title"]
	_, hasUsername := headerIndex["username"]
	if hasTitle && hasUsername {
		return mapCurrentRow
	}

	_, hasAccount := headerIndex["account"]
	_, hasLoginName := headerIndex["login name"]
	if hasAccount && hasLoginName {
		return mapLegacyRow
	}

	// Unknown header: map by lowercased column name with missing columns
	// defaulting to empty.
	return mapCurrentRow
}

// mapCurrentRow handles the Group/Title/Username/Password/URL/Notes/TOTP layout.
func mapCurrentRow(record []string, headerIndex map[string]int) entities.Entry {
	data := entities.LoginData{
		Title:        getCSVValue(record, headerIndex, "title"),
		Username:     getCSVValue(record, headerIndex, "username"),
		Password:     getCSVValue(record, headerIndex, "password"),
		Note:         getCSVValue(record, headerIndex, "notes"),
		Websites:     normalize.Websites(getCSVValue(record, headerIndex, "url")),
		CustomFields: []entities.CustomField{},
	}

	if totp := getCSVValue(record, headerIndex, "totp"); totp != "" {
		data.CustomFields = append(data.CustomFields, entities.NewCustomField("TOTP", totp))
	}

	// A literal group name of "Root" is a real folder, kept verbatim.
	group := getCSVValue(record, headerIndex, "group")

	return entities.Entry{
		Type:   entities.EntryTypeLogin,
		Folder: entities.FolderPath(group),
		Data:   data,
	}
}

// mapLegacyRow handles the 1.x Account/Login Name/Password/Web Site/Comments layout.
func mapLegacyRow(record []string, headerIndex map[string]int) entities.Entry {
	data := entities.LoginData{
		Title:        getCSVValue(record, headerIndex, "account"),
		Username:     getCSVValue(record, headerIndex, "login name"),
		Password:     getCSVValue(record, headerIndex, "password"),
		Note:         getCSVValue(record, headerIndex, "comments"),
		Websites:     normalize.Websites(getCSVValue(record, headerIndex, "web site")),
		CustomFields: []entities.CustomField{},
	}

	return entities.Entry{
		Type: entities.EntryTypeLogin,
		Data: data,
	}
}

func getCSVValue(record []string, headerIndex map[string]int, header string) string {
	if idx, ok := headerIndex[header]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
