package keepass

import (
	"strings"

	"github.com/credport/credport/internal/entities"
	"github.com/credport/credport/internal/normalize"
)

// Group is the minimal capability set the walker needs from a folder-like
// node. Two adapters implement it: one over XML export elements and one
// over the decrypted database's object graph.
type Group interface {
	Name() string
	Entries() []Record
	Groups() []Group
}

// Record exposes an entry's fields in source order, with protected values
// already resolved to plain text by the adapter.
type Record interface {
	Fields() []Field
}

type Field struct {
	Key   string
	Value string
}

// Field names that map onto the structured login schema rather than
// becoming custom fields. Matching is case-insensitive.
var standardFields = map[string]bool{
	"title":    true,
	"username": true,
	"password": true,
	"url":      true,
	"notes":    true,
}

// Field names treated as one-time-password seeds. These get the fixed
// "TOTP" label instead of their source field name.
var totpFields = map[string]bool{
	"otp":       true,
	"totp":      true,
	"totp seed": true,
}

// walkGroup flattens a group subtree into entries, depth-first. Entries
// directly inside a group come before those of its subgroups, and subgroups
// keep their source order. The path accumulates every ancestor name from
// the root down; a root group with an empty name contributes no segment.
func walkGroup(group Group, parentPath string) []entities.Entry {
	path := group.Name()
	if parentPath != "" {
		path = parentPath + "/" + group.Name()
	}

	var result []entities.Entry
	for _, record := range group.Entries() {
		result = append(result, convertRecord(record, path))
	}
	for _, sub := range group.Groups() {
		result = append(result, walkGroup(sub, path)...)
	}
	return result
}

func convertRecord(record Record, path string) entities.Entry {
	data := entities.LoginData{
		Websites:     []string{},
		CustomFields: []entities.CustomField{},
	}

	for _, field := range record.Fields() {
		key := strings.ToLower(field.Key)
		switch {
		case key == "title":
			data.Title = field.Value
		case key == "username":
			data.Username = field.Value
		case key == "password":
			data.Password = field.Value
		case key == "url":
			data.Websites = normalize.Websites(field.Value)
		case key == "notes":
			data.Note = field.Value
		case field.Value == "":
			// non-standard fields with empty values produce nothing
		case totpFields[key]:
			data.CustomFields = append(data.CustomFields, entities.NewCustomField("TOTP", field.Value))
		default:
			data.CustomFields = append(data.CustomFields, entities.NewCustomField(field.Key, field.Value))
		}
	}

	return entities.Entry{
		Type:   entities.EntryTypeLogin,
		Folder: entities.FolderPath(path),
		Data:   data,
	}
}
