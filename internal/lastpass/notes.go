package lastpass

import (
	"regexp"
	"strings"

	"github.com/credport/credport/internal/entities"
	"github.com/credport/credport/internal/normalize"
)

// noteKind is the record type embedded in an extra-column blob via a
// "NoteType:<Kind>" marker line.
type noteKind int

const (
	noteKindGeneric noteKind = iota
	noteKindCreditCard
	noteKindAddress
	noteKindWifi
)

// Handles all line-ending styles seen in exports.
var lineBreakPattern = regexp.MustCompile(`\r\n|\r|\n`)

// Labels whose values are phone numbers and get re-normalized before
// formatting as custom fields.
var phoneLabels = map[string]bool{
	"phone":         true,
	"evening phone": true,
	"mobile phone":  true,
	"fax":           true,
}

// noteLine is one colon-delimited pseudo-field of a free-text blob.
// Lines without a colon keep an empty label and carry the whole line as
// their value.
type noteLine struct {
	Raw   string
	Label string
	Value string
}

func parseNoteLines(blob string) []noteLine {
	var lines []noteLine
	for _, raw := range lineBreakPattern.Split(blob, -1) {
		if raw == "" {
			continue
		}
		idx := strings.Index(raw, ":")
		if idx < 0 {
			lines = append(lines, noteLine{Raw: raw, Value: strings.TrimSpace(raw)})
			continue
		}
		lines = append(lines, noteLine{
			Raw:   raw,
			Label: raw[:idx],
			Value: strings.TrimSpace(raw[idx+1:]),
		})
	}
	return lines
}

// classifyNote inspects a blob for one of the known type markers.
func classifyNote(blob string) noteKind {
	lowered := strings.ToLower(blob)
	switch {
	case strings.Contains(lowered, "notetype:credit card"):
		return noteKindCreditCard
	case strings.Contains(lowered, "notetype:address"):
		return noteKindAddress
	case strings.Contains(lowered, "notetype:wi-fi password"):
		return noteKindWifi
	default:
		return noteKindGeneric
	}
}

// noteField returns the value of the first line carrying the given label,
// or empty when absent.
func noteField(lines []noteLine, label string) string {
	for _, line := range lines {
		if strings.EqualFold(line.Label, label) {
			return line.Value
		}
	}
	return ""
}

// usedValues builds the deduplication set from values already surfaced
// through structured fields. Deduplication is by value, not by label.
func usedValues(values ...string) map[string]bool {
	used := make(map[string]bool, len(values))
	for _, v := range values {
		if v != "" {
			used[v] = true
		}
	}
	return used
}

// customFields converts the blob lines not captured as structured fields
// into custom fields, preserving line order. The type-marker line and any
// line whose value duplicates an already-used value are discarded, so the
// same piece of information never appears twice on one entry.
func customFields(lines []noteLine, used map[string]bool) []entities.CustomField {
	fields := []entities.CustomField{}
	for _, line := range lines {
		if strings.EqualFold(line.Label, "NoteType") {
			continue
		}
		if used[line.Value] {
			continue
		}
		switch {
		case line.Label == "":
			fields = append(fields, entities.CustomField{Type: "note", Note: line.Raw})
		case phoneLabels[strings.ToLower(line.Label)]:
			fields = append(fields, entities.NewCustomField(line.Label, normalize.Phone(line.Value)))
		default:
			fields = append(fields, entities.NewCustomField(line.Label, line.Value))
		}
	}
	return fields
}
