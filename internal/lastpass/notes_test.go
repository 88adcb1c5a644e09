package lastpass

import "testing"

func TestClassifyNote(t *testing.T) {
	tests := []struct {
		blob     string
		expected noteKind
	}{
		{"NoteType:Credit Card\nNumber:4111", noteKindCreditCard},
		{"notetype:credit card\nNumber:4111", noteKindCreditCard},
		{"NoteType:Address\nFirst Name:Jane", noteKindAddress},
		{"NoteType:Wi-Fi Password\nPassword:secret", noteKindWifi},
		{"just some free text", noteKindGeneric},
		{"", noteKindGeneric},
	}

	for _, tt := range tests {
		if got := classifyNote(tt.blob); got != tt.expected {
			t.Errorf("classifyNote(%q) = %v, expected %v", tt.blob, got, tt.expected)
		}
	}
}

func TestNoteField(t *testing.T) {
	lines := parseNoteLines("NoteType:Credit Card\r\nName on Card:Jane Doe\nNumber: 4111 1111\n")

	if got := noteField(lines, "Name on Card"); got != "Jane Doe" {
		t.Errorf("expected 'Jane Doe', got %q", got)
	}
	if got := noteField(lines, "Number"); got != "4111 1111" {
		t.Errorf("expected trimmed '4111 1111', got %q", got)
	}
	if got := noteField(lines, "Missing"); got != "" {
		t.Errorf("expected empty for absent label, got %q", got)
	}
}

func TestCustomFields_DeduplicatesUsedValues(t *testing.T) {
	blob := "Name on Card:Jane Doe\nNumber:4111\nNotes:Jane Doe"
	lines := parseNoteLines(blob)

	fields := customFields(lines, usedValues(
		noteField(lines, "Name on Card"),
		noteField(lines, "Number"),
	))

	// Both the Name on Card line and the Notes line (whose value equals an
	// already-used value) must be excluded; Number is also used.
	if len(fields) != 0 {
		t.Fatalf("expected 0 custom fields, got %v", fields)
	}
}

func TestCustomFields_KeepsUnrelatedLines(t *testing.T) {
	blob := "NoteType:Credit Card\nName on Card:Jane Doe\nIssuing Bank:First National"
	lines := parseNoteLines(blob)

	fields := customFields(lines, usedValues(noteField(lines, "Name on Card")))

	if len(fields) != 1 {
		t.Fatalf("expected 1 custom field, got %v", fields)
	}
	if fields[0].Note != "Issuing Bank: First National" {
		t.Errorf("unexpected custom field: %q", fields[0].Note)
	}
	if fields[0].Type != "note" {
		t.Errorf("expected type 'note', got %q", fields[0].Type)
	}
}

func TestCustomFields_PhoneLabelsRenormalized(t *testing.T) {
	blob := `Mobile Phone:{"num":"5551234567","ext":""}`
	lines := parseNoteLines(blob)

	fields := customFields(lines, usedValues())

	if len(fields) != 1 {
		t.Fatalf("expected 1 custom field, got %v", fields)
	}
	if fields[0].Note != "Mobile Phone: +5551234567" {
		t.Errorf("unexpected custom field: %q", fields[0].Note)
	}
}

func TestCustomFields_ColonlessLineKeptVerbatim(t *testing.T) {
	lines := parseNoteLines("remember to rotate this\nGender:F")

	fields := customFields(lines, usedValues())

	if len(fields) != 2 {
		t.Fatalf("expected 2 custom fields, got %v", fields)
	}
	if fields[0].Note != "remember to rotate this" {
		t.Errorf("unexpected first field: %q", fields[0].Note)
	}
	if fields[1].Note != "Gender: F" {
		t.Errorf("unexpected second field: %q", fields[1].Note)
	}
}

func TestCustomFields_PreservesLineOrder(t *testing.T) {
	blob := "Alpha:1\nBeta:2\nGamma:3"
	lines := parseNoteLines(blob)

	fields := customFields(lines, usedValues())

	want := []string{"Alpha: 1", "Beta: 2", "Gamma: 3"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	for i, w := range want {
		if fields[i].Note != w {
			t.Errorf("field %d: expected %q, got %q", i, w, fields[i].Note)
		}
	}
}

func TestParseNoteLines_AnyLineEnding(t *testing.T) {
	lines := parseNoteLines("A:1\r\nB:2\rC:3\nD:4")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[2].Label != "C" || lines[2].Value != "3" {
		t.Errorf("unexpected third line: %+v", lines[2])
	}
}
