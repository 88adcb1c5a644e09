package importers

import (
	"bytes"
	"errors"
	"testing"

	gokeepasslib "github.com/tobischo/gokeepasslib/v3"

	"github.com/credport/credport/internal/entities"
)

// encodeKDBX builds a minimal encrypted database with one login entry.
func encodeKDBX(t *testing.T, password string) []byte {
	t.Helper()

	entry := gokeepasslib.NewEntry()
	entry.Values = append(entry.Values,
		gokeepasslib.ValueData{Key: "Title", Value: gokeepasslib.V{Content: "Checking"}},
		gokeepasslib.ValueData{Key: "UserName", Value: gokeepasslib.V{Content: "jane"}},
	)

	root := gokeepasslib.NewGroup()
	root.Name = "Root"
	root.Entries = append(root.Entries, entry)

	db := gokeepasslib.NewDatabase(gokeepasslib.WithDatabaseKDBXVersion4())
	db.Credentials = gokeepasslib.NewPasswordCredentials(password)
	db.Content.Root = &gokeepasslib.RootData{Groups: []gokeepasslib.Group{root}}

	if err := db.LockProtectedEntries(); err != nil {
		t.Fatalf("failed to lock protected entries: %v", err)
	}

	var buf bytes.Buffer
	if err := gokeepasslib.NewEncoder(&buf).Encode(db); err != nil {
		t.Fatalf("failed to encode database: %v", err)
	}
	return buf.Bytes()
}

func TestParse_RoutesByFormat(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		count    int
		wantType entities.EntryType
	}{
		{
			name: "keepass csv",
			req: Request{
				Format:  FormatKeePassCSV,
				Content: []byte("Group,Title,Username,Password,URL,Notes,TOTP\n,Example,jane,pw,,,\n"),
			},
			count:    1,
			wantType: entities.EntryTypeLogin,
		},
		{
			name: "keepass xml",
			req: Request{
				Format:  FormatKeePassXML,
				Content: []byte(`<KeePassFile><Root><Group><Name>Root</Name><Entry><String><Key>Title</Key><Value>Example</Value></String></Entry></Group></Root></KeePassFile>`),
			},
			count:    1,
			wantType: entities.EntryTypeLogin,
		},
		{
			name: "lastpass",
			req: Request{
				Format:  FormatLastPass,
				Content: []byte("url,username,password,totp,extra,name,grouping,fav\nbank.com,jane,pw,,,Checking,,0\n"),
			},
			count:    1,
			wantType: entities.EntryTypeLogin,
		},
		{
			name: "nordpass",
			req: Request{
				Format:  FormatNordPass,
				Content: []byte("name,url,username,password,note,folder,type\nGarage,,,,door code,,note\n"),
			},
			count:    1,
			wantType: entities.EntryTypeNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse(tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(entries) != tt.count {
				t.Fatalf("expected %d entries, got %d", tt.count, len(entries))
			}
			if entries[0].Type != tt.wantType {
				t.Errorf("expected %s entry, got %s", tt.wantType, entries[0].Type)
			}
		})
	}
}

func TestParse_KDBX(t *testing.T) {
	data := encodeKDBX(t, "master-password")

	entries, err := Parse(Request{Format: FormatKDBX, Content: data, Password: "master-password"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Folder == nil || *entries[0].Folder != "Root" {
		t.Errorf("expected folder 'Root', got %v", entries[0].Folder)
	}
}

func TestParse_KDBXMissingPassword(t *testing.T) {
	_, err := Parse(Request{Format: FormatKDBX, Content: []byte("irrelevant")})

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %v", err)
	}
}

func TestParse_KDBXWrongPassword(t *testing.T) {
	data := encodeKDBX(t, "master-password")

	_, err := Parse(Request{Format: FormatKDBX, Content: data, Password: "not-the-password"})

	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthenticationError, got %v", err)
	}
	if authErr.Error() != "incorrect password" {
		t.Errorf("unexpected message: %q", authErr.Error())
	}

	var corruptErr *CorruptInputError
	if errors.As(err, &corruptErr) {
		t.Error("wrong password must not classify as corrupt input")
	}
}

func TestParse_KDBXGarbage(t *testing.T) {
	_, err := Parse(Request{Format: FormatKDBX, Content: []byte("not a database"), Password: "pw"})

	var corruptErr *CorruptInputError
	if !errors.As(err, &corruptErr) {
		t.Fatalf("expected *CorruptInputError, got %v", err)
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse(Request{Format: "1password", Content: []byte("x")})

	var unsupportedErr *UnsupportedFormatError
	if !errors.As(err, &unsupportedErr) {
		t.Fatalf("expected *UnsupportedFormatError, got %v", err)
	}
	for _, f := range SupportedFormats() {
		if !bytes.Contains([]byte(err.Error()), []byte(f)) {
			t.Errorf("error message should name %q: %s", f, err.Error())
		}
	}
}

func TestParse_MalformedXMLIsCorrupt(t *testing.T) {
	_, err := Parse(Request{Format: FormatKeePassXML, Content: []byte("<KeePassFile><Root>")})

	var corruptErr *CorruptInputError
	if !errors.As(err, &corruptErr) {
		t.Fatalf("expected *CorruptInputError, got %v", err)
	}
}

func TestParse_EmptyInputYieldsEmptySequence(t *testing.T) {
	for _, format := range []Format{FormatKeePassCSV, FormatLastPass, FormatNordPass} {
		entries, err := Parse(Request{Format: format, Content: nil})
		if err != nil {
			t.Errorf("%s: unexpected error: %v", format, err)
			continue
		}
		if len(entries) != 0 {
			t.Errorf("%s: expected 0 entries, got %d", format, len(entries))
		}
	}
}

func TestCountByType(t *testing.T) {
	entries := []entities.Entry{
		{Type: entities.EntryTypeLogin},
		{Type: entities.EntryTypeLogin},
		{Type: entities.EntryTypeNote},
	}

	counts := CountByType(entries)
	if counts["login"] != 2 || counts["note"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}
