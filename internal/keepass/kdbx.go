package keepass

import (
	"bytes"
	"fmt"
	"strings"

	gokeepasslib "github.com/tobischo/gokeepasslib/v3"

	"github.com/credport/credport/internal/entities"
)

// ParseKDBX opens an encrypted KeePass database with the given master
// password and walks the decrypted group tree. Key derivation and
// integrity verification happen inside gokeepasslib; this is the one
// computationally heavy call in an import.
//
// Callers should check decode failures with IsKeyMismatch to distinguish
// a wrong password from a corrupt file.
func ParseKDBX(data []byte, password string) ([]entities.Entry, error) {
	db := gokeepasslib.NewDatabase()
	db.Credentials = gokeepasslib.NewPasswordCredentials(password)

	if err := gokeepasslib.NewDecoder(bytes.NewReader(data)).Decode(db); err != nil {
		return nil, fmt.Errorf("failed to decode database: %w", err)
	}
	if err := db.UnlockProtectedEntries(); err != nil {
		return nil, fmt.Errorf("failed to unlock protected values: %w", err)
	}

	if db.Content == nil || db.Content.Root == nil || len(db.Content.Root.Groups) == 0 {
		return []entities.Entry{}, nil
	}

	entries := []entities.Entry{}
	for _, group := range db.Content.Root.Groups {
		entries = append(entries, walkGroup(kdbxGroupNode{group}, "")...)
	}
	return entries, nil
}

// gokeepasslib signals a key mismatch inconsistently across format
// versions: KDBX 3.1 fails the stream integrity check while KDBX 4 fails
// the header HMAC verification, each with its own message. This shim
// keeps that inconsistency out of the caller's error taxonomy.
var keyMismatchMessages = []string{
	"invalid credentials",
	"wrong password",
	"hmac",
	"integrity check failed",
	"failed to verify",
}

// IsKeyMismatch reports whether a ParseKDBX error means the supplied
// master password was wrong, as opposed to a corrupt or truncated file.
func IsKeyMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range keyMismatchMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// kdbxGroupNode adapts a decrypted database group to the walker interface.
type kdbxGroupNode struct {
	group gokeepasslib.Group
}

func (n kdbxGroupNode) Name() string {
	return n.group.Name
}

func (n kdbxGroupNode) Entries() []Record {
	records := make([]Record, 0, len(n.group.Entries))
	for _, e := range n.group.Entries {
		records = append(records, kdbxRecord{e})
	}
	return records
}

func (n kdbxGroupNode) Groups() []Group {
	groups := make([]Group, 0, len(n.group.Groups))
	for _, g := range n.group.Groups {
		groups = append(groups, kdbxGroupNode{g})
	}
	return groups
}

type kdbxRecord struct {
	entry gokeepasslib.Entry
}

// Fields resolves both plain and protected values uniformly: after
// UnlockProtectedEntries the plaintext lives in Value.Content either way.
func (r kdbxRecord) Fields() []Field {
	fields := make([]Field, 0, len(r.entry.Values))
	for _, v := range r.entry.Values {
		fields = append(fields, Field{Key: v.Key, Value: v.Value.Content})
	}
	return fields
}

// Compile-time interface checks
var (
	_ Group  = kdbxGroupNode{}
	_ Record = kdbxRecord{}
)
