package keepass

import (
	"encoding/xml"
	"fmt"

	"github.com/credport/credport/internal/entities"
)

// KeePass 2.x XML export structure: a KeePassFile root wrapping nested
// Group elements, each with a Name, Entry elements holding String
// key/value pairs, and further nested groups.
type xmlFile struct {
	Root *xmlRoot `xml:"Root"`
}

type xmlRoot struct {
	Groups []xmlGroup `xml:"Group"`
}

type xmlGroup struct {
	GroupName string     `xml:"Name"`
	Records   []xmlEntry `xml:"Entry"`
	Subgroups []xmlGroup `xml:"Group"`
}

type xmlEntry struct {
	Strings []xmlString `xml:"String"`
}

type xmlString struct {
	Key   string `xml:"Key"`
	Value string `xml:"Value"`
}

// ParseXML parses a KeePass 2.x XML export into entries. A document
// without a root element or root group is treated as a genuinely empty
// export and yields no entries rather than an error.
func ParseXML(content string) ([]entities.Entry, error) {
	var doc xmlFile
	if err := xml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse XML export: %w", err)
	}

	if doc.Root == nil || len(doc.Root.Groups) == 0 {
		return []entities.Entry{}, nil
	}

	entries := []entities.Entry{}
	for _, group := range doc.Root.Groups {
		entries = append(entries, walkGroup(xmlGroupNode{group}, "")...)
	}
	return entries, nil
}

// xmlGroupNode adapts an XML group element to the walker interface.
type xmlGroupNode struct {
	group xmlGroup
}

func (n xmlGroupNode) Name() string {
	return n.group.GroupName
}

func (n xmlGroupNode) Entries() []Record {
	records := make([]Record, 0, len(n.group.Records))
	for _, e := range n.group.Records {
		records = append(records, xmlRecord{e})
	}
	return records
}

func (n xmlGroupNode) Groups() []Group {
	groups := make([]Group, 0, len(n.group.Subgroups))
	for _, g := range n.group.Subgroups {
		groups = append(groups, xmlGroupNode{g})
	}
	return groups
}

type xmlRecord struct {
	entry xmlEntry
}

func (r xmlRecord) Fields() []Field {
	fields := make([]Field, 0, len(r.entry.Strings))
	for _, s := range r.entry.Strings {
		fields = append(fields, Field{Key: s.Key, Value: s.Value})
	}
	return fields
}

// Compile-time interface checks
var (
	_ Group  = xmlGroupNode{}
	_ Record = xmlRecord{}
)
