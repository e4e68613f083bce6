// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema defines the storage-name layer for every persisted entity.
//
// Column names deliberately differ from both Go field names and wire keys
// (e.g. the wire field "description" is stored as "desc"); each entity keeps
// the three namespaces consistent through these tables and its own
// serialization map.
package schema

// CorePersonTable represents the 'core.person' table
type CorePersonTable struct {
	Table        string
	ID           string
	NameTitle    string
	NameFirst    string
	NameMiddle   string
	NameLast     string
	NameFull     string
	NamePrefixes string
	NameSuffixes string
	Description  string
	Birth        string
	Death        string
	CreatedAt    string
	UpdatedAt    string
}

// CorePerson is the schema definition for core.person
var CorePerson = CorePersonTable{
	Table:        "core.person",
	ID:           "id",
	NameTitle:    "nametitle",
	NameFirst:    "namefirst",
	NameMiddle:   "namemiddle",
	NameLast:     "namelast",
	NameFull:     "namefull",
	NamePrefixes: "nameprefixes",
	NameSuffixes: "namesuffixes",
	Description:  "descr",
	Birth:        "birth",
	Death:        "death",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t CorePersonTable) Columns() []string {
	return []string{
		t.ID, t.NameTitle, t.NameFirst, t.NameMiddle, t.NameLast, t.NameFull,
		t.NamePrefixes, t.NameSuffixes, t.Description, t.Birth, t.Death,
		t.CreatedAt, t.UpdatedAt,
	}
}
