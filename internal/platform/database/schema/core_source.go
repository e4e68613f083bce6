// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreSourceTable represents the 'core.source' table
type CoreSourceTable struct {
	Table       string
	ID          string
	Kind        string
	Title       string
	Medium      string
	Description string
	Edition     string
	PublisherID string
	Published   string
	Location    string
	ISBN10      string
	ISBN13      string
	CreatedAt   string
	UpdatedAt   string
}

// CoreSource is the schema definition for core.source
var CoreSource = CoreSourceTable{
	Table:       "core.source",
	ID:          "id",
	Kind:        "kind",
	Title:       "title",
	Medium:      "medium",
	Description: "descr",
	Edition:     "edition",
	PublisherID: "publisherid",
	Published:   "published",
	Location:    "location",
	ISBN10:      "isbn10",
	ISBN13:      "isbn13",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CoreSourceTable) Columns() []string {
	return []string{
		t.ID, t.Kind, t.Title, t.Medium, t.Description, t.Edition,
		t.PublisherID, t.Published, t.Location, t.ISBN10, t.ISBN13,
		t.CreatedAt, t.UpdatedAt,
	}
}

// CoreSourcePersonTable represents the ordered join tables linking a source
// to its contributors ('core.sourceauthor' / 'core.sourceeditor').
type CoreSourcePersonTable struct {
	Table    string
	SourceID string
	PersonID string
	Position string
}

// CoreSourceAuthor is the schema definition for core.sourceauthor
var CoreSourceAuthor = CoreSourcePersonTable{
	Table:    "core.sourceauthor",
	SourceID: "sourceid",
	PersonID: "personid",
	Position: "position",
}

// CoreSourceEditor is the schema definition for core.sourceeditor
var CoreSourceEditor = CoreSourcePersonTable{
	Table:    "core.sourceeditor",
	SourceID: "sourceid",
	PersonID: "personid",
	Position: "position",
}
