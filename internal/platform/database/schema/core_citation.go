// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreCitationTable represents the 'core.citation' table
type CoreCitationTable struct {
	Table      string
	ID         string
	Kind       string
	SourceID   string
	Note       string
	Text       string
	PagesStart string
	PagesEnd   string
	CreatedAt  string
	UpdatedAt  string
}

// CoreCitation is the schema definition for core.citation
var CoreCitation = CoreCitationTable{
	Table:      "core.citation",
	ID:         "id",
	Kind:       "kind",
	SourceID:   "sourceid",
	Note:       "note",
	Text:       "quotedtext",
	PagesStart: "pagesstart",
	PagesEnd:   "pagesend",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// Columns returns all standard column names
func (t CoreCitationTable) Columns() []string {
	return []string{
		t.ID, t.Kind, t.SourceID, t.Note, t.Text, t.PagesStart, t.PagesEnd,
		t.CreatedAt, t.UpdatedAt,
	}
}
