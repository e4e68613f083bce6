// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreOrganizationTable represents the 'core.organization' table
type CoreOrganizationTable struct {
	Table       string
	ID          string
	Kind        string
	Name        string
	Slug        string
	Established string
	Description string
	Region      string
	CreatedAt   string
	UpdatedAt   string
}

// CoreOrganization is the schema definition for core.organization
var CoreOrganization = CoreOrganizationTable{
	Table:       "core.organization",
	ID:          "id",
	Kind:        "kind",
	Name:        "name",
	Slug:        "slug",
	Established: "established",
	Description: "descr",
	Region:      "region",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t CoreOrganizationTable) Columns() []string {
	return []string{
		t.ID, t.Kind, t.Name, t.Slug, t.Established, t.Description, t.Region,
		t.CreatedAt, t.UpdatedAt,
	}
}
