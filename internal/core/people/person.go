// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package people

import (
	"time"

	"github.com/taibuivan/citeline/internal/core/locale"
	"github.com/taibuivan/citeline/internal/platform/document"
)

// Person is a known person (typically an author, researcher or editor).
// The embedded Name is required; birth and death are nullable years.
type Person struct {
	ID          document.ID
	Name        Name
	Description string
	Birth       *locale.Year
	Death       *locale.Year
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter holds the parameters for a paginated person search.
type Filter struct {
	Query string // Substring search against the stored full name
}

// Wire keys for the serialized mapping.
const (
	keyPersonID          = "id"
	keyPersonName        = "name"
	keyPersonDescription = "description"
	keyPersonBirth       = "birth"
	keyPersonDeath       = "death"
)

// Global field names for validation
const (
	FieldName        = "name"
	FieldNameLast    = "name.last"
	FieldDescription = "description"
)

// Clean reconciles the embedded name. Idempotent.
func (p *Person) Clean() {
	p.Name.Clean()
}

// Validate enforces the embedded name's invariants.
func (p *Person) Validate() error {
	return p.Name.Validate()
}

// Serialize renders the person as a mapping. Dotted field paths select into
// the embedded name (e.g. "name.full").
func (p *Person) Serialize(fields ...string) document.Map {
	out := document.Map{
		keyPersonID:          idOrNil(p.ID),
		keyPersonName:        p.Name.Serialize(),
		keyPersonDescription: p.Description,
		keyPersonBirth:       yearOrNil(p.Birth),
		keyPersonDeath:       yearOrNil(p.Death),
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the person from an untrusted mapping. Unknown keys
// are ignored; provided-but-invalid values error.
func (p *Person) Deserialize(data document.Map) error {
	if id, ok, err := document.GetID(data, keyPersonID); err != nil {
		return err
	} else if ok {
		p.ID = id
	}

	if nested, ok, err := document.GetMap(data, keyPersonName); err != nil {
		return err
	} else if ok {
		if err := p.Name.Deserialize(nested); err != nil {
			return err
		}
	}

	if v, ok, err := document.GetString(data, keyPersonDescription); err != nil {
		return err
	} else if ok {
		p.Description = v
	}

	if v, ok, err := document.GetInt(data, keyPersonBirth); err != nil {
		return err
	} else if ok {
		year := locale.Year(v)
		p.Birth = &year
	}

	if v, ok, err := document.GetInt(data, keyPersonDeath); err != nil {
		return err
	} else if ok {
		year := locale.Year(v)
		p.Death = &year
	}

	return nil
}

// idOrNil renders an identifier reference, mapping unset to nil.
func idOrNil(id document.ID) any {
	if id.IsZero() {
		return nil
	}
	return id.String()
}

// yearOrNil renders a nullable year as its bare integer wire form.
func yearOrNil(y *locale.Year) any {
	if y == nil {
		return nil
	}
	return y.Int()
}
