// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package source models cited sources as a closed tagged variant chain:
// SOURCE → TEXT → BOOK. Each variant only adds fields; its serialization
// merges the parent variant's mapping and never removes a key.
package source

import (
	"time"

	"github.com/taibuivan/citeline/internal/core/locale"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/validate"
)

// Kind discriminates the source variants.
type Kind string

const (
	KindSource Kind = "SOURCE"
	KindText   Kind = "TEXT"
	KindBook   Kind = "BOOK"
)

// Medium is the publication medium of a source.
type Medium string

const (
	MediumPrint Medium = "PRINT"
	MediumWeb   Medium = "WEB"
)

// ValidKind reports whether the candidate is a defined source kind.
func ValidKind(candidate string) bool {
	switch Kind(candidate) {
	case KindSource, KindText, KindBook:
		return true
	}
	return false
}

// isText reports whether the kind carries the TEXT-level fields.
func (k Kind) isText() bool { return k == KindText || k == KindBook }

// Source is a cited source of any type.
//
// TEXT adds ordered author/editor references (at least one author is
// required); BOOK further adds publishing metadata and the ISBN pair.
// References are weak: always stored and serialized as identifiers, resolved
// explicitly by the service layer.
type Source struct {
	ID          document.ID
	Kind        Kind
	Title       string
	Medium      Medium
	Description string

	// TEXT
	Authors []document.ID
	Editors []document.ID

	// BOOK
	Edition   string
	Publisher document.ID
	Published *locale.Year
	Location  string
	ISBN      locale.ISBN

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter holds the parameters for a paginated source search.
type Filter struct {
	Query string // Substring search against title
	Kind  Kind   // Optional variant restriction
}

// Wire keys for the serialized mapping.
const (
	keySourceID          = "id"
	keySourceKind        = "kind"
	keySourceTitle       = "title"
	keySourceMedium      = "medium"
	keySourceDescription = "description"
	keySourceAuthors     = "authors"
	keySourceEditors     = "editors"
	keySourceEdition     = "edition"
	keySourcePublisher   = "publisher"
	keySourcePublished   = "published"
	keySourceLocation    = "location"
)

// Global field names for validation
const (
	FieldKind    = "kind"
	FieldTitle   = "title"
	FieldMedium  = "medium"
	FieldAuthors = "authors"
)

// Clean defaults the discriminant and the medium. Idempotent.
func (s *Source) Clean() {
	if s.Kind == "" {
		s.Kind = KindSource
	}
	if s.Medium == "" {
		s.Medium = MediumPrint
	}
}

// Validate enforces the per-variant invariants, aggregating all violations.
func (s *Source) Validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, s.Title).MaxLen(FieldTitle, s.Title, 500)
	validator.OneOf(FieldKind, string(s.Kind), string(KindSource), string(KindText), string(KindBook))
	validator.OneOf(FieldMedium, string(s.Medium), string(MediumPrint), string(MediumWeb))

	if s.Kind.isText() {
		validator.Custom(FieldAuthors, len(s.Authors) == 0, "must contain at least one author")
	}

	return validator.Err()
}

// Serialize renders the source as a mapping. Each variant includes 100% of
// the parent variant's keys plus its own; references collapse to identifier
// strings, never inlined documents.
func (s *Source) Serialize(fields ...string) document.Map {
	out := document.Map{
		keySourceID:          nil,
		keySourceKind:        string(s.Kind),
		keySourceTitle:       s.Title,
		keySourceMedium:      string(s.Medium),
		keySourceDescription: s.Description,
	}
	if !s.ID.IsZero() {
		out[keySourceID] = s.ID.String()
	}

	if s.Kind.isText() {
		out[keySourceAuthors] = document.IDStrings(s.Authors)
		out[keySourceEditors] = document.IDStrings(s.Editors)
	}

	if s.Kind == KindBook {
		out[keySourceEdition] = s.Edition
		out[keySourcePublisher] = nil
		out[keySourcePublished] = nil
		out[keySourceLocation] = s.Location

		if !s.Publisher.IsZero() {
			out[keySourcePublisher] = s.Publisher.String()
		}
		if s.Published != nil {
			out[keySourcePublished] = s.Published.Int()
		}

		// The ISBN pair merges at the top level of the mapping.
		for key, value := range s.ISBN.Serialize() {
			out[key] = value
		}
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the source from an untrusted mapping. Reference
// fields are taken as validated identifiers only; existence resolution is
// the service layer's explicit step.
func (s *Source) Deserialize(data document.Map) error {
	if id, ok, err := document.GetID(data, keySourceID); err != nil {
		return err
	} else if ok {
		s.ID = id
	}

	if v, ok, err := document.GetString(data, keySourceKind); err != nil {
		return err
	} else if ok {
		s.Kind = Kind(v)
	}

	if v, ok, err := document.GetString(data, keySourceTitle); err != nil {
		return err
	} else if ok {
		s.Title = v
	}

	if v, ok, err := document.GetString(data, keySourceMedium); err != nil {
		return err
	} else if ok {
		s.Medium = Medium(v)
	}

	if v, ok, err := document.GetString(data, keySourceDescription); err != nil {
		return err
	} else if ok {
		s.Description = v
	}

	if ids, ok, err := document.GetIDs(data, keySourceAuthors); err != nil {
		return err
	} else if ok {
		s.Authors = ids
	}

	if ids, ok, err := document.GetIDs(data, keySourceEditors); err != nil {
		return err
	} else if ok {
		s.Editors = ids
	}

	if v, ok, err := document.GetString(data, keySourceEdition); err != nil {
		return err
	} else if ok {
		s.Edition = v
	}

	if id, ok, err := document.GetID(data, keySourcePublisher); err != nil {
		return err
	} else if ok {
		s.Publisher = id
	}

	if v, ok, err := document.GetInt(data, keySourcePublished); err != nil {
		return err
	} else if ok {
		year := locale.Year(v)
		s.Published = &year
	}

	if v, ok, err := document.GetString(data, keySourceLocation); err != nil {
		return err
	} else if ok {
		s.Location = v
	}

	return s.ISBN.Deserialize(data)
}
