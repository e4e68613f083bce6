// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package citation models citations from specific sources as a closed
// tagged variant chain: CITATION → TEXT → BOOK.
package citation

import (
	"time"

	"github.com/taibuivan/citeline/internal/core/locale"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/validate"
)

// Kind discriminates the citation variants.
type Kind string

const (
	KindCitation Kind = "CITATION"
	KindText     Kind = "TEXT"
	KindBook     Kind = "BOOK"
)

// ValidKind reports whether the candidate is a defined citation kind.
func ValidKind(candidate string) bool {
	switch Kind(candidate) {
	case KindCitation, KindText, KindBook:
		return true
	}
	return false
}

// isText reports whether the kind carries the TEXT-level fields.
func (k Kind) isText() bool { return k == KindText || k == KindBook }

// Citation is a citation from a specific source. The source reference is
// required and always weak.
//
// TEXT adds the quoted excerpt; BOOK further adds the embedded page range.
type Citation struct {
	ID     document.ID
	Kind   Kind
	Source document.ID
	Note   string

	// TEXT
	Text string

	// BOOK
	Pages locale.PageRange

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter holds the parameters for a paginated citation search.
type Filter struct {
	Source document.ID // Optional restriction to one source
	Kind   Kind        // Optional variant restriction
}

// Wire keys for the serialized mapping.
const (
	keyCitationID     = "id"
	keyCitationKind   = "kind"
	keyCitationSource = "source"
	keyCitationNote   = "note"
	keyCitationText   = "text"
	keyCitationPages  = "pages"
)

// Global field names for validation
const (
	FieldKind   = "kind"
	FieldSource = "source"
)

// Clean defaults the discriminant. Idempotent.
func (c *Citation) Clean() {
	if c.Kind == "" {
		c.Kind = KindCitation
	}
}

// Validate enforces the per-variant invariants, aggregating all violations.
func (c *Citation) Validate() error {
	validator := &validate.Validator{}

	validator.OneOf(FieldKind, string(c.Kind), string(KindCitation), string(KindText), string(KindBook))
	validator.Custom(FieldSource, c.Source.IsZero(), "is required")

	return validator.Err()
}

// Serialize renders the citation as a mapping. Each variant includes 100% of
// the parent variant's keys plus its own; the source reference collapses to
// an identifier string.
func (c *Citation) Serialize(fields ...string) document.Map {
	out := document.Map{
		keyCitationID:     nil,
		keyCitationKind:   string(c.Kind),
		keyCitationSource: nil,
		keyCitationNote:   c.Note,
	}
	if !c.ID.IsZero() {
		out[keyCitationID] = c.ID.String()
	}
	if !c.Source.IsZero() {
		out[keyCitationSource] = c.Source.String()
	}

	if c.Kind.isText() {
		out[keyCitationText] = c.Text
	}

	if c.Kind == KindBook {
		out[keyCitationPages] = c.Pages.Serialize()
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the citation from an untrusted mapping.
func (c *Citation) Deserialize(data document.Map) error {
	if id, ok, err := document.GetID(data, keyCitationID); err != nil {
		return err
	} else if ok {
		c.ID = id
	}

	if v, ok, err := document.GetString(data, keyCitationKind); err != nil {
		return err
	} else if ok {
		c.Kind = Kind(v)
	}

	if id, ok, err := document.GetID(data, keyCitationSource); err != nil {
		return err
	} else if ok {
		c.Source = id
	}

	if v, ok, err := document.GetString(data, keyCitationNote); err != nil {
		return err
	} else if ok {
		c.Note = v
	}

	if v, ok, err := document.GetString(data, keyCitationText); err != nil {
		return err
	} else if ok {
		c.Text = v
	}

	if nested, ok, err := document.GetMap(data, keyCitationPages); err != nil {
		return err
	} else if ok {
		if err := c.Pages.Deserialize(nested); err != nil {
			return err
		}
	}

	return nil
}
