// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package org models organizations and their publisher variant.
//
// The two are a closed tagged variant over one document: PUBLISHER adds a
// two-letter region code on top of everything ORGANIZATION carries.
package org

import (
	"strings"
	"time"

	"github.com/taibuivan/citeline/internal/core/locale"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/validate"
	"github.com/taibuivan/citeline/pkg/slug"
)

// Kind discriminates the organization variants.
type Kind string

const (
	KindOrganization Kind = "ORGANIZATION"
	KindPublisher    Kind = "PUBLISHER"
)

// Kinds is the closed set of valid discriminants.
var Kinds = []Kind{KindOrganization, KindPublisher}

// ValidKind reports whether the candidate is a defined organization kind.
func ValidKind(candidate string) bool {
	for _, k := range Kinds {
		if string(k) == candidate {
			return true
		}
	}
	return false
}

// Organization is an identity entity with a unique name. The PUBLISHER
// variant additionally carries a region code.
type Organization struct {
	ID          document.ID
	Kind        Kind
	Name        string
	Slug        string
	Established *locale.Year
	Description string
	Region      string // PUBLISHER only; 2-letter code
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter holds the parameters for a paginated organization search.
type Filter struct {
	Query string // Substring search against name
	Kind  Kind   // Optional variant restriction
}

// Wire keys for the serialized mapping.
const (
	keyOrgID          = "id"
	keyOrgKind        = "kind"
	keyOrgName        = "name"
	keyOrgSlug        = "slug"
	keyOrgEstablished = "established"
	keyOrgDescription = "description"
	keyOrgRegion      = "region"
)

// Global field names for validation
const (
	FieldKind   = "kind"
	FieldName   = "name"
	FieldRegion = "region"
)

// Clean normalizes derived state: defaults the kind, uppercases the region,
// and derives the slug from the name. Idempotent.
func (o *Organization) Clean() {
	if o.Kind == "" {
		o.Kind = KindOrganization
	}

	o.Region = strings.ToUpper(o.Region)

	if o.Name != "" {
		o.Slug = slug.From(o.Name)
	}
}

// Validate enforces the required-field and format invariants, aggregating
// all violations into a single error.
func (o *Organization) Validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldName, o.Name).MaxLen(FieldName, o.Name, 200)
	validator.OneOf(FieldKind, string(o.Kind), string(KindOrganization), string(KindPublisher))

	if o.Kind == KindPublisher {
		validator.Custom(FieldRegion, o.Region != "" && len(o.Region) != 2, "must be a 2-letter region code")
	} else {
		validator.Custom(FieldRegion, o.Region != "", "is only valid for publishers")
	}

	return validator.Err()
}

// Serialize renders the organization as a mapping. The parent variant's keys
// are always present; the PUBLISHER variant merges in its own.
func (o *Organization) Serialize(fields ...string) document.Map {
	out := document.Map{
		keyOrgID:          nil,
		keyOrgKind:        string(o.Kind),
		keyOrgName:        o.Name,
		keyOrgSlug:        o.Slug,
		keyOrgEstablished: nil,
		keyOrgDescription: o.Description,
	}

	if !o.ID.IsZero() {
		out[keyOrgID] = o.ID.String()
	}
	if o.Established != nil {
		out[keyOrgEstablished] = o.Established.Int()
	}

	if o.Kind == KindPublisher {
		out[keyOrgRegion] = o.Region
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the organization from an untrusted mapping.
func (o *Organization) Deserialize(data document.Map) error {
	if id, ok, err := document.GetID(data, keyOrgID); err != nil {
		return err
	} else if ok {
		o.ID = id
	}

	if v, ok, err := document.GetString(data, keyOrgKind); err != nil {
		return err
	} else if ok {
		o.Kind = Kind(v)
	}

	if v, ok, err := document.GetString(data, keyOrgName); err != nil {
		return err
	} else if ok {
		o.Name = v
	}

	if v, ok, err := document.GetString(data, keyOrgSlug); err != nil {
		return err
	} else if ok {
		o.Slug = v
	}

	if v, ok, err := document.GetInt(data, keyOrgEstablished); err != nil {
		return err
	} else if ok {
		year := locale.Year(v)
		o.Established = &year
	}

	if v, ok, err := document.GetString(data, keyOrgDescription); err != nil {
		return err
	} else if ok {
		o.Description = v
	}

	if v, ok, err := document.GetString(data, keyOrgRegion); err != nil {
		return err
	} else if ok {
		o.Region = v
	}

	return nil
}
