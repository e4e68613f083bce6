// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package locale

import (
	"fmt"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/pkg/isbn"
)

// ISBN holds the pair of optional normalized ISBN strings attached to a
// book source. Hyphens are stripped on assignment.
//
// Setting a 10-digit number does not derive the 13-digit form, and vice
// versa. Each field is only ever populated by explicit input.
type ISBN struct {
	ISBN10 string
	ISBN13 string
}

// Wire keys for the serialized mapping.
const (
	keyISBN10 = "isbn10"
	keyISBN13 = "isbn13"
)

// Set validates the candidate and stores it in the field matching its
// length. An empty candidate clears both fields.
func (i *ISBN) Set(candidate string) error {
	if candidate == "" {
		i.ISBN10 = ""
		i.ISBN13 = ""
		return nil
	}

	normalized, ok := isbn.Validate(candidate)
	if !ok {
		return apperr.ValidationError(fmt.Sprintf("%q is not a valid ISBN", candidate))
	}

	if len(normalized) == 10 {
		i.ISBN10 = normalized
	} else {
		i.ISBN13 = normalized
	}
	return nil
}

// IsZero reports whether neither field is set.
func (i ISBN) IsZero() bool {
	return i.ISBN10 == "" && i.ISBN13 == ""
}

// Serialize renders the pair as a mapping, using nil for unset fields.
func (i ISBN) Serialize(fields ...string) document.Map {
	out := document.Map{
		keyISBN10: nil,
		keyISBN13: nil,
	}
	if i.ISBN10 != "" {
		out[keyISBN10] = i.ISBN10
	}
	if i.ISBN13 != "" {
		out[keyISBN13] = i.ISBN13
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the pair from an untrusted mapping. Each provided
// value is validated independently; absent keys leave the field untouched.
func (i *ISBN) Deserialize(data document.Map) error {
	if value, ok, err := document.GetString(data, keyISBN10); err != nil {
		return err
	} else if ok {
		if err := i.Set(value); err != nil {
			return err
		}
	}

	if value, ok, err := document.GetString(data, keyISBN13); err != nil {
		return err
	} else if ok {
		if err := i.Set(value); err != nil {
			return err
		}
	}

	return nil
}
