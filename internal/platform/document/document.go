// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package document defines the shared serialization contract implemented by
every Citeline entity and embedded value type.

# Contract

  - Serialize(fields...): render the document as a plain [Map], optionally
    limited to a set of dotted field paths (e.g. "name.full").
  - Deserialize(data): populate the document from an untrusted mapping,
    ignoring unknown keys and erroring only on provided-but-invalid values.
  - Clean(): idempotent normalization of derived state prior to persistence.
  - Validate(): aggregate all field-level invariant violations into one error.

# Namespaces

Wire keys produced by Serialize are one of three naming layers per entity:
Go field names (internal), schema column names (storage, see
platform/database/schema), and the wire keys defined by each entity's own
serialization map. This package only standardizes the wire layer's mechanics.
*/
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/citeline/internal/platform/apperr"
)

// Map is the plain mapping form every document serializes to and
// deserializes from.
type Map map[string]any

// # Identifiers

// ID is a typed weak reference to a persisted entity. It carries no
// ownership; resolution against a store is always an explicit step.
type ID string

// String returns the wire form of the identifier.
func (id ID) String() string { return string(id) }

// IsZero reports whether the reference is unset.
func (id ID) IsZero() bool { return id == "" }

// ParseID validates that a string is a well-formed entity identifier (UUID).
func ParseID(value string) (ID, error) {
	if _, err := uuid.Parse(value); err != nil {
		return "", apperr.ValidationError(fmt.Sprintf("%q is not a valid identifier", value))
	}
	return ID(value), nil
}

// # Interfaces

// Serializable is anything that can render itself as a [Map] limited to an
// optional field selection.
type Serializable interface {
	Serialize(fields ...string) Map
}

// Deserializable is anything that can populate itself from an untrusted
// mapping.
type Deserializable interface {
	Deserialize(data Map) error
}

// Document is the full entity contract: serialization plus lifecycle.
type Document interface {
	Serializable
	Deserializable

	// Clean normalizes derived fields. It is idempotent.
	Clean()

	// Validate enforces required-field and format invariants, returning an
	// aggregated field error when any are violated.
	Validate() error
}

// # Field Selection

// FieldSet is a parsed tree of dotted field paths. A nil FieldSet selects
// everything; a nil subtree selects the whole value under that key.
type FieldSet map[string]FieldSet

// NewFieldSet parses dotted paths ("name.full", "birth") into a [FieldSet].
// An empty path list yields nil, which selects all fields.
func NewFieldSet(paths ...string) FieldSet {
	if len(paths) == 0 {
		return nil
	}

	set := FieldSet{}
	for _, path := range paths {
		node := set
		parts := strings.Split(path, ".")
		for i, part := range parts {
			if part == "" {
				continue
			}

			last := i == len(parts)-1
			sub, seen := node[part]

			// A whole-key selection subsumes any narrower path under it.
			if seen && sub == nil {
				break
			}

			if last {
				node[part] = nil
				break
			}

			if sub == nil {
				sub = FieldSet{}
				node[part] = sub
			}
			node = sub
		}
	}

	return set
}

// Filter returns a copy of m limited to the selected fields, recursing into
// nested maps for dotted paths. A nil selection returns m unchanged.
func Filter(m Map, selection FieldSet) Map {
	if selection == nil {
		return m
	}

	out := Map{}
	for key, sub := range selection {
		value, ok := m[key]
		if !ok {
			continue
		}

		if sub == nil {
			out[key] = value
			continue
		}

		if nested, ok := value.(Map); ok {
			out[key] = Filter(nested, sub)
		} else {
			out[key] = value
		}
	}

	return out
}

// # Tolerant Accessors
//
// Deserialize implementations read incoming mappings through these helpers.
// Absent keys (or explicit nulls) are never an error; present keys with the
// wrong shape are.

// GetString extracts a string value. The boolean reports presence.
func GetString(data Map, key string) (string, bool, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return "", false, nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", false, invalidField(key, "must be a string")
	}
	return s, true, nil
}

// GetInt extracts an integer value, accepting the numeric types JSON
// decoding can produce.
func GetInt(data Map, key string) (int, bool, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return 0, false, nil
	}

	switch n := raw.(type) {
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case float64:
		if n != float64(int(n)) {
			return 0, false, invalidField(key, "must be an integer")
		}
		return int(n), true, nil
	default:
		return 0, false, invalidField(key, "must be an integer")
	}
}

// GetStrings extracts a list of strings, accepting []string or []any.
func GetStrings(data Map, key string) ([]string, bool, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil, false, nil
	}

	switch list := raw.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, true, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false, invalidField(key, "must be a list of strings")
			}
			out = append(out, s)
		}
		return out, true, nil
	default:
		return nil, false, invalidField(key, "must be a list of strings")
	}
}

// GetMap extracts a nested mapping, accepting Map or map[string]any.
func GetMap(data Map, key string) (Map, bool, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil, false, nil
	}

	switch m := raw.(type) {
	case Map:
		return m, true, nil
	case map[string]any:
		return Map(m), true, nil
	default:
		return nil, false, invalidField(key, "must be a mapping")
	}
}

// GetID extracts and validates a single identifier reference.
func GetID(data Map, key string) (ID, bool, error) {
	s, ok, err := GetString(data, key)
	if err != nil || !ok {
		return "", ok, err
	}

	id, err := ParseID(s)
	if err != nil {
		return "", false, invalidField(key, fmt.Sprintf("%q is not a valid identifier", s))
	}
	return id, true, nil
}

// GetIDs extracts and validates a list of identifier references.
func GetIDs(data Map, key string) ([]ID, bool, error) {
	values, ok, err := GetStrings(data, key)
	if err != nil || !ok {
		return nil, ok, err
	}

	ids := make([]ID, 0, len(values))
	for _, v := range values {
		id, err := ParseID(v)
		if err != nil {
			return nil, false, invalidField(key, fmt.Sprintf("%q is not a valid identifier", v))
		}
		ids = append(ids, id)
	}
	return ids, true, nil
}

// GetTime extracts an RFC 3339 timestamp.
func GetTime(data Map, key string) (time.Time, bool, error) {
	s, ok, err := GetString(data, key)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false, invalidField(key, "must be an RFC 3339 timestamp")
	}
	return t, true, nil
}

// # Wire Formatting

// FormatTime renders a timestamp in the wire format used by Serialize.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatTimePtr renders an optional timestamp, mapping nil to nil.
func FormatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return FormatTime(*t)
}

// IDStrings converts a reference list to its wire representation.
func IDStrings(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func invalidField(key, msg string) error {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   key,
		Message: msg,
	})
}
