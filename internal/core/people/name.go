// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package people models known persons (typically authors, researchers or
// editors) and the embedded Name value type they own.
package people

import (
	"strings"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/validate"
)

// # Vocabularies
//
// Recognized honorifics. Loaded once at process start and never mutated.

// KnownPrefixes are the honorific tokens extracted from the head or body of
// a full name string.
var KnownPrefixes = []string{"Dr.", "Mr.", "Ms.", "Mrs.", "Miss", "Sir"}

// KnownSuffixes are the generational and title tokens extracted from the
// tail or body of a full name string.
var KnownSuffixes = []string{"Jr.", "Sr.", "I", "II", "III", "IV", "V"}

var (
	prefixSet = toSet(KnownPrefixes)
	suffixSet = toSet(KnownSuffixes)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Name is a person's full name, decomposed into recognized honorifics and
// positional parts. Last is always required.
type Name struct {
	// Title is the stable display key for the person.
	Title    string
	First    string
	Middle   string
	Last     string
	Prefixes []string
	Suffixes []string
}

// Wire keys for the serialized mapping.
const (
	keyNameTitle    = "title"
	keyNameFirst    = "first"
	keyNameMiddle   = "middle"
	keyNameLast     = "last"
	keyNameFull     = "full"
	keyNamePrefixes = "prefixes"
	keyNameSuffixes = "suffixes"
)

// Full reconstructs the display name by joining prefixes, first, middle,
// last and suffixes with spaces, omitting absent parts.
func (n Name) Full() string {
	chunks := []string{
		strings.Join(n.Prefixes, " "),
		n.First,
		n.Middle,
		n.Last,
		strings.Join(n.Suffixes, " "),
	}

	present := chunks[:0]
	for _, c := range chunks {
		if c != "" {
			present = append(present, c)
		}
	}
	return strings.Join(present, " ")
}

// SetFull parses a whitespace-separated name string into its parts.
//
// Tokens matching the known prefix or suffix vocabularies are extracted
// wherever they appear, preserving order. The remaining tokens distribute
// positionally: a single token becomes the last name only; two tokens become
// first and last; three or more become first, space-joined middle, and last.
func (n *Name) SetFull(value string) error {
	tokens := strings.Fields(value)

	var prefixes, suffixes, names []string
	for _, token := range tokens {
		if _, ok := prefixSet[token]; ok {
			prefixes = append(prefixes, token)
		} else if _, ok := suffixSet[token]; ok {
			suffixes = append(suffixes, token)
		} else {
			names = append(names, token)
		}
	}

	if len(names) == 0 {
		return apperr.ValidationError("name must contain at least one non-honorific token")
	}

	n.Prefixes = prefixes
	n.Suffixes = suffixes

	switch len(names) {
	case 1:
		n.First = ""
		n.Middle = ""
		n.Last = names[0]
	case 2:
		n.First = names[0]
		n.Middle = ""
		n.Last = names[1]
	default:
		n.First = names[0]
		n.Middle = strings.Join(names[1:len(names)-1], " ")
		n.Last = names[len(names)-1]
	}

	return nil
}

// Clean reconciles the title and the derived full name: when exactly one of
// the two is set, it seeds the other. Idempotent.
func (n *Name) Clean() {
	full := n.Full()

	if n.Title != "" && full == "" {
		// Best-effort seeding; an unparseable title is caught by Validate.
		_ = n.SetFull(n.Title)
	} else if full != "" && n.Title == "" {
		n.Title = full
	}
}

// Validate enforces the required-last invariant.
func (n Name) Validate() error {
	if n.Last == "" {
		return validate.RequiredError(keyNameLast, "last name is required")
	}
	return nil
}

// Serialize renders the name as a mapping, including the derived full form.
func (n Name) Serialize(fields ...string) document.Map {
	out := document.Map{
		keyNameTitle:    n.Title,
		keyNameFirst:    n.First,
		keyNameMiddle:   n.Middle,
		keyNameLast:     n.Last,
		keyNameFull:     n.Full(),
		keyNamePrefixes: append([]string{}, n.Prefixes...),
		keyNameSuffixes: append([]string{}, n.Suffixes...),
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the name from an untrusted mapping. Individual parts
// are applied first; a provided "full" key re-parses and overrides them.
func (n *Name) Deserialize(data document.Map) error {
	if v, ok, err := document.GetString(data, keyNameTitle); err != nil {
		return err
	} else if ok {
		n.Title = v
	}

	if v, ok, err := document.GetString(data, keyNameFirst); err != nil {
		return err
	} else if ok {
		n.First = v
	}

	if v, ok, err := document.GetString(data, keyNameMiddle); err != nil {
		return err
	} else if ok {
		n.Middle = v
	}

	if v, ok, err := document.GetString(data, keyNameLast); err != nil {
		return err
	} else if ok {
		n.Last = v
	}

	if v, ok, err := document.GetStrings(data, keyNamePrefixes); err != nil {
		return err
	} else if ok {
		n.Prefixes = v
	}

	if v, ok, err := document.GetStrings(data, keyNameSuffixes); err != nil {
		return err
	} else if ok {
		n.Suffixes = v
	}

	if v, ok, err := document.GetString(data, keyNameFull); err != nil {
		return err
	} else if ok && v != "" {
		return n.SetFull(v)
	}

	return nil
}
