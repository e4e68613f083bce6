// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements credential verification and opaque token management.

An access token is an opaque random key mapped to a cached snapshot of its
user. The snapshot travels with the token so that verifying a request never
touches the user store: group checks read the cached groups, and the snapshot
is refreshed on login. Tokens live in volatile storage and disappear on
expiry without any cleanup of our own.
*/
package auth

import (
	"time"

	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/sec"
	"github.com/taibuivan/citeline/internal/platform/validate"
)

// # Access Tokens

// CachedUser is the user snapshot embedded in an access token. It is a copy
// taken at login, not a live reference.
type CachedUser struct {
	ID     string
	Groups []sec.Group
}

// AuthToken is an opaque access token with an idle expiry window.
//
// Issued is stamped once when the key is generated. Touched moves forward on
// every normalization and on every verified use, and drives the idle TTL.
type AuthToken struct {
	Key     string
	User    CachedUser
	Issued  time.Time
	Touched time.Time
}

const (
	keyTokenKey     = "key"
	keyTokenUser    = "user"
	keyTokenIssued  = "issued"
	keyTokenTouched = "touched"
)

// Clean generates the key and stamps Issued on first normalization, and
// always re-stamps Touched.
func (t *AuthToken) Clean() {
	now := time.Now().UTC()

	if t.Key == "" {
		t.Key = sec.NewKey()
		t.Issued = now
	}

	t.Touched = now
}

// Touch advances the touched timestamp, restarting the idle window.
func (t *AuthToken) Touch() time.Time {
	now := time.Now().UTC()
	t.Touched = now
	return now
}

// Validate enforces the key shape and the presence of the cached user.
func (t *AuthToken) Validate() error {
	validator := &validate.Validator{}

	validator.Key("key", t.Key)
	validator.Required("user.id", t.User.ID)
	for _, group := range t.User.Groups {
		validator.Group("user.groups", string(group))
	}

	return validator.Err()
}

// Principal returns the identity this token asserts, built entirely from the
// cached snapshot.
func (t *AuthToken) Principal() *sec.Principal {
	return &sec.Principal{
		UserID: t.User.ID,
		Groups: t.User.Groups,
	}
}

// Serialize renders the token as a mapping. The cached user nests under
// "user"; no storage lookups are involved.
func (t *AuthToken) Serialize(fields ...string) document.Map {
	out := document.Map{
		keyTokenKey: t.Key,
		keyTokenUser: document.Map{
			"id":     t.User.ID,
			"groups": sec.Strings(t.User.Groups),
		},
		keyTokenIssued:  nil,
		keyTokenTouched: nil,
	}
	if !t.Issued.IsZero() {
		out[keyTokenIssued] = document.FormatTime(t.Issued)
	}
	if !t.Touched.IsZero() {
		out[keyTokenTouched] = document.FormatTime(t.Touched)
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the token from an untrusted mapping.
func (t *AuthToken) Deserialize(data document.Map) error {
	if v, ok, err := document.GetString(data, keyTokenKey); err != nil {
		return err
	} else if ok {
		t.Key = v
	}

	if user, ok, err := document.GetMap(data, keyTokenUser); err != nil {
		return err
	} else if ok {
		if v, ok, err := document.GetString(user, "id"); err != nil {
			return err
		} else if ok {
			t.User.ID = v
		}

		if values, ok, err := document.GetStrings(user, "groups"); err != nil {
			return err
		} else if ok {
			t.User.Groups = sec.FromStrings(values)
		}
	}

	if v, ok, err := document.GetTime(data, keyTokenIssued); err != nil {
		return err
	} else if ok {
		t.Issued = v
	}

	if v, ok, err := document.GetTime(data, keyTokenTouched); err != nil {
		return err
	} else if ok {
		t.Touched = v
	}

	return nil
}

// # Confirmation Tokens

// ConfirmToken is a single-use account confirmation token with a fixed
// lifetime. Unlike an access token it carries only the target user's ID and
// its expiry is never refreshed.
type ConfirmToken struct {
	Key    string
	UserID document.ID
	Issued time.Time
}

// Clean generates the key and stamps Issued on first normalization only.
// Idempotent.
func (t *ConfirmToken) Clean() {
	if t.Key == "" {
		t.Key = sec.NewKey()
		t.Issued = time.Now().UTC()
	}
}

// Validate enforces the key shape and the target user reference.
func (t *ConfirmToken) Validate() error {
	validator := &validate.Validator{}

	validator.Key("key", t.Key)
	validator.Custom("user_id", t.UserID.IsZero(), "is required")

	return validator.Err()
}

// Serialize renders the confirmation token as a mapping.
func (t *ConfirmToken) Serialize(fields ...string) document.Map {
	out := document.Map{
		keyTokenKey:    t.Key,
		"user_id":      nil,
		keyTokenIssued: nil,
	}
	if !t.UserID.IsZero() {
		out["user_id"] = t.UserID.String()
	}
	if !t.Issued.IsZero() {
		out[keyTokenIssued] = document.FormatTime(t.Issued)
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the confirmation token from an untrusted mapping.
func (t *ConfirmToken) Deserialize(data document.Map) error {
	if v, ok, err := document.GetString(data, keyTokenKey); err != nil {
		return err
	} else if ok {
		t.Key = v
	}

	if id, ok, err := document.GetID(data, "user_id"); err != nil {
		return err
	} else if ok {
		t.UserID = id
	}

	if v, ok, err := document.GetTime(data, keyTokenIssued); err != nil {
		return err
	} else if ok {
		t.Issued = v
	}

	return nil
}
