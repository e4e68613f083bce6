// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package account models user accounts: identity, group membership,
// lifecycle timestamps, and the bcrypt credential pair.
package account

import (
	"time"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/sec"
	"github.com/taibuivan/citeline/internal/platform/validate"
)

// User is a user account with a unique email.
//
// Joined is stamped exactly once, on the first Clean, and never changes
// after. Confirmed stays nil until the confirmation flow completes. The
// password hash embeds its salt (bcrypt) and is never serialized.
type User struct {
	ID        document.ID
	Email     string
	Groups    []sec.Group
	Joined    time.Time
	Confirmed *time.Time
	LastLogin *time.Time
	PrevLogin *time.Time

	passwordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Wire keys for the serialized mapping. The credential pair and the
// confirmation timestamp are internal state and never appear on the wire.
const (
	keyUserID        = "id"
	keyUserEmail     = "email"
	keyUserGroups    = "groups"
	keyUserJoined    = "joined"
	keyUserLastLogin = "last_login"
	keyUserPrevLogin = "previous_login"
)

// Global field names for validation
const (
	FieldEmail    = "email"
	FieldGroups   = "groups"
	FieldPassword = "password"
)

// # Group Membership

// AddGroup validates the group and appends it, ignoring duplicates.
func (u *User) AddGroup(group sec.Group) error {
	if !sec.ValidGroup(string(group)) {
		return validate.RequiredError(FieldGroups, "unknown group: "+string(group))
	}

	for _, existing := range u.Groups {
		if existing == group {
			return nil
		}
	}

	u.Groups = append(u.Groups, group)
	return nil
}

// RemoveGroup drops the group from the membership list. Removing a group
// the user is not in is a validation error.
func (u *User) RemoveGroup(group sec.Group) error {
	for i, existing := range u.Groups {
		if existing == group {
			u.Groups = append(u.Groups[:i], u.Groups[i+1:]...)
			return nil
		}
	}

	return validate.RequiredError(FieldGroups, "user is not in group: "+string(group))
}

// # Lifecycle

// Confirm grants the default groups and stamps the confirmation time.
func (u *User) Confirm() {
	for _, group := range sec.DefaultGroups {
		_ = u.AddGroup(group)
	}

	now := time.Now().UTC()
	u.Confirmed = &now
}

// TouchLogin rotates the login pair: the previous last-login moves back one
// slot and the current time becomes the last login.
func (u *User) TouchLogin() time.Time {
	u.PrevLogin = u.LastLogin

	now := time.Now().UTC()
	u.LastLogin = &now
	return now
}

// # Credentials

// SetPassword validates the candidate against the password policy, then
// stores a fresh bcrypt hash. The plaintext is discarded immediately.
func (u *User) SetPassword(candidate string) error {
	if !sec.ValidatePassword(candidate) {
		return validate.RequiredError(FieldPassword,
			"must be 8-50 characters with at least one lowercase, uppercase, digit and symbol")
	}

	hash, err := sec.HashPassword(candidate)
	if err != nil {
		return apperr.Internal(err)
	}

	u.passwordHash = hash
	return nil
}

// CheckPassword compares the candidate against the stored hash.
//
// With no password set it returns false and never errors, for any input.
// With a password set, a candidate that fails the password policy is a
// validation error; otherwise the result is the hash comparison.
func (u *User) CheckPassword(candidate string) (bool, error) {
	if u.passwordHash == "" {
		return false, nil
	}

	if !sec.ValidatePassword(candidate) {
		return false, validate.RequiredError(FieldPassword, "is not a well-formed password")
	}

	return sec.CheckPasswordHash(candidate, u.passwordHash), nil
}

// HasPassword reports whether a credential has been set.
func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}

// PasswordHash exposes the stored hash to the persistence layer only.
func (u *User) PasswordHash() string { return u.passwordHash }

// RestorePasswordHash rehydrates the stored hash when loading from storage.
func (u *User) RestorePasswordHash(hash string) { u.passwordHash = hash }

// # Document Contract

// Clean stamps Joined on first normalization only. Idempotent.
func (u *User) Clean() {
	if u.Joined.IsZero() {
		u.Joined = time.Now().UTC()
	}
}

// Validate enforces the email and group invariants, aggregating all
// violations.
func (u *User) Validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldEmail, u.Email).Email(FieldEmail, u.Email)
	for _, group := range u.Groups {
		validator.Group(FieldGroups, string(group))
	}

	return validator.Err()
}

// Serialize renders the account as a mapping. Credentials and the
// confirmation timestamp never leave the entity.
func (u *User) Serialize(fields ...string) document.Map {
	out := document.Map{
		keyUserID:        nil,
		keyUserEmail:     u.Email,
		keyUserGroups:    sec.Strings(u.Groups),
		keyUserJoined:    nil,
		keyUserLastLogin: document.FormatTimePtr(u.LastLogin),
		keyUserPrevLogin: document.FormatTimePtr(u.PrevLogin),
	}
	if !u.ID.IsZero() {
		out[keyUserID] = u.ID.String()
	}
	if !u.Joined.IsZero() {
		out[keyUserJoined] = document.FormatTime(u.Joined)
	}

	return document.Filter(out, document.NewFieldSet(fields...))
}

// Deserialize populates the account from an untrusted mapping. The joined
// timestamp is only ever taken when not already set, preserving the
// set-exactly-once invariant.
func (u *User) Deserialize(data document.Map) error {
	if id, ok, err := document.GetID(data, keyUserID); err != nil {
		return err
	} else if ok {
		u.ID = id
	}

	if v, ok, err := document.GetString(data, keyUserEmail); err != nil {
		return err
	} else if ok {
		u.Email = v
	}

	if values, ok, err := document.GetStrings(data, keyUserGroups); err != nil {
		return err
	} else if ok {
		u.Groups = nil
		for _, value := range values {
			if err := u.AddGroup(sec.Group(value)); err != nil {
				return err
			}
		}
	}

	if v, ok, err := document.GetTime(data, keyUserJoined); err != nil {
		return err
	} else if ok && u.Joined.IsZero() {
		u.Joined = v
	}

	if v, ok, err := document.GetTime(data, keyUserLastLogin); err != nil {
		return err
	} else if ok {
		u.LastLogin = &v
	}

	if v, ok, err := document.GetTime(data, keyUserPrevLogin); err != nil {
		return err
	} else if ok {
		u.PrevLogin = &v
	}

	return nil
}
