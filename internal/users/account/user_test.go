// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/sec"
	"github.com/taibuivan/citeline/internal/users/account"
	"github.com/taibuivan/citeline/pkg/uuidv7"
)

const goodPassword = "D34dSp1d3r$"

func validUser(t *testing.T) *account.User {
	t.Helper()

	u := &account.User{
		ID:    document.ID(uuidv7.New()),
		Email: "test@example.com",
	}
	u.Clean()
	return u
}

/*
TestUser_CheckPassword_Unset verifies that an account without a credential
rejects every candidate without erroring, even malformed ones.
*/
func TestUser_CheckPassword_Unset(t *testing.T) {
	u := validUser(t)

	for _, candidate := range []string{goodPassword, "short", "", "no digits here"} {
		ok, err := u.CheckPassword(candidate)
		assert.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestUser_SetPassword(t *testing.T) {
	u := validUser(t)

	require.NoError(t, u.SetPassword(goodPassword))
	assert.True(t, u.HasPassword())

	ok, err := u.CheckPassword(goodPassword)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUser_SetPassword_Policy(t *testing.T) {
	u := validUser(t)

	rejected := []string{
		"alllowercase1$", // no uppercase
		"ALLUPPERCASE1$", // no lowercase
		"NoDigitsHere$",  // no digit
		"NoSymbolsHere1", // no symbol
		"a1$A",           // too short
	}

	for _, candidate := range rejected {
		err := u.SetPassword(candidate)
		assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"), "expected policy rejection for %q", candidate)
	}
	assert.False(t, u.HasPassword())
}

/*
TestUser_CheckPassword_Set verifies the three outcomes once a credential
exists: match, mismatch, and malformed candidate.
*/
func TestUser_CheckPassword_Set(t *testing.T) {
	u := validUser(t)
	require.NoError(t, u.SetPassword(goodPassword))

	ok, err := u.CheckPassword(goodPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = u.CheckPassword("Wr0ngPassw0rd$")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = u.CheckPassword("bad")
	assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
}

/*
TestUser_Clean verifies the joined timestamp is stamped exactly once.
*/
func TestUser_Clean(t *testing.T) {
	u := &account.User{Email: "test@example.com"}
	assert.True(t, u.Joined.IsZero())

	u.Clean()
	joined := u.Joined
	require.False(t, joined.IsZero())

	u.Clean()
	assert.Equal(t, joined, u.Joined)
}

func TestUser_TouchLogin(t *testing.T) {
	u := validUser(t)
	assert.Nil(t, u.LastLogin)
	assert.Nil(t, u.PrevLogin)

	first := u.TouchLogin()
	require.NotNil(t, u.LastLogin)
	assert.Equal(t, first, *u.LastLogin)
	assert.Nil(t, u.PrevLogin)

	second := u.TouchLogin()
	require.NotNil(t, u.PrevLogin)
	assert.Equal(t, first, *u.PrevLogin)
	assert.Equal(t, second, *u.LastLogin)
}

/*
TestUser_Confirm verifies confirmation grants the default groups and stamps
the confirmation time.
*/
func TestUser_Confirm(t *testing.T) {
	u := validUser(t)
	assert.Nil(t, u.Confirmed)
	assert.Empty(t, u.Groups)

	u.Confirm()

	require.NotNil(t, u.Confirmed)
	assert.Contains(t, u.Groups, sec.GroupUsers)

	// Confirming twice never duplicates the grant.
	u.Confirm()
	assert.Len(t, u.Groups, len(sec.DefaultGroups))
}

func TestUser_Groups(t *testing.T) {
	u := validUser(t)

	require.NoError(t, u.AddGroup(sec.GroupStaff))
	require.NoError(t, u.AddGroup(sec.GroupStaff))
	assert.Equal(t, []sec.Group{sec.GroupStaff}, u.Groups)

	err := u.AddGroup(sec.Group("wizards"))
	assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))

	require.NoError(t, u.RemoveGroup(sec.GroupStaff))
	assert.Empty(t, u.Groups)

	err = u.RemoveGroup(sec.GroupStaff)
	assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *account.User)
		wantErr bool
	}{
		{"valid", func(u *account.User) {}, false},
		{"missing email", func(u *account.User) { u.Email = "" }, true},
		{"malformed email", func(u *account.User) { u.Email = "not-an-email" }, true},
		{"unknown group", func(u *account.User) { u.Groups = []sec.Group{"wizards"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser(t)
			tt.mutate(u)

			err := u.Validate()
			if tt.wantErr {
				assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestUser_Serialize verifies credentials and the confirmation timestamp never
appear on the wire.
*/
func TestUser_Serialize(t *testing.T) {
	u := validUser(t)
	require.NoError(t, u.SetPassword(goodPassword))
	u.Confirm()
	u.TouchLogin()

	out := u.Serialize()

	assert.Equal(t, u.ID.String(), out["id"])
	assert.Equal(t, "test@example.com", out["email"])
	assert.Equal(t, []string{"users"}, out["groups"])
	assert.NotNil(t, out["joined"])
	assert.NotNil(t, out["last_login"])
	assert.Nil(t, out["previous_login"])

	assert.NotContains(t, out, "confirmed")
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "password_hash")
}

func TestUser_SerializeFields(t *testing.T) {
	u := validUser(t)
	out := u.Serialize("id", "email")

	assert.Contains(t, out, "id")
	assert.Contains(t, out, "email")
	assert.NotContains(t, out, "groups")
	assert.NotContains(t, out, "joined")
}

func TestUser_RoundTrip(t *testing.T) {
	u := validUser(t)
	u.Confirm()
	u.TouchLogin()

	restored := &account.User{}
	require.NoError(t, restored.Deserialize(u.Serialize()))

	assert.Equal(t, u.ID, restored.ID)
	assert.Equal(t, u.Email, restored.Email)
	assert.Equal(t, u.Groups, restored.Groups)
	assert.Equal(t, u.Joined.Truncate(time.Millisecond), restored.Joined.Truncate(time.Millisecond))
	require.NotNil(t, restored.LastLogin)

	// The credential never round-trips through the wire form.
	assert.False(t, restored.HasPassword())
}

/*
TestUser_Deserialize_JoinedImmutable verifies a wire payload can never move
an already-stamped joined timestamp.
*/
func TestUser_Deserialize_JoinedImmutable(t *testing.T) {
	u := validUser(t)
	joined := u.Joined

	err := u.Deserialize(document.Map{
		"joined": "1999-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, joined, u.Joined)
}

func TestUser_Deserialize_Tolerant(t *testing.T) {
	u := &account.User{}

	require.NoError(t, u.Deserialize(document.Map{
		"email":   "test@example.com",
		"unknown": "ignored",
	}))
	assert.Equal(t, "test@example.com", u.Email)

	err := u.Deserialize(document.Map{"email": 42})
	assert.Error(t, err)
}
