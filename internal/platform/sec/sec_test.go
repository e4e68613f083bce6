// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/platform/sec"
)

/*
TestValidatePassword tests the password strength policy.
*/
func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid_password", "T3stPa$$word", true},
		{"valid_minimum", "aB3$efgh", true},
		{"too_short", "aB3$efg", false},
		{"too_long", "aB3$" + strings.Repeat("x", 47), false},
		{"missing_lower", "AB3$EFGH", false},
		{"missing_upper", "ab3$efgh", false},
		{"missing_digit", "abC$efgh", false},
		{"missing_symbol", "abC3efgh", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, sec.ValidatePassword(tt.password))
		})
	}
}

/*
TestNewKey verifies generated token keys satisfy their own validator.
*/
func TestNewKey(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 16; i++ {
		key := sec.NewKey()
		require.Len(t, key, sec.KeyLength)
		assert.True(t, sec.ValidateKey(key), "generated key must validate: %s", key)
		assert.False(t, seen[key], "keys must not repeat")
		seen[key] = true
	}
}

/*
TestValidateKey tests the token key shape rules.
*/
func TestValidateKey(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		valid bool
	}{
		{"valid_key", "2107d2510eee901146dad0b54ef67176726a790f68ce240065296b71", true},
		{"too_short", "derp", false},
		{"too_long", strings.Repeat("a", 57), false},
		{"contains_space", "2107d2510eee901146dad0b54ef67176726a790f68ce24006529 b71", false},
		{"contains_newline", "2107d2510eee901146dad0b54ef67176726a790f68ce24006529\nb71", false},
		{"contains_symbol", "2107d2510eee901146dad0b54ef67176726a790f68ce24006529!b71", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, sec.ValidateKey(tt.key))
		})
	}
}

/*
TestHashPassword covers the bcrypt round trip.
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("T3stPa$$word")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasswordHash("T3stPa$$word", hash))
	assert.False(t, sec.CheckPasswordHash("Wr0ngPa$$word", hash))
	assert.False(t, sec.CheckPasswordHash("T3stPa$$word", ""))
}

/*
TestGroupHierarchy checks group membership and privilege ordering.
*/
func TestGroupHierarchy(t *testing.T) {
	assert.True(t, sec.ValidGroup("users"))
	assert.True(t, sec.ValidGroup("staff"))
	assert.True(t, sec.ValidGroup("admin"))
	assert.False(t, sec.ValidGroup("wizards"))
	assert.False(t, sec.ValidGroup(""))

	assert.True(t, sec.GroupAdmin.AtLeast(sec.GroupUsers))
	assert.True(t, sec.GroupStaff.AtLeast(sec.GroupUsers))
	assert.False(t, sec.GroupUsers.AtLeast(sec.GroupStaff))

	principal := &sec.Principal{UserID: "u1", Groups: []sec.Group{sec.GroupStaff}}
	assert.True(t, principal.In(sec.GroupUsers))
	assert.True(t, principal.In(sec.GroupStaff))
	assert.False(t, principal.In(sec.GroupAdmin))

	var anonymous *sec.Principal
	assert.False(t, anonymous.In(sec.GroupUsers))
}
