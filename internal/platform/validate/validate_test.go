// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Citeline", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_DomainRules covers the password, key, ISBN, and group rules.
*/
func TestValidator_DomainRules(t *testing.T) {
	t.Run("password", func(t *testing.T) {
		v := &validate.Validator{}
		v.Password("password", "T3stPa$$word")
		assert.False(t, v.HasErrors())

		v = &validate.Validator{}
		v.Password("password", "weak")
		assert.True(t, v.HasErrors())
	})

	t.Run("key", func(t *testing.T) {
		v := &validate.Validator{}
		v.Key("key", "2107d2510eee901146dad0b54ef67176726a790f68ce240065296b71")
		assert.False(t, v.HasErrors())

		v = &validate.Validator{}
		v.Key("key", "derp")
		assert.True(t, v.HasErrors())
	})

	t.Run("isbn", func(t *testing.T) {
		v := &validate.Validator{}
		v.ISBN10("isbn10", "0985339896").ISBN13("isbn13", "9780985339890")
		assert.False(t, v.HasErrors())

		v = &validate.Validator{}
		v.ISBN10("isbn10", "9780985339890")
		assert.True(t, v.HasErrors(), "an ISBN-13 must not pass the ISBN-10 rule")
	})

	t.Run("group", func(t *testing.T) {
		v := &validate.Validator{}
		v.Group("groups", "staff")
		assert.False(t, v.HasErrors())

		v = &validate.Validator{}
		v.Group("groups", "wizards")
		assert.True(t, v.HasErrors())
	})
}

/*
TestValidator_Aggregation verifies all failures surface in a single error.
*/
func TestValidator_Aggregation(t *testing.T) {
	v := &validate.Validator{}
	v.Required("title", "").Email("email", "nope").Range("published", 3000, 0, 2100)

	err := v.Err()
	require.NotNil(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
