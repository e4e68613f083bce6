// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package isbn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/citeline/pkg/isbn"
)

/*
TestValidate tests hyphen stripping, length dispatch, and both checksums.
*/
func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		normalized string
		valid      bool
	}{
		{"valid_isbn10", "0985339896", "0985339896", true},
		{"valid_isbn10_hyphenated", "0-9853398-9-6", "0985339896", true},
		{"valid_isbn10_x_check", "080442957X", "080442957X", true},
		{"valid_isbn10_x_check_hyphenated", "0-8044-2957-X", "080442957X", true},
		{"valid_isbn13", "9780985339890", "9780985339890", true},
		{"valid_isbn13_hyphenated", "978-0-9853398-9-0", "9780985339890", true},
		{"invalid_isbn10_checksum", "0985339897", "", false},
		{"invalid_isbn13_checksum", "9780985339891", "", false},
		{"wrong_length", "12345", "", false},
		{"non_numeric", "derpderpde", "", false},
		{"x_not_last", "08044X957X", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, ok := isbn.Validate(tt.candidate)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.normalized, normalized)
		})
	}
}

func TestIsValid10(t *testing.T) {
	assert.True(t, isbn.IsValid10("0985339896"))
	assert.False(t, isbn.IsValid10("9780985339890"), "a valid ISBN-13 is not an ISBN-10")
	assert.False(t, isbn.IsValid10("0985339897"))
}

func TestIsValid13(t *testing.T) {
	assert.True(t, isbn.IsValid13("9780985339890"))
	assert.False(t, isbn.IsValid13("0985339896"), "a valid ISBN-10 is not an ISBN-13")
	assert.False(t, isbn.IsValid13("9780985339891"))
}
