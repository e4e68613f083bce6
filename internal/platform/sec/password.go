// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "strings"

// # Password Policy

const (
	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength = 8

	// PasswordMaxLength is the maximum accepted password length.
	PasswordMaxLength = 50
)

// passwordSymbols is the fixed punctuation set from which at least one
// character is required.
const passwordSymbols = "`~!@#$%^&*()_+-=[]{};':\"<>,./?\\|"

// ValidatePassword reports whether a candidate password satisfies the policy:
//
//   - 8-50 characters long
//   - at least one lower-case letter
//   - at least one upper-case letter
//   - at least one digit
//   - at least one symbol from the fixed punctuation set
func ValidatePassword(candidate string) bool {
	if len(candidate) < PasswordMinLength || len(candidate) > PasswordMaxLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}
