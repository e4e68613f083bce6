// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// # Opaque Token Keys

// KeyLength is the exact character length of a token key. A SHA-224 digest
// rendered as hex is 56 characters.
const KeyLength = 56

// keyBlacklist is the punctuation set that may never appear in a token key.
const keyBlacklist = "`~!@#$%^&*()+-=[]{};':\"<>,./?\\|"

// NewKey generates an opaque token key: the hex-encoded SHA-224 digest of
// 128 bytes of OS randomness. The key is an identifier, not derived from any
// content or sequence.
func NewKey() string {
	seed := make([]byte, 128)
	if _, err := rand.Read(seed); err != nil {
		// OS entropy failure is an unrecoverable system-level error.
		panic("sec: failed to read random bytes: " + err.Error())
	}

	digest := sha256.Sum224(seed)
	return hex.EncodeToString(digest[:])
}

// ValidateKey reports whether a candidate is a well-formed token key:
//
//   - exactly 56 characters long
//   - no whitespace of any kind
//   - no characters from the fixed punctuation set
func ValidateKey(candidate string) bool {
	if len(candidate) != KeyLength {
		return false
	}

	for _, r := range candidate {
		if unicode.IsSpace(r) || strings.ContainsRune(keyBlacklist, r) {
			return false
		}
	}

	return true
}
