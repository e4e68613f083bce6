// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package isbn validates International Standard Book Numbers.
//
// # Overview
//
// Both ISBN-10 and ISBN-13 are supported. Input may be hyphenated; the
// normalized (hyphen-stripped) form is what validation operates on and what
// callers should persist. All functions are pure.
package isbn

import "strings"

// Validate strips hyphens from the candidate, detects ISBN-10 vs ISBN-13 by
// length, and checks the corresponding checksum.
//
// It returns the normalized string and true when the candidate is a valid
// ISBN, or "" and false otherwise.
func Validate(candidate string) (string, bool) {
	normalized := strings.ReplaceAll(candidate, "-", "")

	digits, ok := toDigits(normalized)
	if !ok {
		return "", false
	}

	switch len(digits) {
	case 10:
		if checksum10(digits) {
			return normalized, true
		}
	case 13:
		if checksum13(digits) {
			return normalized, true
		}
	}

	return "", false
}

// IsValid10 reports whether the candidate is a valid ISBN-10
// (hyphens allowed).
func IsValid10(candidate string) bool {
	normalized, ok := Validate(candidate)
	return ok && len(normalized) == 10
}

// IsValid13 reports whether the candidate is a valid ISBN-13
// (hyphens allowed).
func IsValid13(candidate string) bool {
	normalized, ok := Validate(candidate)
	return ok && len(normalized) == 13
}

// toDigits converts a normalized ISBN string into digit values. A trailing
// "X" check character is treated as the value 10 (ISBN-10 only).
func toDigits(normalized string) ([]int, bool) {
	digits := make([]int, 0, len(normalized))
	for i, r := range normalized {
		if r == 'X' && i == len(normalized)-1 {
			digits = append(digits, 10)
			continue
		}
		if r < '0' || r > '9' {
			return nil, false
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, true
}

// checksum10 checks the ISBN-10 check code: the sum of each digit weighted
// by its 1-based position must be divisible by 11.
func checksum10(digits []int) bool {
	sum := 0
	for i, d := range digits {
		sum += (i + 1) * d
	}
	return sum%11 == 0
}

// checksum13 checks the ISBN-13 check code: the first 12 digits are weighted
// alternately 1 and 3, and the check digit must equal 10-(sum mod 10), with
// a remainder of 0 treated as 10.
func checksum13(digits []int) bool {
	check := digits[12]
	sum := 0
	for i, d := range digits[:12] {
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}

	remainder := sum % 10
	if remainder == 0 {
		remainder = 10
	}
	return 10-remainder == check
}
