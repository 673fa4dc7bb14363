// SPDX-License-Identifier: MIT
//
// File: word.go
// Role: Word-level rules: well-formedness, single-edit adjacency, normalization.

package core

import "strings"

// wildcard replaces one letter position when bucketing words by pattern.
// It is outside A–Z so a pattern never collides with a real word.
const wildcard = '*'

// ValidWord reports whether w is exactly length uppercase ASCII letters.
func ValidWord(w string, length int) bool {
	if length <= 0 || len(w) != length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}

	return true
}

// Diff compares two equal-length words and returns the first differing index
// (scanning left to right) and the number of differing positions.
// For words of unequal length it returns (-1, -1).
// Complexity: O(L).
func Diff(a, b string) (first, count int) {
	if len(a) != len(b) {
		return -1, -1
	}
	first = -1
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			if first < 0 {
				first = i
			}
			count++
		}
	}

	return first, count
}

// DifferByOne reports whether a and b have equal length and differ in exactly
// one position. It is symmetric and irreflexive.
func DifferByOne(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}

	return diff == 1
}

// Normalize trims surrounding whitespace and upper-cases w. Front ends call
// it on user input before validating dictionary membership.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}
