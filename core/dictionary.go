// SPDX-License-Identifier: MIT
//
// File: dictionary.go
// Role: Turn a raw newline-separated word list into graph-ready words.

package core

import (
	"bufio"
	"fmt"
	"io"
)

// ParseWords reads one word per line from r and returns the words that are
// exactly length letters long, upper-cased, with duplicates removed and the
// first-seen order preserved. Lines that are blank, contain non-letters, or
// have another length are skipped rather than rejected, so a general-purpose
// word list can be fed in directly.
//
// Errors: only I/O errors from r, and a non-positive length.
func ParseWords(r io.Reader, length int) ([]string, error) {
	if length <= 0 {
		return nil, fmt.Errorf("core: word length must be positive, got %d", length)
	}

	var (
		out  []string
		seen = make(map[string]struct{})
		sc   = bufio.NewScanner(r)
	)
	for sc.Scan() {
		w := Normalize(sc.Text())
		if !ValidWord(w, length) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("core: read word list: %w", err)
	}

	return out, nil
}
