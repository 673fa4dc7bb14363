// Package testdict provides small deterministic dictionaries for tests and
// benchmarks across the module.
package testdict

import (
	"math/rand"
	"sort"
)

// Ladder is the three-letter dictionary used by most scenario tests.
// CAT→DOG has shortest ladders CAT,COT,COG,DOG and CAT,COT,DOT,DOG.
var Ladder = []string{"CAT", "COT", "COG", "DOG", "DOT", "CAG"}

// Pair is a two-word dictionary with a single edge.
var Pair = []string{"AAAA", "AAAB"}

// Disconnected is a two-word dictionary with no edge.
var Disconnected = []string{"AAAA", "BBBB"}

// Classic is a four-letter dictionary with several competing ladders,
// including COLD→WARM, and one isolated word (ZZZZ).
var Classic = []string{
	"COLD", "CORD", "CARD", "WARD", "WARM",
	"CORM", "WORM", "WORD", "WOLD", "BOLD",
	"BOLT", "BOAT", "COAT", "CART", "WART",
	"ZZZZ",
}

// Random returns n distinct words of the given length drawn from the first
// alphabet letters of A–Z using a fixed seed. A small alphabet yields a dense
// graph with many ties, which is what the cross-strategy tests need.
func Random(seed int64, n, length, alphabet int) []string {
	if alphabet < 1 || alphabet > 26 {
		alphabet = 26
	}
	max := 1
	for i := 0; i < length && max < n*4; i++ {
		max *= alphabet
	}
	if n > max {
		n = max
	}

	rnd := rand.New(rand.NewSource(seed))
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	buf := make([]byte, length)
	for len(out) < n {
		for i := range buf {
			buf[i] = byte('A' + rnd.Intn(alphabet))
		}
		w := string(buf)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
