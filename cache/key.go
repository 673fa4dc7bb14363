package cache

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Key identifies a dictionary independent of word order and duplicates.
// It is the word count followed by an xxhash64 of the sorted unique words.
func Key(words []string) string {
	uniq := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	sort.Strings(uniq)

	d := xxhash.New()
	for _, w := range uniq {
		_, _ = d.WriteString(w)
		_, _ = d.Write([]byte{'\n'})
	}

	return fmt.Sprintf("%d-%016x", len(uniq), d.Sum64())
}
