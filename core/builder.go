// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: WordGraph constructors (bucketed, pairwise, snapshot rehydration).
// Determinism:
//   - Every constructor sorts vertices and neighbor lists lexicographically,
//     so Build and BuildPairwise return identical graphs for the same input.

package core

import (
	"fmt"
	"sort"
)

// Build constructs a WordGraph by bucketing words under wildcard patterns.
//
// Implementation:
//   - Stage 1: Validate and de-duplicate words (ErrDomain on malformed input).
//   - Stage 2: For each word and each position i, append the word to the
//     bucket keyed by the word with position i replaced by a wildcard.
//   - Stage 3: Link every pair inside a bucket. Two distinct words share a
//     bucket iff they differ exactly at the blanked position, so each edge is
//     produced by exactly one bucket and needs no de-duplication.
//   - Stage 4: Sort neighbor lists.
//
// Errors:
//   - ErrDomain: a word is not uppercase A–Z, or lengths disagree.
//
// Complexity:
//   - Time O(n·L² + Σ|bucket|² + E·log d), Memory O(n·L + E).
func Build(words []string, opts ...BuildOption) (*WordGraph, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	uniq, length, err := prepareWords(words, cfg.length)
	if err != nil {
		return nil, err
	}
	g := newWordGraph(uniq, length)

	buckets := make(map[string][]string, len(uniq)*length)
	key := make([]byte, length)
	var i int
	for _, w := range uniq {
		for i = 0; i < length; i++ {
			copy(key, w)
			key[i] = wildcard
			k := string(key)
			buckets[k] = append(buckets[k], w)
		}
	}

	var a, b int
	for _, bucket := range buckets {
		for a = 0; a < len(bucket); a++ {
			for b = a + 1; b < len(bucket); b++ {
				g.link(bucket[a], bucket[b])
			}
		}
	}
	g.sortNeighbors()

	return g, nil
}

// BuildPairwise constructs a WordGraph by testing every unordered pair of
// distinct words with DifferByOne. It returns the same graph as Build and is
// kept as the reference construction for tests and small dictionaries.
//
// Complexity: Time O(n²·L), Memory O(n + E).
func BuildPairwise(words []string, opts ...BuildOption) (*WordGraph, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	uniq, length, err := prepareWords(words, cfg.length)
	if err != nil {
		return nil, err
	}
	g := newWordGraph(uniq, length)

	var i, j int
	for i = 0; i < len(uniq); i++ {
		for j = i + 1; j < len(uniq); j++ {
			if DifferByOne(uniq[i], uniq[j]) {
				g.link(uniq[i], uniq[j])
			}
		}
	}
	g.sortNeighbors()

	return g, nil
}

// FromAdjacency rehydrates a WordGraph from an adjacency snapshot such as the
// one returned by Adjacency. Every key becomes a vertex. The snapshot must
// satisfy all graph invariants; otherwise ErrInvalidGraph is returned with the
// first offending word.
//
// Complexity: Time O(n·L + E·L + E·log d).
func FromAdjacency(adj map[string][]string) (*WordGraph, error) {
	words := make([]string, 0, len(adj))
	for w := range adj {
		words = append(words, w)
	}
	sort.Strings(words)

	uniq, length, err := prepareWords(words, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
	}
	g := newWordGraph(uniq, length)

	for _, u := range uniq {
		seen := make(map[string]struct{}, len(adj[u]))
		for _, v := range adj[u] {
			if _, dup := seen[v]; dup {
				return nil, fmt.Errorf("%w: duplicate neighbor %q of %q", ErrInvalidGraph, v, u)
			}
			seen[v] = struct{}{}
			if _, ok := adj[v]; !ok {
				return nil, fmt.Errorf("%w: neighbor %q of %q is not a vertex", ErrInvalidGraph, v, u)
			}
			if !DifferByOne(u, v) {
				return nil, fmt.Errorf("%w: %q-%q is not a single-edit pair", ErrInvalidGraph, u, v)
			}
			if !contains(adj[v], u) {
				return nil, fmt.Errorf("%w: edge %q-%q is not symmetric", ErrInvalidGraph, u, v)
			}
			g.adj[u] = append(g.adj[u], v)
			if u < v {
				g.edges++
			}
		}
	}
	g.sortNeighbors()

	return g, nil
}

// prepareWords validates words, removes duplicates and returns them sorted,
// along with the effective word length. A zero want infers the length from
// the first word.
func prepareWords(words []string, want int) ([]string, int, error) {
	length := want
	if length == 0 && len(words) > 0 {
		length = len(words[0])
	}

	seen := make(map[string]struct{}, len(words))
	uniq := make([]string, 0, len(words))
	for _, w := range words {
		if !ValidWord(w, length) {
			return nil, 0, fmt.Errorf("%w: %q is not a %d-letter uppercase word", ErrDomain, w, length)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	sort.Strings(uniq)

	return uniq, length, nil
}

// newWordGraph allocates a graph with every word as an isolated vertex.
func newWordGraph(sorted []string, length int) *WordGraph {
	g := &WordGraph{
		length: length,
		words:  sorted,
		adj:    make(map[string][]string, len(sorted)),
	}
	for _, w := range sorted {
		g.adj[w] = []string{}
	}

	return g
}

// link adds the undirected edge u–v. Callers guarantee it is new.
func (g *WordGraph) link(u, v string) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++
}

func (g *WordGraph) sortNeighbors() {
	for _, nbrs := range g.adj {
		sort.Strings(nbrs)
	}
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}
