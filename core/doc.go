// Package core provides the immutable word graph shared by every search
// strategy, together with the word rules, result types and sentinel errors
// the strategies have in common.
//
// A WordGraph G = (V,E) has one vertex per dictionary word and an undirected
// edge between two words iff they have equal length and differ in exactly one
// letter position:
//
//	COLD ─ CORD ─ CARD ─ WARD ─ WARM
//
// Properties guaranteed by every constructor:
//
//   - Symmetry: v ∈ Neighbors(u) ⇔ u ∈ Neighbors(v).
//   - Single-edit edges: DifferByOne(u, v) holds for every edge.
//   - Totality: every input word is a vertex, isolated words included.
//   - Determinism: neighbor lists and Words() are sorted lexicographically,
//     so every strategy breaks ties the same way on every platform.
//   - Immutability: a graph is never mutated after construction, so any
//     number of goroutines may search it concurrently without locks.
//
// Constructors:
//
//	Build(words, opts...)     // bucketed wildcard patterns, O(n·L²)
//	BuildPairwise(words)      // naive pairwise scan, O(n²·L); identical output
//	FromAdjacency(adj)        // rehydrate a snapshot, verifying every invariant
//
// Results:
//
//	Every strategy returns *Result with one of four statuses: Found (Path is
//	start..goal inclusive), NotFound, Cancelled or Aborted. None of the three
//	unsuccessful statuses is an error; errors are reserved for invalid input
//	(ErrDomain) and broken invariants (ErrInvalidTransition, ErrInvalidGraph).
//
// Complexity (n = |words|, L = word length, E = |edges|):
//
//   - Build:         Time O(n·L² + E·log d), Memory O(n·L + E)
//   - HasWord:       O(1)
//   - Neighbors:     O(1) (shared slice, do not mutate)
//   - Words:         O(n)
package core
