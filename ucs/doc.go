// Package ucs finds a minimum-cost word ladder by uniform-cost search
// (Dijkstra's algorithm with an early exit at the goal).
//
// UCS keeps a min-priority frontier keyed by accumulated path cost. When the
// goal is popped its cost is final, because every edge cost is positive and
// the queue always yields the cheapest tentative entry; the search stops
// there instead of settling the rest of the graph.
//
// With cost.Unit the result has the same number of steps as BFS. With
// cost.LetterFrequency it minimizes the summed rarity of the letters
// introduced along the way, which can favor a longer ladder through common
// letters over a shorter one through rare letters.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for best-cost and parent maps.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: an improved cost pushes a new entry; a popped entry
//     whose cost exceeds the best known cost for its word is stale and is
//     skipped without expansion.
//   - Ties in cost are broken by lexicographic word order, so results do not
//     depend on heap internals.
//   - Relaxation requires a strict improvement.
//   - A cost function error (core.ErrInvalidTransition) aborts the search and
//     is returned wrapped: it means a graph edge is not a single-edit pair.
package ucs
