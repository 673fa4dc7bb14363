// Package astar finds a shortest word ladder by A* search.
//
// Every step costs 1 and the frontier is ordered by f = g + h, where g is the
// number of steps taken so far and h is a heuristic estimate of the steps
// remaining (cost.Hamming by default). Hamming distance never overestimates:
// each step changes exactly one letter, so at least Hamming(word, goal) more
// steps are needed. It is also consistent, because one step changes it by at
// most one. The first time the goal is popped its path is therefore shortest.
//
// Ties in f are broken by lexicographic word order. Entries are never removed
// from the heap when a cheaper route to their word is found; they are skipped
// when popped instead.
//
// Complexity:
//
//   - Time:  O((V + E) log V) in the worst case, usually far less because the
//     heuristic steers the search toward the goal.
//   - Space: O(V + E).
package astar
