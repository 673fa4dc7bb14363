// Package ids finds a shortest word ladder by iterative-deepening
// depth-first search over a core.WordGraph.
//
// IDS runs a depth-limited DFS for limits 1, 2, …, MaxDepth and stops at the
// first limit that reaches the goal. The first ladder found therefore has the
// minimum number of steps, the same length BFS returns, while memory stays
// proportional to the current path rather than to the explored region.
//
// Key features:
//   - Path-scoped visited set: a word is marked on entry and unmarked on every
//     exit path, so it may be revisited from another branch within the same
//     pass but never twice on one path (no cycles).
//   - Fresh state per depth pass; neighbors tried in sorted order.
//   - Cooperative cancellation via context.Context, checked before every
//     depth pass and before every node expansion (Status Cancelled).
//   - Optional expansion budget: reaching MaxExpansions aborts the whole call
//     with Status Aborted. It does not move on to the next depth limit.
//   - Hooks: OnExpand (every node entry) and OnDepth (start of each pass).
//
// Complexity (b = branching factor, d = depth of the shallowest goal):
//
//   - Time:   O(b^d) node entries summed over all passes; paths through
//     already-seen words are re-explored, so it does more work than BFS.
//   - Memory: O(d) for the recursion stack, the path and the visited set.
//
// Options:
//
//   - WithContext(ctx)           cooperative cancellation.
//   - WithMaxDepth(d)            largest depth limit tried (default 50, d ≥ 1).
//   - WithMaxExpansions(n)       expansion budget across all passes (0 = none).
//   - WithOnExpand(fn)           observe node entries.
//   - WithOnDepth(fn)            observe the start of each pass.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrOptionViolation        for an invalid option value.
//   - core.ErrDomain            if start or goal is not a word of the graph.
package ids
