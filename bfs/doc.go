// Package bfs finds a shortest word ladder by breadth-first search over a
// core.WordGraph.
//
// What
//
//   - Explore words in non-decreasing edge distance from the start word.
//   - Return the first ladder that reaches the goal; it has the minimum
//     number of steps.
//   - Report every expansion to an optional OnExpand hook, which is how the
//     instrumented runner counts expanded nodes and peak memory.
//
// Determinism
//
//	core.WordGraph stores neighbor lists sorted lexicographically and BFS
//	enqueues them in that order, so among equally short ladders the result
//	is always the same one.
//
// Algorithm
//
//   - FIFO queue seeded with start.
//   - A word is marked visited when it is enqueued, never twice.
//   - The goal test happens when a word is dequeued.
//   - parent links are walked backwards from the goal to rebuild the path.
//
// Complexity (V = words, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited set and parent map
//
// Usage
//
//	res, err := bfs.BFS(g, "COLD", "WARM")
//	if err != nil {
//	    // ErrGraphNil, or core.ErrDomain for unknown endpoints
//	}
//	if res.Found() {
//	    fmt.Println(res.Path)
//	}
//
// Options
//
//   - WithContext(ctx):   stop early with Status Cancelled when ctx is done.
//   - WithOnExpand(fn):   observe each dequeued word with frontier/visited sizes.
//
// Errors
//
//   - ErrGraphNil   if the graph pointer is nil.
//   - core.ErrDomain if start or goal is not a word of the graph.
package bfs
