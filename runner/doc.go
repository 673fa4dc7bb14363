// Package runner executes word-ladder searches and measures them.
//
// A Runner wraps one immutable core.WordGraph and dispatches to the bfs, ids,
// ucs and astar packages by Strategy. Every run produces a Record with the
// outcome, the ladder, wall-clock time, the number of expanded words and the
// peak of frontier + visited sizes observed after each expansion. The peak is
// a structural proxy for memory use that does not depend on the Go runtime.
//
// RunBatch fans a set of (start, goal) pairs × strategies out over a bounded
// number of goroutines. The graph is shared read-only; each search owns its
// own state, so no locking is needed.
//
// The runner is the only layer that logs: the search packages stay silent and
// report through return values and hooks.
package runner
