// Package wordladder finds word ladders: sequences of same-length words from
// a start word to a goal word in which each word differs from the previous
// one in exactly one letter position.
//
// What is in the box?
//
//	core/           word rules, the immutable WordGraph and its builders, Result
//	cost/           unit and letter-frequency edge costs, the Hamming heuristic
//	bfs/            breadth-first search (fewest steps)
//	ids/            iterative-deepening DFS with cancellation and an expansion budget
//	ucs/            uniform-cost search under any positive cost model
//	astar/          A* with an admissible heuristic
//	runner/         instrumented runs and concurrent batches over one graph
//	cache/          memory + disk cache of built graphs keyed by dictionary
//	cmd/wordladder  CLI: solve, bench, graph, serve
//
// Every strategy takes the same (graph, start, goal, options...) arguments and
// returns a *core.Result whose Status tells found, not found, cancelled and
// aborted apart, so callers never have to guess what an empty path means.
//
// Quick example:
//
//	CAT ── COT ── DOT
//	 │      │      │
//	CAG ── COG ── DOG
//
//	g, _ := core.Build([]string{"CAT", "COT", "COG", "DOG", "DOT", "CAG"})
//	res, _ := bfs.BFS(g, "CAT", "DOG")
//	fmt.Println(res.Path) // [CAT CAG COG DOG]
package wordladder
