package ids

import (
	"github.com/katalvlaran/wordladder/core"
)

// dlsWalker holds the state of one IDS call. visited and path are reset for
// every depth pass; expanded accumulates across passes.
type dlsWalker struct {
	graph    *core.WordGraph
	opts     Options
	goal     string
	visited  map[string]bool
	path     []string
	expanded int
	halt     core.Status // NotFound while running; Cancelled or Aborted once halted
}

// IDS returns a shortest ladder from start to goal in g, found by
// depth-limited DFS with increasing limits.
func IDS(g *core.WordGraph, start, goal string, opts ...Option) (*core.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := core.ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if start == goal {
		return core.SinglePath(start), nil
	}

	w := &dlsWalker{graph: g, opts: o, goal: goal}
	for limit := 1; limit <= o.MaxDepth; limit++ {
		if w.cancelled() {
			return &core.Result{Status: core.Cancelled}, nil
		}
		o.OnDepth(limit)

		// each pass starts from an empty path
		w.visited = make(map[string]bool, limit+1)
		w.path = make([]string, 0, limit+1)

		if w.limited(start, limit) {
			return &core.Result{Status: core.Found, Path: w.path, Cost: len(w.path) - 1}, nil
		}
		if w.halt != core.NotFound {
			return &core.Result{Status: w.halt}, nil
		}
	}

	return &core.Result{Status: core.NotFound}, nil
}

// limited enters u with depthLeft steps remaining and reports whether the
// goal was reached. On success w.path holds the ladder; otherwise u has been
// removed from the path again. u always leaves the visited set on return.
func (w *dlsWalker) limited(u string, depthLeft int) (found bool) {
	// 1. Cancellation and budget are checked before each expansion
	if w.cancelled() {
		return false
	}
	if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
		w.halt = core.Aborted
		return false
	}
	w.expanded++

	// 2. Enter u; release it on every exit path
	w.visited[u] = true
	w.path = append(w.path, u)
	defer func() {
		delete(w.visited, u)
		if !found {
			w.path = w.path[:len(w.path)-1]
		}
	}()
	w.opts.OnExpand(u, len(w.path), len(w.visited))

	// 3. Goal and depth tests
	if u == w.goal {
		return true
	}
	if depthLeft <= 0 {
		return false
	}

	// 4. Recurse into neighbors not on the current path
	for _, v := range w.graph.Neighbors(u) {
		if w.visited[v] {
			continue
		}
		if w.limited(v, depthLeft-1) {
			return true
		}
		if w.halt != core.NotFound {
			return false
		}
	}

	return false
}

// cancelled polls the context and records the halt.
func (w *dlsWalker) cancelled() bool {
	select {
	case <-w.opts.Ctx.Done():
		w.halt = core.Cancelled
		return true
	default:
		return false
	}
}
