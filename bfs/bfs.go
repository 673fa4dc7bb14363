package bfs

import (
	"github.com/katalvlaran/wordladder/core"
)

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph   *core.WordGraph
	opts    Options
	goal    string
	queue   []string
	visited map[string]bool
	parent  map[string]string
}

// BFS returns a shortest ladder from start to goal in g.
// Returns ErrGraphNil or a core.ErrDomain-wrapped error for invalid input;
// otherwise a Result whose Status is Found, NotFound or Cancelled.
func BFS(g *core.WordGraph, start, goal string, opts ...Option) (*core.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := core.ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if start == goal {
		return core.SinglePath(start), nil
	}

	w := &walker{
		graph:   g,
		opts:    o,
		goal:    goal,
		queue:   make([]string, 0, 64),
		visited: make(map[string]bool, 64),
		parent:  make(map[string]string, 64),
	}
	w.enqueue(start, "")

	return w.loop(), nil
}

// enqueue marks id visited, records its parent and appends it to the queue.
func (w *walker) enqueue(id, parent string) {
	w.visited[id] = true
	if parent != "" {
		w.parent[id] = parent
	}
	w.queue = append(w.queue, id)
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or the context is cancelled.
func (w *walker) loop() *core.Result {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return &core.Result{Status: core.Cancelled}
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		if u == w.goal {
			w.opts.OnExpand(u, len(w.queue), len(w.visited))
			path := core.Reconstruct(w.parent, u)

			return &core.Result{Status: core.Found, Path: path, Cost: len(path) - 1}
		}

		for _, v := range w.graph.Neighbors(u) {
			// first time seen?
			if !w.visited[v] {
				w.enqueue(v, u)
			}
		}
		w.opts.OnExpand(u, len(w.queue), len(w.visited))
	}

	return &core.Result{Status: core.NotFound}
}
