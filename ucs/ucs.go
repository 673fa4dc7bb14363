package ucs

import (
	"fmt"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/internal/frontier"
)

// UCS computes a minimum-cost ladder from start to goal in g under the
// configured cost model.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. start and goal must be words of g (core.ErrDomain).
//
// Returns a Result with Status Found (Path and Cost set), NotFound or
// Cancelled, or an error if the cost model fails on an edge.
func UCS(g *core.WordGraph, start, goal string, opts ...Option) (*core.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := core.ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if start == goal {
		return core.SinglePath(start), nil
	}

	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		best:    map[string]int{start: 0},
		parent:  make(map[string]string),
		pq:      frontier.New(64),
	}
	r.pq.Push(frontier.Item{Word: start, Priority: 0, Cost: 0})

	return r.process()
}

// runner holds the mutable state for a single UCS execution.
type runner struct {
	g       *core.WordGraph   // read-only input graph
	options Options           // cost model, context, hook
	goal    string            // target word
	best    map[string]int    // word → best known accumulated cost
	parent  map[string]string // word → predecessor on the best known path
	pq      *frontier.Queue   // lazy min-heap keyed by accumulated cost
}

// process pops entries until the goal is popped or the frontier is empty.
func (r *runner) process() (*core.Result, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return &core.Result{Status: core.Cancelled}, nil
		default:
		}

		item := r.pq.Pop()
		// Skip stale entries superseded by a cheaper push.
		if item.Cost > r.best[item.Word] {
			continue
		}

		if item.Word == r.goal {
			r.options.OnExpand(item.Word, r.pq.Len(), len(r.best))

			return &core.Result{
				Status: core.Found,
				Path:   core.Reconstruct(r.parent, r.goal),
				Cost:   item.Cost,
			}, nil
		}

		if err := r.relax(item.Word, item.Cost); err != nil {
			return nil, err
		}
		r.options.OnExpand(item.Word, r.pq.Len(), len(r.best))
	}

	return &core.Result{Status: core.NotFound}, nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u string, du int) error {
	var (
		c, nc int
		err   error
	)
	for _, v := range r.g.Neighbors(u) {
		c, err = r.options.Cost(u, v)
		if err != nil {
			return fmt.Errorf("ucs: edge %s→%s: %w", u, v, err)
		}
		if c <= 0 {
			return fmt.Errorf("%w: edge %s→%s cost=%d", ErrNonPositiveCost, u, v, c)
		}

		nc = du + c
		if old, seen := r.best[v]; seen && nc >= old {
			continue
		}
		r.best[v] = nc
		r.parent[v] = u
		r.pq.Push(frontier.Item{Word: v, Priority: nc, Cost: nc})
	}

	return nil
}
