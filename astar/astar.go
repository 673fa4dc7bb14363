package astar

import (
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/internal/frontier"
)

// AStar returns a shortest ladder from start to goal in g.
//
// Validation: nil graph → ErrGraphNil; start or goal outside g → wrapped
// core.ErrDomain. Otherwise the Result Status is Found (Cost = steps),
// NotFound or Cancelled.
func AStar(g *core.WordGraph, start, goal string, opts ...Option) (*core.Result, error) {
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

	s := &search{
		g:      g,
		opts:   cfg,
		goal:   goal,
		best:   map[string]int{start: 0},
		parent: make(map[string]string),
		open:   frontier.New(64),
	}
	s.open.Push(frontier.Item{Word: start, Priority: cfg.Heuristic(start, goal)})

	return s.run(), nil
}

// search is the per-call A* state.
type search struct {
	g      *core.WordGraph
	opts   Options
	goal   string
	best   map[string]int    // word → fewest known steps from start
	parent map[string]string // word → predecessor on that route
	open   *frontier.Queue   // ordered by steps + heuristic
}

func (s *search) run() *core.Result {
	for s.open.Len() > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return &core.Result{Status: core.Cancelled}
		default:
		}

		item := s.open.Pop()
		if item.Cost > s.best[item.Word] {
			continue // stale
		}
		if item.Word == s.goal {
			s.opts.OnExpand(item.Word, s.open.Len(), len(s.best))

			return &core.Result{
				Status: core.Found,
				Path:   core.Reconstruct(s.parent, s.goal),
				Cost:   item.Cost,
			}
		}

		next := item.Cost + 1
		for _, v := range s.g.Neighbors(item.Word) {
			if old, seen := s.best[v]; seen && next >= old {
				continue
			}
			s.best[v] = next
			s.parent[v] = item.Word
			s.open.Push(frontier.Item{
				Word:     v,
				Priority: next + s.opts.Heuristic(v, s.goal),
				Cost:     next,
			})
		}
		s.opts.OnExpand(item.Word, s.open.Len(), len(s.best))
	}

	return &core.Result{Status: core.NotFound}
}
