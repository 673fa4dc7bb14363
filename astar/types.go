package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/cost"
)

// ErrGraphNil indicates that a nil *core.WordGraph was passed to AStar.
var ErrGraphNil = errors.New("astar: graph is nil")

// Options configures AStar.
type Options struct {
	// Ctx allows cancellation; checked once per pop.
	Ctx context.Context

	// Heuristic estimates the remaining steps. It must not overestimate,
	// or the returned ladder may not be shortest.
	Heuristic cost.Heuristic

	// OnExpand is called once per non-stale pop.
	OnExpand core.ExpandFunc
}

// Option is a functional option for AStar.
type Option func(*Options)

// DefaultOptions returns background context, the Hamming heuristic and a
// no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: cost.Hamming,
		OnExpand:  core.NoopExpand,
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the heuristic. nil is ignored.
func WithHeuristic(h cost.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers an expansion observer. nil is ignored.
func WithOnExpand(fn core.ExpandFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
