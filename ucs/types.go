package ucs

import (
	"context"
	"errors"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/cost"
)

// Sentinel errors returned by UCS.
var (
	// ErrGraphNil indicates that a nil *core.WordGraph was passed to UCS.
	ErrGraphNil = errors.New("ucs: graph is nil")

	// ErrNonPositiveCost indicates the cost function returned a cost ≤ 0,
	// which would break goal-on-pop termination.
	ErrNonPositiveCost = errors.New("ucs: edge cost must be positive")
)

// Options configures the behavior of UCS.
//
// Ctx      – cancellation; checked once per pop.
// Cost     – edge cost model; defaults to cost.Unit.
// OnExpand – observer called once per non-stale pop.
type Options struct {
	Ctx      context.Context
	Cost     cost.Func
	OnExpand core.ExpandFunc
}

// Option represents a functional option for configuring UCS.
type Option func(*Options)

// DefaultOptions returns background context, unit costs and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Cost:     cost.Unit,
		OnExpand: core.NoopExpand,
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

// WithCost sets the edge cost model. nil is ignored.
func WithCost(fn cost.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
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
