package ids

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// DefaultMaxDepth is the largest depth limit tried when WithMaxDepth is not given.
const DefaultMaxDepth = 50

var (
	// ErrGraphNil is returned when a nil *core.WordGraph is passed to IDS.
	ErrGraphNil = errors.New("ids: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ids: invalid option supplied")
)

// Option configures optional behavior of IDS.
type Option func(*Options)

// Options holds configurable parameters for IDS.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth is the largest depth limit tried. Must be ≥ 1.
	MaxDepth int

	// MaxExpansions, if positive, caps node entries across all passes.
	// Reaching it aborts the call with Status Aborted.
	MaxExpansions int

	// OnExpand is invoked on every node entry with the current path length
	// as the frontier size and the visited-set size.
	OnExpand core.ExpandFunc

	// OnDepth is invoked at the start of each depth-limited pass.
	OnDepth func(limit int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns background context, DefaultMaxDepth, no expansion
// budget and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxDepth:      DefaultMaxDepth,
		MaxExpansions: 0,
		OnExpand:      core.NoopExpand,
		OnDepth:       func(int) {},
	}
}

// WithContext sets the Context checked before each pass and each expansion.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth sets the largest depth limit tried.
//
//	d >= 1: try limits 1..d
//	d < 1:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxDepth must be at least 1 (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxExpansions caps the number of node entries across all passes.
//
//	n > 0:  abort with Status Aborted once n entries have been made
//	n == 0: no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand installs an expansion observer.
func WithOnExpand(fn core.ExpandFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDepth installs a hook called with each depth limit before its pass.
func WithOnDepth(fn func(limit int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDepth = fn
		}
	}
}
