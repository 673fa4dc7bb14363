package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/wordladder/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called after each word is dequeued and its neighbors have
	// been enqueued.
	OnExpand core.ExpandFunc
}

// DefaultOptions returns background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: core.NoopExpand,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers an expansion observer.
func WithOnExpand(fn core.ExpandFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
