package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordladder/astar"
	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/cost"
	"github.com/katalvlaran/wordladder/ids"
	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/ucs"
)

var (
	// ErrGraphNil is returned by New for a nil graph.
	ErrGraphNil = errors.New("runner: graph is nil")

	// ErrOptionViolation is returned by New for an invalid Option.
	ErrOptionViolation = errors.New("runner: invalid option supplied")
)

// Record is the measured outcome of one search.
type Record struct {
	BatchID    string        `json:"batch_id,omitempty" yaml:"batch_id,omitempty"`
	Strategy   Strategy      `json:"strategy" yaml:"strategy"`
	Start      string        `json:"start" yaml:"start"`
	Goal       string        `json:"goal" yaml:"goal"`
	Status     core.Status   `json:"status" yaml:"status"`
	Path       []string      `json:"path,omitempty" yaml:"path,omitempty"`
	Steps      int           `json:"steps" yaml:"steps"`             // -1 when no ladder was found
	LetterCost int           `json:"letter_cost" yaml:"letter_cost"` // letter-frequency cost of Path
	Expanded   int           `json:"expanded" yaml:"expanded"`
	PeakNodes  int           `json:"peak_nodes" yaml:"peak_nodes"` // max frontier+visited after an expansion
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Runner dispatches searches over one graph. It is safe for concurrent use.
type Runner struct {
	graph            *core.WordGraph
	log              *logrus.Logger
	idsMaxDepth      int
	idsMaxExpansions int
	metrics          bool
	err              error
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithIDSMaxDepth sets the largest depth limit IDS tries (must be ≥ 1).
func WithIDSMaxDepth(d int) Option {
	return func(r *Runner) {
		if d < 1 {
			r.err = fmt.Errorf("%w: IDS max depth must be at least 1 (%d)", ErrOptionViolation, d)
			return
		}
		r.idsMaxDepth = d
	}
}

// WithIDSMaxExpansions caps IDS node entries; 0 disables the cap.
func WithIDSMaxExpansions(n int) Option {
	return func(r *Runner) {
		if n < 0 {
			r.err = fmt.Errorf("%w: IDS max expansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		r.idsMaxExpansions = n
	}
}

// WithMetrics turns Prometheus reporting on or off (default off).
func WithMetrics(on bool) Option {
	return func(r *Runner) { r.metrics = on }
}

// New returns a Runner over g.
func New(g *core.WordGraph, opts ...Option) (*Runner, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Runner{
		graph:       g,
		log:         discard,
		idsMaxDepth: ids.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.err != nil {
		return nil, r.err
	}

	return r, nil
}

// Graph returns the graph the runner searches.
func (r *Runner) Graph() *core.WordGraph { return r.graph }

// Run executes one search and measures it.
//
// Domain errors (unknown start/goal) and cost-model failures are returned
// and produce no Record. NotFound, Cancelled and Aborted are outcomes, not
// errors, and are reported in Record.Status.
func (r *Runner) Run(ctx context.Context, s Strategy, start, goal string) (Record, error) {
	var expanded, peak int
	hook := func(_ string, frontier, visited int) {
		expanded++
		if n := frontier + visited; n > peak {
			peak = n
		}
	}

	began := time.Now()
	res, err := r.dispatch(ctx, s, start, goal, hook)
	elapsed := time.Since(began)

	fields := logrus.Fields{"strategy": s.String(), "start": start, "goal": goal}
	if err != nil {
		if errors.Is(err, core.ErrInvalidTransition) {
			r.log.WithFields(fields).WithError(err).Error("graph invariant breached")
			r.countError("invalid_transition")
		} else {
			r.countError("domain")
		}

		return Record{}, err
	}

	rec := Record{
		Strategy:  s,
		Start:     start,
		Goal:      goal,
		Status:    res.Status,
		Path:      res.Path,
		Steps:     res.Steps(),
		Expanded:  expanded,
		PeakNodes: peak,
		Elapsed:   elapsed,
	}
	if res.Found() {
		if rec.LetterCost, err = cost.PathCost(res.Path, cost.LetterFrequency); err != nil {
			r.log.WithFields(fields).WithError(err).Error("graph invariant breached")
			r.countError("invalid_transition")

			return Record{}, err
		}
	}

	if r.metrics {
		metrics.ObserveSearch(s.String(), res.Status.String(), elapsed, expanded)
	}
	fields["status"] = res.Status.String()
	fields["steps"] = rec.Steps
	fields["expanded"] = expanded
	fields["elapsed"] = elapsed
	r.log.WithFields(fields).Debug("search finished")

	return rec, nil
}

func (r *Runner) dispatch(ctx context.Context, s Strategy, start, goal string, hook core.ExpandFunc) (*core.Result, error) {
	switch s {
	case BFS:
		return bfs.BFS(r.graph, start, goal, bfs.WithContext(ctx), bfs.WithOnExpand(hook))
	case IDS:
		return ids.IDS(r.graph, start, goal,
			ids.WithContext(ctx),
			ids.WithMaxDepth(r.idsMaxDepth),
			ids.WithMaxExpansions(r.idsMaxExpansions),
			ids.WithOnExpand(hook),
		)
	case UCS:
		return ucs.UCS(r.graph, start, goal, ucs.WithContext(ctx), ucs.WithOnExpand(hook))
	case UCSLetter:
		return ucs.UCS(r.graph, start, goal,
			ucs.WithContext(ctx),
			ucs.WithCost(cost.LetterFrequency),
			ucs.WithOnExpand(hook),
		)
	case AStar:
		return astar.AStar(r.graph, start, goal, astar.WithContext(ctx), astar.WithOnExpand(hook))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}

func (r *Runner) countError(kind string) {
	if r.metrics {
		metrics.ErrorsTotal.WithLabelValues(kind).Inc()
	}
}
