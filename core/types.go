// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, search result types, hook signatures and the WordGraph type.
// Concurrency:
//   - WordGraph is immutable after construction; all read methods are lock-free.
//   - Result values are owned by the caller that received them.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the graph and every search strategy.
var (
	// ErrDomain indicates a start/goal word (or a dictionary word handed to a
	// builder) that is not a known, well-formed word of the graph's length.
	ErrDomain = errors.New("core: word not in dictionary")

	// ErrInvalidTransition indicates a cost lookup on a pair of words that
	// does not differ in exactly one position. Graph edges are always
	// single-edit pairs, so seeing it means an invariant was broken upstream.
	ErrInvalidTransition = errors.New("core: invalid transition")

	// ErrInvalidGraph indicates an adjacency snapshot that violates symmetry,
	// the single-edit rule, or the fixed-length rule.
	ErrInvalidGraph = errors.New("core: invalid word graph")
)

// Status classifies the outcome of one search call.
type Status int

const (
	// NotFound means the frontier was exhausted (or every depth limit tried)
	// without reaching the goal.
	NotFound Status = iota

	// Found means Result.Path holds a start..goal ladder.
	Found

	// Cancelled means the caller's context was done before the search finished.
	Cancelled

	// Aborted means an expansion budget was exhausted before the search finished.
	Aborted
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case NotFound:
		return "not_found"
	case Found:
		return "found"
	case Cancelled:
		return "cancelled"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText encodes the status by name, so JSON and YAML output stays readable.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a name produced by MarshalText.
func (s *Status) UnmarshalText(b []byte) error {
	for _, c := range []Status{NotFound, Found, Cancelled, Aborted} {
		if c.String() == string(b) {
			*s = c
			return nil
		}
	}

	return fmt.Errorf("core: unknown status %q", b)
}

// Result is the outcome of a single search.
//
//   - Status: how the search ended.
//   - Path:   start..goal inclusive when Status == Found, nil otherwise.
//   - Cost:   total path cost under the strategy's cost model
//     (edge count for unit-cost strategies); zero unless Found.
type Result struct {
	Status Status
	Path   []string
	Cost   int
}

// Found reports whether the search produced a path.
func (r *Result) Found() bool { return r != nil && r.Status == Found }

// Steps returns the number of edges on the path, or -1 when no path was found.
func (r *Result) Steps() int {
	if !r.Found() {
		return -1
	}

	return len(r.Path) - 1
}

// ExpandFunc observes a search each time it expands a word (pops it from the
// frontier, or enters it in depth-first search). frontier and visited are the
// sizes of the strategy's frontier and visited/cost structures right after
// the expansion step.
type ExpandFunc func(word string, frontier, visited int)

// NoopExpand is the default ExpandFunc.
func NoopExpand(string, int, int) {}

// WordGraph is the immutable adjacency structure over a fixed-length word list.
//
// adj maps every word to its neighbors sorted ascending; words holds every
// vertex sorted ascending; edges counts undirected edges once.
type WordGraph struct {
	length int
	words  []string
	adj    map[string][]string
	edges  int
}

// Stats is a point-in-time summary of a WordGraph.
type Stats struct {
	WordLength int `json:"word_length" yaml:"word_length"`
	Words      int `json:"words" yaml:"words"`
	Edges      int `json:"edges" yaml:"edges"`
	Isolated   int `json:"isolated" yaml:"isolated"`
	MaxDegree  int `json:"max_degree" yaml:"max_degree"`
}

// BuildOption configures graph construction.
type BuildOption func(*buildConfig)

type buildConfig struct {
	length int // 0 means infer from the first word
}

// WithWordLength pins the expected word length. Words of any other length are
// rejected with ErrDomain instead of silently defining the graph's length.
func WithWordLength(n int) BuildOption {
	return func(c *buildConfig) {
		if n > 0 {
			c.length = n
		}
	}
}
