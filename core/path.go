// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Helpers shared by the strategies: endpoint validation, path
// reconstruction from parent links, ladder verification.

package core

import "fmt"

// ValidateEndpoints checks that start and goal are vertices of g.
// It runs before a strategy allocates any search state.
//
// Errors:
//   - ErrDomain wrapped with the offending word.
func ValidateEndpoints(g *WordGraph, start, goal string) error {
	if !g.HasWord(start) {
		return fmt.Errorf("%w: start %q", ErrDomain, start)
	}
	if !g.HasWord(goal) {
		return fmt.Errorf("%w: goal %q", ErrDomain, goal)
	}

	return nil
}

// Reconstruct walks parent links backwards from goal until it reaches a word
// without a parent (the start) and returns the path in start→goal order.
// Complexity: O(len(path)).
func Reconstruct(parent map[string]string, goal string) []string {
	path := []string{}
	for cur := goal; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// IsLadder reports whether path is non-empty and every consecutive pair is an
// edge of g.
func IsLadder(g *WordGraph, path []string) bool {
	if len(path) == 0 || !g.HasWord(path[0]) {
		return false
	}
	for i := 1; i < len(path); i++ {
		if !DifferByOne(path[i-1], path[i]) || !contains(g.Neighbors(path[i-1]), path[i]) {
			return false
		}
	}

	return true
}

// SinglePath returns the Found result for a search whose start equals its goal.
func SinglePath(start string) *Result {
	return &Result{Status: Found, Path: []string{start}}
}
