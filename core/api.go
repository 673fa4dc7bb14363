// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only WordGraph accessors.
// Policy:
//   - No algorithms or hidden state here.
//   - Methods never mutate the graph; all are safe for concurrent use.

package core

// WordLength returns the fixed length shared by every vertex
// (0 for an empty graph built without WithWordLength).
func (g *WordGraph) WordLength() int { return g.length }

// Len returns the number of vertices.
func (g *WordGraph) Len() int { return len(g.words) }

// Edges returns the number of undirected edges.
func (g *WordGraph) Edges() int { return g.edges }

// HasWord reports whether w is a vertex. Complexity: O(1).
func (g *WordGraph) HasWord(w string) bool {
	_, ok := g.adj[w]

	return ok
}

// Neighbors returns the sorted neighbor list of w, or nil if w is not a
// vertex. The slice is shared with the graph and must not be modified.
// Complexity: O(1).
func (g *WordGraph) Neighbors(w string) []string {
	return g.adj[w]
}

// Degree returns the number of neighbors of w (0 for unknown words).
func (g *WordGraph) Degree(w string) int {
	return len(g.adj[w])
}

// Words returns a sorted copy of all vertices. Complexity: O(n).
func (g *WordGraph) Words() []string {
	out := make([]string, len(g.words))
	copy(out, g.words)

	return out
}

// Adjacency returns a deep copy of the adjacency structure, suitable for
// serialization and for FromAdjacency. Complexity: O(n + E).
func (g *WordGraph) Adjacency() map[string][]string {
	out := make(map[string][]string, len(g.adj))
	for w, nbrs := range g.adj {
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		out[w] = cp
	}

	return out
}

// Stats summarizes the graph. Complexity: O(n).
func (g *WordGraph) Stats() Stats {
	s := Stats{
		WordLength: g.length,
		Words:      len(g.words),
		Edges:      g.edges,
	}
	for _, nbrs := range g.adj {
		d := len(nbrs)
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	return s
}
