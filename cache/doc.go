// Package cache keeps built word graphs so a dictionary is bucketed once.
//
// A Loader looks a dictionary up by Key in two tiers before building:
//
//  1. an in-process LRU of *core.WordGraph values;
//  2. an optional directory of snapshots, one file per key, holding the
//     adjacency as msgpack compressed with zstd.
//
// Concurrent Load calls for the same key share a single lookup-or-build.
// Snapshots are rehydrated through core.FromAdjacency, so a damaged or
// hand-edited file can never produce a graph that breaks the graph
// invariants; such files are logged, discarded and rebuilt.
package cache
