package cache

import (
	"errors"
	"fmt"
	"slices"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/wordladder/core"
)

// snapshotVersion is bumped whenever the snapshot layout changes.
const snapshotVersion = 1

var (
	// ErrSnapshotVersion marks a snapshot written by an incompatible version.
	ErrSnapshotVersion = errors.New("cache: unsupported snapshot version")

	// ErrSnapshotMismatch marks a snapshot whose key or word list does not
	// match the file it was read from.
	ErrSnapshotMismatch = errors.New("cache: snapshot does not match key")
)

// snapshot is the on-disk form of a graph.
type snapshot struct {
	Version   int                 `msgpack:"version"`
	Key       string              `msgpack:"key"`
	Length    int                 `msgpack:"length"`
	Words     []string            `msgpack:"words"`
	Adjacency map[string][]string `msgpack:"adjacency"`
}

// encodeSnapshot serializes g with msgpack and compresses it with zstd.
func encodeSnapshot(key string, g *core.WordGraph) ([]byte, error) {
	data, err := msgpack.Marshal(&snapshot{
		Version:   snapshotVersion,
		Key:       key,
		Length:    g.WordLength(),
		Words:     g.Words(),
		Adjacency: g.Adjacency(),
	})
	if err != nil {
		return nil, fmt.Errorf("cache: encode snapshot: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("cache: zstd writer: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

// decodeSnapshot reverses encodeSnapshot and verifies the result.
func decodeSnapshot(key string, blob []byte) (*core.WordGraph, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("cache: zstd reader: %w", err)
	}
	defer dec.Close()

	data, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: decompress snapshot: %w", err)
	}

	var s snapshot
	if err = msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cache: decode snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	if s.Key != key {
		return nil, fmt.Errorf("%w: file key %q, want %q", ErrSnapshotMismatch, s.Key, key)
	}

	g, err := core.FromAdjacency(s.Adjacency)
	if err != nil {
		return nil, err
	}
	if g.Len() > 0 && g.WordLength() != s.Length {
		return nil, fmt.Errorf("%w: word length %d, header says %d", ErrSnapshotMismatch, g.WordLength(), s.Length)
	}
	if !slices.Equal(g.Words(), s.Words) || Key(s.Words) != key {
		return nil, fmt.Errorf("%w: word list differs", ErrSnapshotMismatch)
	}

	return g, nil
}
