package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/internal/metrics"
)

// DefaultMemorySize is the LRU capacity used when WithMemorySize is not given.
const DefaultMemorySize = 4

// snapshotExt is appended to the key to name a snapshot file.
const snapshotExt = ".wlg.zst"

// ErrOptionViolation is returned by NewLoader for an invalid Option.
var ErrOptionViolation = errors.New("cache: invalid option supplied")

// Loader returns cached graphs, building them on a miss.
// It is safe for concurrent use.
type Loader struct {
	dir     string
	memSize int
	log     *logrus.Logger
	mem     *lru.Cache[string, *core.WordGraph]
	group   singleflight.Group
	err     error
}

// Option configures a Loader.
type Option func(*Loader)

// WithDir enables the disk tier under dir. An empty dir disables it.
func WithDir(dir string) Option {
	return func(l *Loader) { l.dir = dir }
}

// WithMemorySize sets how many graphs the memory tier holds (≥ 1).
func WithMemorySize(n int) Option {
	return func(l *Loader) {
		if n < 1 {
			l.err = fmt.Errorf("%w: memory size must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		l.memSize = n
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(log *logrus.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader returns a Loader with a memory tier and, if WithDir is given,
// a disk tier.
func NewLoader(opts ...Option) (*Loader, error) {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	l := &Loader{memSize: DefaultMemorySize, log: discard}
	for _, opt := range opts {
		opt(l)
	}
	if l.err != nil {
		return nil, l.err
	}

	mem, err := lru.New[string, *core.WordGraph](l.memSize)
	if err != nil {
		return nil, fmt.Errorf("cache: memory tier: %w", err)
	}
	l.mem = mem

	return l, nil
}

// Path returns the snapshot file for key, or "" when the disk tier is off.
func (l *Loader) Path(key string) string {
	if l.dir == "" {
		return ""
	}

	return filepath.Join(l.dir, key+snapshotExt)
}

// Load returns the graph for words: from memory, else from disk, else built
// with core.Build and written back to both tiers. A failed disk write is
// logged and does not fail the call.
func (l *Loader) Load(ctx context.Context, words []string) (*core.WordGraph, error) {
	key := Key(words)
	if g, ok := l.mem.Get(key); ok {
		metrics.CacheLookups.WithLabelValues("memory").Inc()
		return g, nil
	}

	val, err, _ := l.group.Do(key, func() (any, error) {
		// Double-check memory after winning the singleflight race.
		if g, ok := l.mem.Get(key); ok {
			metrics.CacheLookups.WithLabelValues("memory").Inc()
			return g, nil
		}

		log := l.log.WithFields(logrus.Fields{"key": key, "words": len(words)})
		if g, ok := l.readDisk(key, log); ok {
			metrics.CacheLookups.WithLabelValues("disk").Inc()
			l.mem.Add(key, g)
			return g, nil
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := core.Build(words)
		if err != nil {
			return nil, fmt.Errorf("cache: build graph: %w", err)
		}
		metrics.CacheLookups.WithLabelValues("build").Inc()
		log.WithField("edges", g.Edges()).Info("graph built")

		l.mem.Add(key, g)
		if err := l.writeDisk(key, g); err != nil {
			log.WithError(err).Warn("graph snapshot not written")
		}

		return g, nil
	})
	if err != nil {
		return nil, err
	}

	g, ok := val.(*core.WordGraph)
	if !ok {
		return nil, fmt.Errorf("cache: unexpected singleflight result type %T", val)
	}

	return g, nil
}

// LoadDictionary parses a word list with core.ParseWords and loads its graph.
func (l *Loader) LoadDictionary(ctx context.Context, r io.Reader, length int) (*core.WordGraph, error) {
	words, err := core.ParseWords(r, length)
	if err != nil {
		return nil, err
	}

	return l.Load(ctx, words)
}

// Invalidate drops key from both tiers.
func (l *Loader) Invalidate(key string) error {
	l.mem.Remove(key)
	if l.dir == "" {
		return nil
	}
	if err := os.Remove(l.Path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cache: remove snapshot: %w", err)
	}

	return nil
}

// readDisk loads a snapshot. Missing files are silent misses; unreadable
// ones are logged and reported as misses so the caller rebuilds over them.
func (l *Loader) readDisk(key string, log *logrus.Entry) (*core.WordGraph, bool) {
	if l.dir == "" {
		return nil, false
	}
	blob, err := os.ReadFile(l.Path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Warn("graph snapshot unreadable")
		}
		return nil, false
	}

	g, err := decodeSnapshot(key, blob)
	if err != nil {
		log.WithError(err).Warn("discarding graph snapshot")
		return nil, false
	}
	log.Debug("graph loaded from snapshot")

	return g, true
}

// writeDisk stores a snapshot atomically: temp file in the same directory,
// then rename.
func (l *Loader) writeDisk(key string, g *core.WordGraph) error {
	if l.dir == "" {
		return nil
	}
	blob, err := encodeSnapshot(key, g)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("cache: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(l.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("cache: create temp: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err = tmp.Write(blob); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache: write temp: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("cache: close temp: %w", err)
	}
	if err = os.Rename(tmp.Name(), l.Path(key)); err != nil {
		return fmt.Errorf("cache: rename snapshot: %w", err)
	}

	return nil
}
