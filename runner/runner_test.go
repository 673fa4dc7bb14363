package runner_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/cost"
	"github.com/katalvlaran/wordladder/internal/testdict"
	"github.com/katalvlaran/wordladder/runner"
)

func newRunner(t *testing.T, words []string, opts ...runner.Option) *runner.Runner {
	t.Helper()
	g, err := core.Build(words)
	require.NoError(t, err)
	r, err := runner.New(g, opts...)
	require.NoError(t, err)

	return r
}

func TestNew_Validation(t *testing.T) {
	_, err := runner.New(nil)
	assert.ErrorIs(t, err, runner.ErrGraphNil)

	g, err := core.Build(testdict.Ladder)
	require.NoError(t, err)
	_, err = runner.New(g, runner.WithIDSMaxDepth(0))
	assert.ErrorIs(t, err, runner.ErrOptionViolation)
	_, err = runner.New(g, runner.WithIDSMaxExpansions(-1))
	assert.ErrorIs(t, err, runner.ErrOptionViolation)

	r, err := runner.New(g, runner.WithLogger(nil))
	require.NoError(t, err)
	assert.Same(t, g, r.Graph())
}

func TestRun_DomainError(t *testing.T) {
	r := newRunner(t, testdict.Ladder)
	for _, s := range runner.AllStrategies() {
		_, err := r.Run(context.Background(), s, "CAT", "COW")
		assert.ErrorIs(t, err, core.ErrDomain, s.String())
	}
	_, err := r.Run(context.Background(), runner.Strategy(99), "CAT", "DOG")
	assert.ErrorIs(t, err, runner.ErrUnknownStrategy)
}

func TestRun_LadderScenario(t *testing.T) {
	r := newRunner(t, testdict.Ladder)
	for _, s := range runner.AllStrategies() {
		rec, err := r.Run(context.Background(), s, "CAT", "DOG")
		require.NoError(t, err, s.String())
		assert.Equal(t, core.Found, rec.Status, s.String())
		assert.Len(t, rec.Path, 4, s.String())
		assert.Equal(t, 3, rec.Steps, s.String())
		assert.True(t, core.IsLadder(r.Graph(), rec.Path), s.String())
		assert.Positive(t, rec.Expanded, s.String())
		assert.Positive(t, rec.PeakNodes, s.String())
		assert.Equal(t, s, rec.Strategy)
	}
}

func TestRun_TrivialAndUnreachable(t *testing.T) {
	pair := newRunner(t, testdict.Pair)
	disc := newRunner(t, testdict.Disconnected)
	for _, s := range runner.AllStrategies() {
		rec, err := pair.Run(context.Background(), s, "AAAA", "AAAB")
		require.NoError(t, err)
		assert.Equal(t, []string{"AAAA", "AAAB"}, rec.Path, s.String())

		rec, err = disc.Run(context.Background(), s, "AAAA", "AAAA")
		require.NoError(t, err)
		assert.Equal(t, []string{"AAAA"}, rec.Path, s.String())
		assert.Equal(t, 0, rec.Steps)
		assert.Equal(t, 0, rec.LetterCost)

		rec, err = disc.Run(context.Background(), s, "AAAA", "BBBB")
		require.NoError(t, err)
		assert.Equal(t, core.NotFound, rec.Status, s.String())
		assert.Nil(t, rec.Path)
		assert.Equal(t, -1, rec.Steps)
	}
}

// TestRun_StrategiesAgree checks the cross-strategy properties on a random
// graph: equal shortest lengths, letter-cost optimality of UCSLetter, the
// Hamming lower bound and A* expanding no more than BFS. IDS only runs on
// reachable pairs, where it stops at the shortest depth.
func TestRun_StrategiesAgree(t *testing.T) {
	r := newRunner(t, testdict.Random(21, 200, 4, 5))
	words := r.Graph().Words()
	ctx := context.Background()

	for i := 0; i < len(words); i += 23 {
		for j := 5; j < len(words); j += 41 {
			start, goal := words[i], words[j]
			ref, err := r.Run(ctx, runner.BFS, start, goal)
			require.NoError(t, err)

			strategies := []runner.Strategy{runner.UCS, runner.UCSLetter, runner.AStar}
			if ref.Status == core.Found {
				strategies = append(strategies, runner.IDS)
			}
			recs := map[runner.Strategy]runner.Record{}
			for _, s := range strategies {
				rec, err := r.Run(ctx, s, start, goal)
				require.NoError(t, err)
				require.Equal(t, ref.Status, rec.Status, "%s %s→%s", s, start, goal)
				recs[s] = rec
			}
			if ref.Status != core.Found {
				continue
			}

			for _, s := range []runner.Strategy{runner.IDS, runner.UCS, runner.AStar} {
				assert.Equal(t, ref.Steps, recs[s].Steps, "%s %s→%s", s, start, goal)
			}
			letter := recs[runner.UCSLetter]
			assert.LessOrEqual(t, letter.LetterCost, ref.LetterCost)
			assert.LessOrEqual(t, letter.LetterCost, recs[runner.AStar].LetterCost)
			assert.GreaterOrEqual(t, letter.Steps, ref.Steps)
			assert.LessOrEqual(t, cost.Hamming(start, goal), ref.Steps)
			assert.LessOrEqual(t, recs[runner.AStar].Expanded, ref.Expanded)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	r := newRunner(t, testdict.Classic)
	for _, s := range runner.AllStrategies() {
		a, err := r.Run(context.Background(), s, "BOAT", "WORM")
		require.NoError(t, err)
		b, err := r.Run(context.Background(), s, "BOAT", "WORM")
		require.NoError(t, err)
		assert.Equal(t, a.Path, b.Path, s.String())
		assert.Equal(t, a.Expanded, b.Expanded, s.String())
		assert.Equal(t, a.PeakNodes, b.PeakNodes, s.String())
	}
}

func TestRun_CancelledAndAborted(t *testing.T) {
	r := newRunner(t, testdict.Classic, runner.WithIDSMaxExpansions(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, s := range runner.AllStrategies() {
		rec, err := r.Run(ctx, s, "COLD", "WARM")
		require.NoError(t, err)
		assert.Equal(t, core.Cancelled, rec.Status, s.String())
	}

	rec, err := r.Run(context.Background(), runner.IDS, "COLD", "WARM")
	require.NoError(t, err)
	assert.Equal(t, core.Aborted, rec.Status)
	assert.Equal(t, 2, rec.Expanded)
}

func TestRun_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.JSONFormatter{})

	r := newRunner(t, testdict.Ladder, runner.WithLogger(log), runner.WithMetrics(true))
	_, err := r.Run(context.Background(), runner.AStar, "CAT", "DOG")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"strategy":"astar"`)
	assert.Contains(t, buf.String(), `"status":"found"`)
}
