package ucs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/cost"
	"github.com/katalvlaran/wordladder/internal/testdict"
	"github.com/katalvlaran/wordladder/ucs"
)

// detour is a graph where the fewest-steps ladder AAA→BBA runs through the
// rare letter Z (cost 5+3+3 = 11), while a four-step detour through common
// letters costs 1+1+3+3 = 8.
var detour = []string{"AAA", "AZA", "BZA", "BBA", "AEA", "EEA", "EBA"}

func mustBuild(t *testing.T, words []string) *core.WordGraph {
	t.Helper()
	g, err := core.Build(words)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestUCS_Errors(t *testing.T) {
	_, err := ucs.UCS(nil, "CAT", "DOG")
	assert.ErrorIs(t, err, ucs.ErrGraphNil)

	g := mustBuild(t, testdict.Ladder)
	_, err = ucs.UCS(g, "CAT", "DOGS")
	assert.ErrorIs(t, err, core.ErrDomain)
}

func TestUCS_CostFunctionFailures(t *testing.T) {
	g := mustBuild(t, testdict.Ladder)

	broken := func(from, to string) (int, error) { return cost.Unit(from, from) }
	_, err := ucs.UCS(g, "CAT", "DOG", ucs.WithCost(broken))
	assert.ErrorIs(t, err, core.ErrInvalidTransition)

	free := func(string, string) (int, error) { return 0, nil }
	_, err = ucs.UCS(g, "CAT", "DOG", ucs.WithCost(free))
	assert.ErrorIs(t, err, ucs.ErrNonPositiveCost)
}

// ------------------------------------------------------------------------
// 2. Unit cost behaves like BFS
// ------------------------------------------------------------------------

func TestUCS_UnitLadderScenario(t *testing.T) {
	g := mustBuild(t, testdict.Ladder)
	res, err := ucs.UCS(g, "CAT", "DOG")
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []string{"CAT", "CAG", "COG", "DOG"}, res.Path)
	assert.Equal(t, 3, res.Cost)
}

func TestUCS_UnitMatchesBFS(t *testing.T) {
	g := mustBuild(t, testdict.Random(11, 300, 4, 6))
	words := g.Words()
	for i := 0; i < len(words); i += 17 {
		for j := 0; j < len(words); j += 23 {
			want, err := bfs.BFS(g, words[i], words[j])
			require.NoError(t, err)
			got, err := ucs.UCS(g, words[i], words[j])
			require.NoError(t, err)
			require.Equal(t, want.Status, got.Status)
			assert.Equal(t, want.Steps(), got.Steps(), "%s→%s", words[i], words[j])
			if got.Found() {
				assert.Equal(t, got.Steps(), got.Cost)
			}
		}
	}
}

func TestUCS_EdgeScenarios(t *testing.T) {
	pair := mustBuild(t, testdict.Pair)
	res, err := ucs.UCS(pair, "AAAA", "AAAB")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAA", "AAAB"}, res.Path)

	disc := mustBuild(t, testdict.Disconnected)
	res, err = ucs.UCS(disc, "AAAA", "BBBB")
	require.NoError(t, err)
	assert.Equal(t, core.NotFound, res.Status)
	assert.Nil(t, res.Path)

	res, err = ucs.UCS(disc, "AAAA", "AAAA", ucs.WithCost(cost.LetterFrequency))
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAA"}, res.Path)
	assert.Equal(t, 0, res.Cost)
}

// ------------------------------------------------------------------------
// 3. Letter-frequency cost
// ------------------------------------------------------------------------

func TestUCS_LetterFrequencyPrefersCommonLetters(t *testing.T) {
	g := mustBuild(t, detour)

	short, err := bfs.BFS(g, "AAA", "BBA")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "AZA", "BZA", "BBA"}, short.Path)
	shortCost, err := cost.PathCost(short.Path, cost.LetterFrequency)
	require.NoError(t, err)
	assert.Equal(t, 11, shortCost)

	res, err := ucs.UCS(g, "AAA", "BBA", ucs.WithCost(cost.LetterFrequency))
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []string{"AAA", "AEA", "EEA", "EBA", "BBA"}, res.Path)
	assert.Equal(t, 8, res.Cost)
	assert.True(t, core.IsLadder(g, res.Path))
}

// TestUCS_LetterFrequencyOptimal checks the returned cost never exceeds the
// letter cost of the BFS ladder, and that each word is expanded at most once
// even though stale entries are left in the heap.
func TestUCS_LetterFrequencyOptimal(t *testing.T) {
	g := mustBuild(t, testdict.Random(3, 500, 4, 7))
	words := g.Words()
	for i := 0; i < len(words); i += 31 {
		for j := len(words) - 1; j >= 0; j -= 37 {
			expanded := map[string]int{}
			res, err := ucs.UCS(g, words[i], words[j],
				ucs.WithCost(cost.LetterFrequency),
				ucs.WithOnExpand(func(w string, _, _ int) { expanded[w]++ }),
			)
			require.NoError(t, err)
			for w, n := range expanded {
				require.Equal(t, 1, n, "word %s expanded %d times", w, n)
			}

			ref, err := bfs.BFS(g, words[i], words[j])
			require.NoError(t, err)
			require.Equal(t, ref.Status, res.Status)
			if !res.Found() {
				continue
			}
			refCost, err := cost.PathCost(ref.Path, cost.LetterFrequency)
			require.NoError(t, err)
			assert.LessOrEqual(t, res.Cost, refCost)

			got, err := cost.PathCost(res.Path, cost.LetterFrequency)
			require.NoError(t, err)
			assert.Equal(t, res.Cost, got)
		}
	}
}

func TestUCS_Idempotent(t *testing.T) {
	g := mustBuild(t, testdict.Classic)
	first, err := ucs.UCS(g, "COAT", "WARM", ucs.WithCost(cost.LetterFrequency))
	require.NoError(t, err)
	second, err := ucs.UCS(g, "COAT", "WARM", ucs.WithCost(cost.LetterFrequency))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUCS_Cancelled(t *testing.T) {
	g := mustBuild(t, testdict.Classic)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := ucs.UCS(g, "COLD", "WARM", ucs.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, core.Cancelled, res.Status)
}
