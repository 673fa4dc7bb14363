package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/internal/testdict"
)

// requireSymmetric asserts v ∈ N(u) ⇔ u ∈ N(v) and that every edge is a single edit.
func requireSymmetric(t *testing.T, g *core.WordGraph) {
	t.Helper()
	for _, u := range g.Words() {
		for _, v := range g.Neighbors(u) {
			require.True(t, core.DifferByOne(u, v), "edge %s-%s", u, v)
			require.Contains(t, g.Neighbors(v), u, "symmetry %s-%s", u, v)
		}
	}
}

func TestBuild_LadderScenario(t *testing.T) {
	g, err := core.Build(testdict.Ladder)
	require.NoError(t, err)

	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 3, g.WordLength())
	assert.Equal(t, []string{"CAG", "COT"}, g.Neighbors("CAT"))
	assert.Equal(t, []string{"CAT", "COG", "DOT"}, g.Neighbors("COT"))
	assert.Equal(t, []string{"COG", "DOT"}, g.Neighbors("DOG"))
	// CAT-COT, CAT-CAG, CAG-COG, COT-COG, COT-DOT, COG-DOG, DOG-DOT
	assert.Equal(t, 7, g.Edges())
	requireSymmetric(t, g)
}

func TestBuild_IsolatedAndEmpty(t *testing.T) {
	g, err := core.Build(testdict.Disconnected)
	require.NoError(t, err)
	assert.True(t, g.HasWord("AAAA"))
	assert.True(t, g.HasWord("BBBB"))
	assert.NotNil(t, g.Neighbors("AAAA"))
	assert.Empty(t, g.Neighbors("AAAA"))
	assert.Equal(t, 0, g.Edges())
	assert.Equal(t, 2, g.Stats().Isolated)

	empty, err := core.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.Edges())
	assert.False(t, empty.HasWord("AAAA"))
}

func TestBuild_Duplicates(t *testing.T) {
	g, err := core.Build([]string{"AAAA", "AAAB", "AAAA"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []string{"AAAB"}, g.Neighbors("AAAA"))
	assert.Equal(t, 1, g.Edges())
}

func TestBuild_RejectsMalformed(t *testing.T) {
	_, err := core.Build([]string{"CAT", "DOGS"})
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = core.Build([]string{"cat"})
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = core.Build([]string{"CAT"}, core.WithWordLength(5))
	assert.ErrorIs(t, err, core.ErrDomain)

	g, err := core.Build(nil, core.WithWordLength(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.WordLength())
}

// TestBuild_MatchesPairwise verifies the bucketed builder produces exactly the
// graph the naive pairwise scan produces.
func TestBuild_MatchesPairwise(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		words := testdict.Random(seed, 400, 4, 6)
		fast, err := core.Build(words)
		require.NoError(t, err)
		slow, err := core.BuildPairwise(words)
		require.NoError(t, err)

		assert.Equal(t, slow.Words(), fast.Words())
		assert.Equal(t, slow.Edges(), fast.Edges())
		assert.Equal(t, slow.Adjacency(), fast.Adjacency())
		requireSymmetric(t, fast)
	}
}

func TestFromAdjacency_RoundTrip(t *testing.T) {
	g, err := core.Build(testdict.Classic)
	require.NoError(t, err)

	back, err := core.FromAdjacency(g.Adjacency())
	require.NoError(t, err)
	assert.Equal(t, g.Adjacency(), back.Adjacency())
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.Stats(), back.Stats())
}

func TestFromAdjacency_Invalid(t *testing.T) {
	cases := map[string]map[string][]string{
		"asymmetric":    {"AAAA": {"AAAB"}, "AAAB": {}},
		"not single":    {"AAAA": {"BBBB"}, "BBBB": {"AAAA"}},
		"unknown":       {"AAAA": {"AAAB"}},
		"duplicate":     {"AAAA": {"AAAB", "AAAB"}, "AAAB": {"AAAA"}},
		"mixed lengths": {"AAAA": {}, "AAA": {}},
	}
	for name, adj := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := core.FromAdjacency(adj)
			assert.ErrorIs(t, err, core.ErrInvalidGraph)
		})
	}
}

func TestAdjacency_IsCopy(t *testing.T) {
	g, err := core.Build(testdict.Pair)
	require.NoError(t, err)

	adj := g.Adjacency()
	adj["AAAA"][0] = "ZZZZ"
	assert.Equal(t, []string{"AAAB"}, g.Neighbors("AAAA"))
}

func TestStats(t *testing.T) {
	g, err := core.Build(testdict.Classic)
	require.NoError(t, err)

	s := g.Stats()
	assert.Equal(t, 4, s.WordLength)
	assert.Equal(t, len(testdict.Classic), s.Words)
	assert.Equal(t, g.Edges(), s.Edges)
	assert.Equal(t, 1, s.Isolated)
	assert.Positive(t, s.MaxDegree)
}
