package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/internal/testdict"
)

func TestValidateEndpoints(t *testing.T) {
	g, err := core.Build(testdict.Ladder)
	require.NoError(t, err)

	assert.NoError(t, core.ValidateEndpoints(g, "CAT", "DOG"))
	assert.ErrorIs(t, core.ValidateEndpoints(g, "BAT", "DOG"), core.ErrDomain)
	assert.ErrorIs(t, core.ValidateEndpoints(g, "CAT", "DOGS"), core.ErrDomain)
}

func TestReconstruct(t *testing.T) {
	parent := map[string]string{"COT": "CAT", "DOT": "COT", "DOG": "DOT"}
	assert.Equal(t, []string{"CAT", "COT", "DOT", "DOG"}, core.Reconstruct(parent, "DOG"))
	assert.Equal(t, []string{"CAT"}, core.Reconstruct(parent, "CAT"))
}

func TestIsLadder(t *testing.T) {
	g, err := core.Build(testdict.Ladder)
	require.NoError(t, err)

	assert.True(t, core.IsLadder(g, []string{"CAT", "COT", "COG", "DOG"}))
	assert.True(t, core.IsLadder(g, []string{"CAT"}))
	assert.False(t, core.IsLadder(g, []string{"CAT", "DOG"}))
	assert.False(t, core.IsLadder(g, nil))
	assert.False(t, core.IsLadder(g, []string{"BAT"}))
}

func TestResultHelpers(t *testing.T) {
	var nilResult *core.Result
	assert.False(t, nilResult.Found())
	assert.Equal(t, -1, nilResult.Steps())

	r := core.SinglePath("CAT")
	assert.True(t, r.Found())
	assert.Equal(t, 0, r.Steps())

	assert.Equal(t, "found", core.Found.String())
	assert.Equal(t, "not_found", core.NotFound.String())
	assert.Equal(t, "cancelled", core.Cancelled.String())
	assert.Equal(t, "aborted", core.Aborted.String())
	assert.Equal(t, "status(9)", core.Status(9).String())
}

func TestStatus_Text(t *testing.T) {
	for _, s := range []core.Status{core.NotFound, core.Found, core.Cancelled, core.Aborted} {
		b, err := s.MarshalText()
		require.NoError(t, err)

		var back core.Status
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}

	var s core.Status
	assert.Error(t, s.UnmarshalText([]byte("lost")))
}
