package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tpb/pkg/domain-errors"
)

// TestParseUserID_Invariants validates the parsing invariant:
// identifiers taken from requests must be positive integers.
func TestParseUserID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseUserID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseUserID("abc")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects zero and negative values", func(t *testing.T) {
		_, err := ParseUserID("0")
		require.Error(t, err)
		_, err = ParseTownID("-4")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts padded positive integer", func(t *testing.T) {
		id, err := ParseUserID(" 42 ")
		require.NoError(t, err)
		assert.Equal(t, UserID(42), id)
		assert.Equal(t, "42", id.String())
		assert.False(t, id.IsZero())
	})
}

func TestZeroValues(t *testing.T) {
	assert.True(t, UserID(0).IsZero())
	assert.True(t, TownID(0).IsZero())
	assert.True(t, StateID(0).IsZero())
	assert.True(t, ThoughtID(0).IsZero())
}
