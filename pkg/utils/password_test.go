package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("p1")
	require.NoError(t, err)
	require.NotEqual(t, "p1", hash)

	assert.True(t, CheckPassword(hash, "p1"))
	assert.False(t, CheckPassword(hash, "p2"))
}

func TestHashPasswordSalted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
