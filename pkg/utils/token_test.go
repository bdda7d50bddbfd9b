package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appErrors "team-portal/pkg/errors"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	token, err := GenerateSessionToken(userID, "alice@example.com", "Alice", "user", "secret", 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "user", claims.Role)
}

func TestSessionTokenExpired(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken(uuid.New(), "bob@example.com", "Bob", "user", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "secret")
	assert.ErrorIs(t, err, appErrors.ErrTokenExpired)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken(uuid.New(), "bob@example.com", "Bob", "user", "right-secret", 24)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "wrong-secret")
	assert.ErrorIs(t, err, appErrors.ErrTokenInvalid)
}

func TestSessionTokenMalformed(t *testing.T) {
	t.Parallel()

	_, err := ValidateSessionToken("not.a.jwt", "secret")
	assert.ErrorIs(t, err, appErrors.ErrTokenInvalid)
}

func TestGenerateResetTokenUnique(t *testing.T) {
	t.Parallel()

	a := GenerateResetToken()
	b := GenerateResetToken()

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
