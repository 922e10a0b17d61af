package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New().String()

	token, expiresAt, err := GenerateToken(userID, "customer", "test-secret", time.Hour)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New().String(), "admin", "secret-a", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret-b")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, _, err := GenerateToken(uuid.New().String(), "customer", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "test-secret")
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
