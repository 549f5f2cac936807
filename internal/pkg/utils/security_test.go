package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	assert.NoError(t, err)
	assert.NotEqual(t, "Sup3r$ecret", hash)

	assert.True(t, CheckPasswordHash("Sup3r$ecret", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestSessionJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateSessionJWT("session-1", secret, 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sessionID, err := ParseJWT(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		_, err := ParseJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		_, err := ParseJWT("not-a-token", secret)
		assert.Error(t, err)
	})
}
