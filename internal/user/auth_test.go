package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateAndParseJWT(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		token, err := GenerateJWT(7, "ADMIN", "staff@crm.local")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.Equal(t, "ADMIN", claims.Role)
		assert.Equal(t, "staff@crm.local", claims.Email)
	})

	t.Run("Missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := GenerateJWT(1, "USER", "a@b.c")
		assert.Error(t, err)
	})

	t.Run("Garbage token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		_, err := ParseJWT("not-a-token")
		assert.Error(t, err)
	})
}
