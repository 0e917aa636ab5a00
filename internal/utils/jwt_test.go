package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestUserTokenRoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateUserToken(7, "kim@example.com", testSecret)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), expiresAt, time.Minute)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "kim@example.com", claims.Email)
	assert.Equal(t, string(UserToken), claims.Type)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateUserToken(7, "kim@example.com", testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateAdminToken(t *testing.T) {
	t.Run("admin token accepted", func(t *testing.T) {
		token, _, err := GenerateAdminToken(1, "admin@example.com", "admin", testSecret)
		require.NoError(t, err)

		claims, err := ValidateAdminToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("super_admin accepted identically", func(t *testing.T) {
		token, _, err := GenerateAdminToken(2, "root@example.com", "super_admin", testSecret)
		require.NoError(t, err)

		_, err = ValidateAdminToken(token, testSecret)
		assert.NoError(t, err)
	})

	t.Run("customer token rejected", func(t *testing.T) {
		token, _, err := GenerateUserToken(7, "kim@example.com", testSecret)
		require.NoError(t, err)

		_, err = ValidateAdminToken(token, testSecret)
		require.Error(t, err)
		assert.Equal(t, "authentication required", err.Error())
	})

	t.Run("malformed token gets the same error", func(t *testing.T) {
		_, err := ValidateAdminToken("not-a-token", testSecret)
		require.Error(t, err)
		assert.Equal(t, "authentication required", err.Error())
	})
}
