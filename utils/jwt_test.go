package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdesk/config"
)

func TestJWTRoundTrip(t *testing.T) {
	config.AppConfig = config.Config{JWTSecret: "test-secret"}

	token, err := GenerateJWT("user-1", "a@b.c", "ADMIN", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestValidateJWTRejectsBadInput(t *testing.T) {
	config.AppConfig = config.Config{JWTSecret: "test-secret"}

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)

	expired, err := GenerateJWT("user-1", "a@b.c", "EMPLOYEE", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = ValidateJWT(expired)
	assert.Error(t, err)

	config.AppConfig.JWTSecret = "different-secret"
	fresh, err := GenerateJWT("user-1", "a@b.c", "EMPLOYEE", time.Now().Add(time.Hour))
	require.NoError(t, err)
	config.AppConfig.JWTSecret = "test-secret"
	_, err = ValidateJWT(fresh)
	assert.Error(t, err)
}
