package auth

import (
	"testing"
	"time"

	"jobboard_backend/internal/config"
	"jobboard_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.JWT.RefreshTTL = 24
	config.AppConfig = cfg
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	setTestConfig(t)

	tokenStr, err := GenerateAccessToken(42, "alice", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := ParseAccessToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsAdmin)

	userID, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	setTestConfig(t)

	tokenStr, err := GenerateAccessToken(7, "bob", false)
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "another-secret"
	_, err = ParseAccessToken(tokenStr)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	setTestConfig(t)

	_, err := ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = ParseAccessToken("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseAccessTokenExpired(t *testing.T) {
	setTestConfig(t)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Username: "alice",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseAccessToken(tokenStr)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseAccessTokenRejectsNone(t *testing.T) {
	setTestConfig(t)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseAccessToken(tokenStr)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestUserIDFromClaimsBadSubject(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"},
	}
	_, err := UserIDFromClaims(claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
