package helper

import (
	"testing"

	"github.com/Taulan23/kino-system/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	JwtSecret = []byte("test-secret")

	claim := model.TokenClaim{UserId: 42, Username: "alice", Role: "user"}
	token, err := GenerateAccessToken(claim)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "user", claims["role"])
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	JwtSecret = []byte("test-secret")
	token, err := GenerateAccessToken(model.TokenClaim{UserId: 1, Username: "alice"})
	require.NoError(t, err)

	JwtSecret = []byte("other-secret")
	parsed, err := ParseToken(token)
	assert.Error(t, err)
	if parsed != nil {
		assert.False(t, parsed.Valid)
	}
}

func TestRefreshTokenCarriesIdentity(t *testing.T) {
	JwtSecret = []byte("test-secret")

	token, err := GenerateRefreshToken(model.TokenClaim{UserId: 7, Username: "bob"})
	require.NoError(t, err)

	parsed, err := ParseToken(token)
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["userId"])
	assert.Equal(t, "bob", claims["username"])
}
