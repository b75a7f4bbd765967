package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "schoolhub_backend/internals/features/users/user/model"
)

const testSecret = "unit-test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &userModel.UserModel{ID: uuid.New(), Role: userModel.RoleTeacher}

	signed, exp, err := GenerateAccessToken(testSecret, user, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	tok, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, userModel.RoleTeacher, claims["role"])
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	user := &userModel.UserModel{ID: uuid.New(), Role: userModel.RoleStudent}
	signed, _, err := GenerateAccessToken(testSecret, user, time.Hour)
	require.NoError(t, err)

	tok, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("some-other-secret"), nil
	})
	assert.Error(t, err)
	assert.False(t, tok != nil && tok.Valid)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	signed, exp, err := GenerateRefreshToken(testSecret, userID)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now().Add(6*24*time.Hour)), "refresh token should live for days")

	parsed, err := ParseRefreshToken(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)

	_, err = ParseRefreshToken(signed, "wrong-secret")
	assert.Error(t, err)
}

func TestHashRefreshToken(t *testing.T) {
	a := HashRefreshToken("token-a", testSecret)
	b := HashRefreshToken("token-a", testSecret)
	c := HashRefreshToken("token-b", testSecret)
	d := HashRefreshToken("token-a", "different-secret")

	assert.Equal(t, a, b, "same input hashes identically")
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.Len(t, a, 32)
}
