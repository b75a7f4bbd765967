package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "schoolhub_backend/internals/features/users/user/model"
)

const refreshTTL = 7 * 24 * time.Hour

// GenerateAccessToken mints the short-lived HS256 bearer token. Role is
// included as a routing hint only; services re-read it from storage.
func GenerateAccessToken(secret string, user *userModel.UserModel, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	return signed, exp, err
}

// GenerateRefreshToken mints the long-lived token carried in the cookie.
func GenerateRefreshToken(secret string, userID uuid.UUID) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(refreshTTL)
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	return signed, exp, err
}

// HashRefreshToken is what gets persisted; the raw token never is.
func HashRefreshToken(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// ParseRefreshToken validates the refresh JWT and returns its subject.
func ParseRefreshToken(token, secret string) (uuid.UUID, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}
