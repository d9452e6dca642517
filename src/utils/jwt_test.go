package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		token, err := GenerateJWT("64f0c1e2a1b2c3d4e5f60718", "FF-1042", "j.archer@firewatch.dev", "Captain")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := ParseJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "64f0c1e2a1b2c3d4e5f60718", claims.UserID)
		assert.Equal(t, "FF-1042", claims.EmployeeID)
		assert.Equal(t, "j.archer@firewatch.dev", claims.Email)
		assert.Equal(t, "Captain", claims.Role)
	})

	t.Run("ExpiryIsSet", func(t *testing.T) {
		token, err := GenerateJWT("id", "emp", "a@b.c", "Firefighter")
		assert.NoError(t, err)

		claims, err := ParseJWT(token)
		assert.NoError(t, err)
		assert.NotNil(t, claims.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		_, err := ParseJWT("")
		assert.Error(t, err)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := ParseJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("WrongSecretRejected", func(t *testing.T) {
		claims := JWTClaims{
			UserID: "id",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other_secret"))
		assert.NoError(t, err)

		_, err = ParseJWT(forged)
		assert.Error(t, err)
	})

	t.Run("ExpiredTokenRejected", func(t *testing.T) {
		claims := JWTClaims{
			UserID: "id",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("your_secret_key"))
		assert.NoError(t, err)

		_, err = ParseJWT(expired)
		assert.Error(t, err)
	})
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(32)
	assert.Len(t, s, 32)
	assert.NotEqual(t, s, GenerateRandomString(32))
}
