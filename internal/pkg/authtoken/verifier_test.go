//go:build unit

package authtoken_test

import (
	"testing"
	"time"

	"room-reserve/internal/pkg/authtoken"
	"room-reserve/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, mutate func(*authtoken.Claims)) string {
	t.Helper()

	claims := &authtoken.Claims{
		Role: "member",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    "identity.example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	if mutate != nil {
		mutate(claims)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerify(t *testing.T) {
	verifier := authtoken.NewVerifier(config.AuthConfig{
		TokenSecret: testSecret,
		Issuer:      "identity.example.com",
	})

	t.Run("valid token", func(t *testing.T) {
		subject := uuid.New()
		token := signToken(t, testSecret, func(c *authtoken.Claims) {
			c.Subject = subject.String()
			c.Role = "admin"
		})

		userID, role, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, subject, userID)
		assert.Equal(t, "admin", role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", nil)

		_, _, err := verifier.Verify(token)
		assert.ErrorIs(t, err, authtoken.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret, func(c *authtoken.Claims) {
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		})

		_, _, err := verifier.Verify(token)
		assert.ErrorIs(t, err, authtoken.ErrTokenExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token := signToken(t, testSecret, func(c *authtoken.Claims) {
			c.Issuer = "someone-else"
		})

		_, _, err := verifier.Verify(token)
		assert.ErrorIs(t, err, authtoken.ErrInvalidToken)
	})

	t.Run("issuer ignored when not configured", func(t *testing.T) {
		lax := authtoken.NewVerifier(config.AuthConfig{TokenSecret: testSecret})
		token := signToken(t, testSecret, func(c *authtoken.Claims) {
			c.Issuer = "anything"
		})

		_, _, err := lax.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		token := signToken(t, testSecret, func(c *authtoken.Claims) {
			c.Subject = "user-42"
		})

		_, _, err := verifier.Verify(token)
		assert.ErrorIs(t, err, authtoken.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, err := verifier.Verify("not.a.jwt")
		assert.ErrorIs(t, err, authtoken.ErrInvalidToken)
	})

	t.Run("unexpected signing algorithm", func(t *testing.T) {
		// alg=none style tokens must never pass.
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: uuid.NewString(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, _, verr := verifier.Verify(unsigned)
		assert.ErrorIs(t, verr, authtoken.ErrInvalidToken)
	})
}
