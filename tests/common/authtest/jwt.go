//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"room-reserve/internal/pkg/authtoken"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a token the way the upstream identity service would,
// so e2e requests can authenticate without a login endpoint.
func IssueToken(t *testing.T, secret string, userID uuid.UUID) string {
	t.Helper()
	return IssueTokenWithRole(t, secret, userID, "member")
}

func IssueTokenWithRole(t *testing.T, secret string, userID uuid.UUID, role string) string {
	t.Helper()

	claims := authtoken.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err, "failed to sign test token")

	return token
}
