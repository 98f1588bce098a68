package authtoken

import (
	"errors"

	"room-reserve/internal/pkg/config"
	"room-reserve/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tokens are issued by the upstream identity service; this package only
// verifies them. Signing keys are shared out of band via AUTH_TOKEN_SECRET.

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrTokenExpired = errs.New("token expired")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Verifier interface {
	Verify(tokenString string) (uuid.UUID, string, error)
}

type hmacVerifier struct {
	secret []byte
	issuer string
}

func NewVerifier(cfg config.AuthConfig) Verifier {
	return &hmacVerifier{
		secret: []byte(cfg.TokenSecret),
		issuer: cfg.Issuer,
	}
}

func (v *hmacVerifier) Verify(tokenString string) (uuid.UUID, string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, "", errs.Mark(err, ErrTokenExpired)
		}
		return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
	}
	if !token.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", errs.Mark(errs.Wrap(err, "subject is not a user id"), ErrInvalidToken)
	}

	return userID, claims.Role, nil
}
