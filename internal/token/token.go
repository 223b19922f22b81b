package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"solosphere-server/internal/marketerrors"
	"solosphere-server/utils"
)

// Claims carries the session identity inside a signed token
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed session tokens bound to a user email
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service signing with the given shared secret.
// ttl is the validity window of issued tokens.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed token encoding the given email
func (s *Service) Issue(email string) (string, error) {
	now := time.Now()

	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.GenerateID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: failed to sign: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry of a token and returns the
// embedded email. Every failure mode (empty, malformed, tampered, expired,
// wrong algorithm) collapses into ErrInvalidToken; callers get no finer
// detail than "the session is not valid".
func (s *Service) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", marketerrors.ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Email == "" {
		return "", marketerrors.ErrInvalidToken
	}

	return claims.Email, nil
}
