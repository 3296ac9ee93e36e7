// Package token issues and verifies the signed session tokens that back
// the sessionId cookie.
package token

import (
	"fmt"
	"time"

	"chirp/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the session lifetime used for sign-up and sign-in.
const DefaultTTL = 24 * time.Hour

// Claims is the identity claim carried by a session token.
type Claims struct {
	UID      uint   `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a process-wide secret.
// It performs pure computation only; the secret is fixed at construction.
type Service struct {
	secret   []byte
	ttl      time.Duration
	timeFunc func() time.Time
}

// NewService returns a Service signing with the given secret. The
// secret must be non-empty; config validation enforces that at startup.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret:   []byte(secret),
		ttl:      ttl,
		timeFunc: time.Now,
	}
}

// TTL returns the session lifetime tokens are issued with.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a session token for the given user identity using the
// service default TTL.
func (s *Service) Issue(uid uint, username string) (string, error) {
	return s.IssueWithTTL(uid, username, s.ttl)
}

// IssueWithTTL signs a session token expiring after the given TTL.
func (s *Service) IssueWithTTL(uid uint, username string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("signing secret not configured")
	}

	now := s.timeFunc()
	claims := Claims{
		UID:      uid,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify parses and validates a session token. Malformed, badly signed
// and expired tokens all fail with an Unauthorized-kind error; callers
// never learn which.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeFunc),
	)
	if err != nil || !tok.Valid {
		return nil, models.NewUnauthorizedError("Not Authorized")
	}
	return claims, nil
}
