// Package token issues and validates the signed, scoped, time-bounded
// tokens used by the API: short-lived access tokens, long-lived refresh
// tokens and email-confirmation tokens. A token minted for one scope can
// never be accepted where another scope is expected.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Scope restricts a token to one purpose.
type Scope string

const (
	ScopeAccess  Scope = "access_token"
	ScopeRefresh Scope = "refresh_token"
	ScopeEmail   Scope = "email_scope"
)

var (
	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for structurally valid but expired tokens.
	ErrTokenExpired = errors.New("token expired")
	// ErrScopeMismatch is returned when a valid token carries the wrong scope.
	ErrScopeMismatch = errors.New("invalid scope for token")
)

// Claims are the registered claims plus the purpose scope.
type Claims struct {
	jwt.RegisteredClaims
	Scope Scope `json:"scope"`
}

// Service signs and verifies tokens with a process-wide secret that is
// loaded once at startup and never mutated.
type Service struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	emailExpiry   time.Duration
}

func NewService(secret string, accessExpiry, refreshExpiry, emailExpiry time.Duration) *Service {
	return &Service{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		emailExpiry:   emailExpiry,
	}
}

// Issue signs a token for the given subject, validity window and scope.
func (s *Service) Issue(subject string, validity time.Duration, scope Scope) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Scope: scope,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) IssueAccess(subject string) (string, error) {
	return s.Issue(subject, s.accessExpiry, ScopeAccess)
}

func (s *Service) IssueRefresh(subject string) (string, error) {
	return s.Issue(subject, s.refreshExpiry, ScopeRefresh)
}

func (s *Service) IssueEmail(subject string) (string, error) {
	return s.Issue(subject, s.emailExpiry, ScopeEmail)
}

// Decode verifies signature and expiry, then checks that the token was
// issued for the expected scope, and returns the subject. Signature and
// format problems yield ErrInvalidToken, expiry yields ErrTokenExpired and
// a scope mismatch yields ErrScopeMismatch; callers at the HTTP boundary
// collapse all three into one generic unauthenticated response.
func (s *Service) Decode(tokenString string, expected Scope) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Scope != expected {
		return "", ErrScopeMismatch
	}
	return claims.Subject, nil
}
