package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the role claim required to enter any guarded screen.
const AdminRole = "admin"

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrExpired     = errors.New("session expired")
	ErrNotAdmin    = errors.New("session is not an admin session")
)

// Claims are the token fields the guard inspects. The decode is advisory:
// the signature is not verified here because the backend re-checks the token
// on every API call; the guard only avoids rendering a screen that is bound
// to be rejected.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Claims decodes the session token without verifying its signature.
func (s *Session) Claims() (*Claims, error) {
	if s.Token == "" {
		return nil, ErrNotLoggedIn
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return nil, fmt.Errorf("decoding session token: %w", err)
	}
	return claims, nil
}

// Check is the route guard: it fails when the session is absent, its token
// expired, or its role claim is not the privileged one. Callers abort before
// issuing any request or rendering any screen.
func (s *Session) Check(now time.Time) error {
	claims, err := s.Claims()
	if err != nil {
		return err
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return ErrExpired
	}
	if claims.Role != AdminRole {
		return ErrNotAdmin
	}
	return nil
}

// Valid reports whether Check would pass right now.
func (s *Session) Valid() bool {
	return s.Check(time.Now()) == nil
}
