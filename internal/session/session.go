package session

import (
	"context"
	"errors"
	"time"
)

// Package session holds server-side admin session records keyed by an
// opaque token. The record lives independently of the user document and
// expires with its TTL.

// ErrNotFound is returned when no session exists for a token.
var ErrNotFound = errors.New("session not found")

// Session is the role claim set resolved from a token.
type Session struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

// HasRole reports whether the session carries the given role.
func (s *Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Store is the session persistence collaborator.
type Store interface {
	// Get resolves a token. Returns ErrNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (*Session, error)

	// Set stores a session under token with the given TTL.
	Set(ctx context.Context, token string, s *Session, ttl time.Duration) error

	// Delete removes a session. Deleting an absent token is a no-op.
	Delete(ctx context.Context, token string) error
}
