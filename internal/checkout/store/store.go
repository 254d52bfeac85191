package store

import (
	"errors"

	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/domain"
)

var ErrSessionNotFound = errors.New("checkout session not found")

// SessionStore holds in-progress checkout sessions, one per shopper session.
type SessionStore interface {
	// Get returns a copy of the session or ErrSessionNotFound.
	Get(sessionID string) (*domain.Session, error)

	// Put stores or replaces the session.
	Put(session *domain.Session)

	// Delete discards the session. Deleting an absent session is a no-op.
	Delete(sessionID string)

	// Close shuts down the store and any background processes
	Close() error
}
