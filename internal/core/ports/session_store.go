package ports

import (
	"context"
	"time"

	"github.com/quicknotes/notes-api/internal/core/domain"
)

// SessionTTL is the fixed lifetime of a session and of its cookie.
const SessionTTL = 24 * time.Hour

// SessionStore associates opaque tokens with user snapshots taken at login.
// Implementations expire entries after SessionTTL.
type SessionStore interface {
	// Create binds a fresh unguessable token to the given user snapshot.
	Create(ctx context.Context, user *domain.User) (string, error)
	// Get resolves a token; domain.ErrSessionNotFound when absent or expired.
	Get(ctx context.Context, token string) (*domain.User, error)
	// Delete destroys the session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
