package ports

import (
	"context"

	"github.com/quicknotes/notes-api/internal/core/domain"
)

// AuthService covers registration and the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, id int64, username, password, email, name string) (*domain.User, error)
	// Login returns the session token on success.
	Login(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Resolve(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}
