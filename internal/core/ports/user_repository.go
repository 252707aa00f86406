package ports

import (
	"context"

	"github.com/quicknotes/notes-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsernameAndEmail is the login lookup; both fields must match.
	FindByUsernameAndEmail(ctx context.Context, username, email string) (*domain.User, error)
}
