package ports

import (
	"context"

	"github.com/quicknotes/notes-api/internal/core/domain"
)

// NoteRepository defines persistence operations for notes. Every mutation is
// filtered by (id, username) so ownership is enforced inside the statement.
type NoteRepository interface {
	ListByOwner(ctx context.Context, username string, userID int64) ([]*domain.Note, error)
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, id int64, username, title, description string) error
	// UpdateStatus applies the status unconditionally; a missing row is not an
	// error (see DESIGN.md).
	UpdateStatus(ctx context.Context, id int64, username string, status domain.NoteStatus) error
	Delete(ctx context.Context, id int64, username string) error
}
