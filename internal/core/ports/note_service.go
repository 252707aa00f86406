package ports

import (
	"context"

	"github.com/quicknotes/notes-api/internal/core/domain"
)

// AddNoteInput carries the fields for creating a note. Username and UserID
// come from the resolved session, never from the request body.
type AddNoteInput struct {
	Title       string
	Description string
	Status      domain.NoteStatus
	Username    string
	UserID      int64
}

// NoteService covers all note operations, scoped to the acting user.
type NoteService interface {
	List(ctx context.Context, username string, userID int64) ([]*domain.Note, error)
	Add(ctx context.Context, in AddNoteInput) (*domain.Note, error)
	Update(ctx context.Context, id int64, username, title, description string) (*domain.Note, error)
	UpdateStatus(ctx context.Context, id int64, username string, status domain.NoteStatus) error
	Delete(ctx context.Context, id int64, username string) error
}
