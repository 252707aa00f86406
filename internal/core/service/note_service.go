package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quicknotes/notes-api/internal/core/domain"
	"github.com/quicknotes/notes-api/internal/core/ports"
)

// NoteService implements note CRUD scoped to the acting user.
type NoteService struct {
	notes ports.NoteRepository
	log   zerolog.Logger
}

func NewNoteService(notes ports.NoteRepository, log zerolog.Logger) *NoteService {
	return &NoteService{notes: notes, log: log}
}

// List returns every note owned by the user. No notes is an empty slice,
// not an error.
func (s *NoteService) List(ctx context.Context, username string, userID int64) ([]*domain.Note, error) {
	if username == "" || userID == 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.notes.ListByOwner(ctx, username, userID)
}

// Add persists a new note and returns it with the assigned id.
func (s *NoteService) Add(ctx context.Context, in ports.AddNoteInput) (*domain.Note, error) {
	if in.Title == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}

	note := &domain.Note{
		Title:       in.Title,
		Description: in.Description,
		Username:    in.Username,
		Status:      in.Status,
		UserID:      in.UserID,
	}

	created, err := s.notes.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("note_id", created.ID).Str("username", in.Username).Msg("note added")
	return created, nil
}

// Update rewrites title and description of a note owned by username.
func (s *NoteService) Update(ctx context.Context, id int64, username, title, description string) (*domain.Note, error) {
	if id == 0 || username == "" || title == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}

	if err := s.notes.Update(ctx, id, username, title, description); err != nil {
		return nil, err
	}

	return &domain.Note{ID: id, Title: title, Description: description, Username: username}, nil
}

// UpdateStatus moves a note into one of the fixed status buckets. A missing
// note is still reported as success, matching the wire contract.
func (s *NoteService) UpdateStatus(ctx context.Context, id int64, username string, status domain.NoteStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}
	return s.notes.UpdateStatus(ctx, id, username, status)
}

// Delete removes a note owned by username.
func (s *NoteService) Delete(ctx context.Context, id int64, username string) error {
	if id == 0 || username == "" {
		return domain.ErrInvalidInput
	}
	if err := s.notes.Delete(ctx, id, username); err != nil {
		return err
	}
	s.log.Info().Int64("note_id", id).Str("username", username).Msg("note deleted")
	return nil
}
