package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quicknotes/notes-api/internal/core/domain"
)

// NoteRepository persists notes in the notes table. Ownership is enforced by
// the (id, username) filter inside each statement, never by a prior lookup.
type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) ListByOwner(ctx context.Context, username string, userID int64) ([]*domain.Note, error) {
	const query = `
		SELECT id, title, description, username, status, user_id
		FROM notes
		WHERE username = ? AND user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, username, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.Username, &n.Status, &n.UserID); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	const query = `
		INSERT INTO notes (title, description, username, status, user_id)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		note.Title,
		note.Description,
		note.Username,
		note.Status,
		note.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	note.ID = id
	return note, nil
}

func (r *NoteRepository) Update(ctx context.Context, id int64, username, title, description string) error {
	const query = `
		UPDATE notes
		SET title = ?, description = ?
		WHERE id = ? AND username = ?`

	result, err := r.db.ExecContext(ctx, query, title, description, id, username)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	// The connection runs with CLIENT_FOUND_ROWS, so this counts matched
	// rows: an update with unchanged values is not mistaken for a miss.
	if affected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// UpdateStatus deliberately does not check RowsAffected: updating a missing
// note is reported as success (see DESIGN.md).
func (r *NoteRepository) UpdateStatus(ctx context.Context, id int64, username string, status domain.NoteStatus) error {
	const query = `
		UPDATE notes
		SET status = ?
		WHERE id = ? AND username = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id, username); err != nil {
		return fmt.Errorf("update note status: %w", err)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64, username string) error {
	const query = `DELETE FROM notes WHERE id = ? AND username = ?`

	result, err := r.db.ExecContext(ctx, query, id, username)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
