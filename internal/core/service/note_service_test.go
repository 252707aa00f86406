package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quicknotes/notes-api/internal/core/domain"
	"github.com/quicknotes/notes-api/internal/core/ports"
)

type stubNoteRepo struct {
	notes  map[int64]*domain.Note
	nextID int64
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{notes: make(map[int64]*domain.Note)}
}

func (r *stubNoteRepo) ListByOwner(_ context.Context, username string, userID int64) ([]*domain.Note, error) {
	out := make([]*domain.Note, 0)
	for _, n := range r.notes {
		if n.Username == username && n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNoteRepo) Create(_ context.Context, note *domain.Note) (*domain.Note, error) {
	r.nextID++
	note.ID = r.nextID
	clone := *note
	r.notes[note.ID] = &clone
	return note, nil
}

func (r *stubNoteRepo) Update(_ context.Context, id int64, username, title, description string) error {
	n, ok := r.notes[id]
	if !ok || n.Username != username {
		return domain.ErrNoteNotFound
	}
	n.Title = title
	n.Description = description
	return nil
}

func (r *stubNoteRepo) UpdateStatus(_ context.Context, id int64, username string, status domain.NoteStatus) error {
	if n, ok := r.notes[id]; ok && n.Username == username {
		n.Status = status
	}
	return nil
}

func (r *stubNoteRepo) Delete(_ context.Context, id int64, username string) error {
	n, ok := r.notes[id]
	if !ok || n.Username != username {
		return domain.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

func newNoteService(repo *stubNoteRepo) *NoteService {
	return NewNoteService(repo, zerolog.Nop())
}

func TestNoteService_AddThenList(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newNoteService(repo)

	note, err := svc.Add(context.Background(), ports.AddNoteInput{
		Title:       "t",
		Description: "d",
		Status:      domain.StatusPin,
		Username:    "a",
		UserID:      1,
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if note.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", note.ID)
	}

	notes, err := svc.List(context.Background(), "a", 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "t" || notes[0].Description != "d" {
		t.Fatalf("unexpected list: %+v", notes)
	}
}

func TestNoteService_Add_Validation(t *testing.T) {
	svc := newNoteService(newStubNoteRepo())

	if _, err := svc.Add(context.Background(), ports.AddNoteInput{Description: "d"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}
	if _, err := svc.Add(context.Background(), ports.AddNoteInput{Title: "t"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing description, got %v", err)
	}
}

func TestNoteService_List_EmptyIsNotAnError(t *testing.T) {
	svc := newNoteService(newStubNoteRepo())

	notes, err := svc.List(context.Background(), "nobody", 42)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Fatalf("expected empty slice, got %#v", notes)
	}
}

func TestNoteService_Update_NotFound(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newNoteService(repo)

	_, _ = svc.Add(context.Background(), ports.AddNoteInput{Title: "t", Description: "d", Username: "owner", UserID: 1})

	if _, err := svc.Update(context.Background(), 1, "intruder", "x", "y"); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound for wrong owner, got %v", err)
	}
	if repo.notes[1].Title != "t" {
		t.Fatalf("row should be untouched, got %+v", repo.notes[1])
	}
}

func TestNoteService_Update_Success(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newNoteService(repo)

	_, _ = svc.Add(context.Background(), ports.AddNoteInput{Title: "t", Description: "d", Username: "owner", UserID: 1})

	note, err := svc.Update(context.Background(), 1, "owner", "t2", "d2")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if note.ID != 1 || note.Title != "t2" || note.Description != "d2" {
		t.Fatalf("unexpected note: %+v", note)
	}
	if repo.notes[1].Title != "t2" {
		t.Fatalf("update not persisted: %+v", repo.notes[1])
	}
}

func TestNoteService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newNoteService(repo)

	_, _ = svc.Add(context.Background(), ports.AddNoteInput{Title: "t", Description: "d", Status: domain.StatusPin, Username: "a", UserID: 1})

	if err := svc.UpdateStatus(context.Background(), 1, "a", "starred"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.notes[1].Status != domain.StatusPin {
		t.Fatalf("status should be unchanged, got %s", repo.notes[1].Status)
	}
}

func TestNoteService_UpdateStatus_MissingNoteIsSuccess(t *testing.T) {
	svc := newNoteService(newStubNoteRepo())

	if err := svc.UpdateStatus(context.Background(), 99, "a", domain.StatusBin); err != nil {
		t.Fatalf("expected success on missing row, got %v", err)
	}
}

func TestNoteService_Delete_WrongOwner(t *testing.T) {
	repo := newStubNoteRepo()
	svc := newNoteService(repo)

	_, _ = svc.Add(context.Background(), ports.AddNoteInput{Title: "t", Description: "d", Username: "owner", UserID: 1})

	if err := svc.Delete(context.Background(), 1, "intruder"); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
	if _, ok := repo.notes[1]; !ok {
		t.Fatalf("row should still exist")
	}

	if err := svc.Delete(context.Background(), 1, "owner"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.notes[1]; ok {
		t.Fatalf("row should be gone")
	}
}
