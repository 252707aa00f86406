package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quicknotes/notes-api/internal/api/metrics"
	"github.com/quicknotes/notes-api/internal/api/middleware"
	"github.com/quicknotes/notes-api/internal/core/domain"
	"github.com/quicknotes/notes-api/internal/core/ports"
)

// NoteHandler serves the note endpoints. All routes sit behind the session
// middleware, and the acting identity always comes from the resolved session,
// so a forged username in the body cannot reach another user's rows.
type NoteHandler struct {
	noteService ports.NoteService
}

func NewNoteHandler(noteService ports.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// List returns every note owned by the acting user.
func (h *NoteHandler) List(c echo.Context) error {
	var req listNotesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := actingUser(c)
	if err != nil {
		return err
	}

	notes, err := h.noteService.List(c.Request().Context(), user.Username, user.ID)
	if err != nil {
		metrics.NoteOpsTotal.WithLabelValues("list", "error").Inc()
		return err
	}

	metrics.NoteOpsTotal.WithLabelValues("list", "ok").Inc()
	return c.JSON(http.StatusOK, notes)
}

// Add creates a note owned by the acting user.
func (h *NoteHandler) Add(c echo.Context) error {
	var req addNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := actingUser(c)
	if err != nil {
		return err
	}

	note, err := h.noteService.Add(c.Request().Context(), ports.AddNoteInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.NoteStatus(req.Status),
		Username:    user.Username,
		UserID:      user.ID,
	})
	if err != nil {
		metrics.NoteOpsTotal.WithLabelValues("add", "error").Inc()
		return err
	}

	metrics.NoteOpsTotal.WithLabelValues("add", "ok").Inc()
	return c.JSON(http.StatusOK, noteResponse{ID: note.ID, Title: note.Title, Description: note.Description})
}

// Update rewrites a note's title and description.
func (h *NoteHandler) Update(c echo.Context) error {
	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := actingUser(c)
	if err != nil {
		return err
	}

	note, err := h.noteService.Update(c.Request().Context(), req.ID, user.Username, req.Title, req.Description)
	if err != nil {
		metrics.NoteOpsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.NoteOpsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, noteResponse{ID: note.ID, Title: note.Title, Description: note.Description})
}

// UpdateStatus moves a note into one of the fixed status buckets.
func (h *NoteHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid status"})
	}

	user, err := actingUser(c)
	if err != nil {
		return err
	}

	if err := h.noteService.UpdateStatus(c.Request().Context(), req.ID, user.Username, domain.NoteStatus(req.Status)); err != nil {
		metrics.NoteOpsTotal.WithLabelValues("update_status", "error").Inc()
		return err
	}

	metrics.NoteOpsTotal.WithLabelValues("update_status", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Note status updated successfully"})
}

// Delete removes a note owned by the acting user.
func (h *NoteHandler) Delete(c echo.Context) error {
	var req deleteNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := actingUser(c)
	if err != nil {
		return err
	}

	if err := h.noteService.Delete(c.Request().Context(), req.ID, user.Username); err != nil {
		metrics.NoteOpsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.NoteOpsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Note deleted successfully"})
}

// actingUser extracts the snapshot injected by the session middleware.
func actingUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return user, nil
}
