package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quicknotes/notes-api/internal/core/domain"
)

type stubResolver struct {
	resolveFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubResolver) Register(context.Context, int64, string, string, string, string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubResolver) Login(context.Context, string, string, string) (string, *domain.User, error) {
	return "", nil, errors.New("not implemented")
}

func (s *stubResolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	return s.resolveFn(ctx, token)
}

func (s *stubResolver) Logout(context.Context, string) error {
	return errors.New("not implemented")
}

func runMiddleware(t *testing.T, auth *stubResolver, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notes/api", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return nil
	}

	err := Session(auth)(next)(c)
	return c, rec, nextCalled, err
}

func TestSession_MissingCookie(t *testing.T) {
	auth := &stubResolver{
		resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
			t.Fatalf("resolve should not be called")
			return nil, nil
		},
	}

	_, rec, nextCalled, err := runMiddleware(t, auth, nil)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"isLoggedIn":false`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if nextCalled {
		t.Fatalf("next must not run without a session")
	}
}

func TestSession_UnknownToken(t *testing.T) {
	auth := &stubResolver{
		resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrSessionNotFound
		},
	}

	_, rec, nextCalled, err := runMiddleware(t, auth, &http.Cookie{Name: SessionCookie, Value: "stale"})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"isLoggedIn":false`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if nextCalled {
		t.Fatalf("next must not run with a stale session")
	}
}

func TestSession_ValidToken(t *testing.T) {
	auth := &stubResolver{
		resolveFn: func(ctx context.Context, token string) (*domain.User, error) {
			if token != "tok-123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &domain.User{ID: 1, Username: "alice"}, nil
		},
	}

	c, _, nextCalled, err := runMiddleware(t, auth, &http.Cookie{Name: SessionCookie, Value: "tok-123"})
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !nextCalled {
		t.Fatalf("next should have run")
	}

	user, ok := UserFromContext(c)
	if !ok || user.Username != "alice" || user.ID != 1 {
		t.Fatalf("user snapshot missing from context: %v %v", user, ok)
	}
}
