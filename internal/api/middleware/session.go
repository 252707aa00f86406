package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quicknotes/notes-api/internal/core/domain"
	"github.com/quicknotes/notes-api/internal/core/ports"
)

// SessionCookie is the name of the session cookie set at login.
const SessionCookie = "session_token"

// UserContextKey is where the resolved user snapshot lives in the echo context.
const UserContextKey = "session_user"

// notLoggedInResponse mirrors the check-session failure body so every request
// rejected at the session gate reads the same way to the client.
type notLoggedInResponse struct {
	IsLoggedIn bool `json:"isLoggedIn"`
}

// Session resolves the session cookie and injects the bound user snapshot
// into the request context. Requests without a valid session get a 401.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, notLoggedInResponse{})
			}

			user, err := auth.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, notLoggedInResponse{})
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the snapshot injected by Session. The second return
// is false when the middleware did not run for this route.
func UserFromContext(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(UserContextKey).(*domain.User)
	return user, ok
}
