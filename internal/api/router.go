package api

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quicknotes/notes-api/internal/api/handler"
	"github.com/quicknotes/notes-api/internal/api/middleware"
	"github.com/quicknotes/notes-api/internal/core/ports"
	"github.com/quicknotes/notes-api/internal/core/service"
	"github.com/quicknotes/notes-api/internal/infrastructure/db/mysql"
)

// Deps carries everything the router needs. Redis is nil when sessions are
// kept in memory.
type Deps struct {
	DB           *sql.DB
	Redis        *redis.Client
	Sessions     ports.SessionStore
	SecureCookie bool
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mysql.NewUserRepository(deps.DB)
	noteRepo := mysql.NewNoteRepository(deps.DB)

	authService := service.NewAuthService(userRepo, deps.Sessions, deps.Log)
	noteService := service.NewNoteService(noteRepo, deps.Log)

	authHandler := handler.NewAuthHandler(authService, deps.SecureCookie)
	noteHandler := handler.NewNoteHandler(noteService)

	// --- Auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/check-session", authHandler.CheckSession)
	e.POST("/api/logout", authHandler.Logout)

	// --- Note routes (session required) ---
	notes := e.Group("/notes/api", middleware.Session(authService))
	notes.POST("", noteHandler.List)
	notes.POST("/add-notes", noteHandler.Add)
	notes.PUT("/update-notes", noteHandler.Update)
	notes.PUT("/update-status", noteHandler.UpdateStatus)
	notes.DELETE("/delete", noteHandler.Delete)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
