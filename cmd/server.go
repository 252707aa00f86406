package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/quicknotes/notes-api/internal/api"
	"github.com/quicknotes/notes-api/internal/core/ports"
	"github.com/quicknotes/notes-api/internal/infrastructure/config"
	"github.com/quicknotes/notes-api/internal/infrastructure/db/mysql"
	"github.com/quicknotes/notes-api/internal/infrastructure/db/redis"
	"github.com/quicknotes/notes-api/internal/infrastructure/session"
	"github.com/quicknotes/notes-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the notes API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(ctx context.Context) error {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction()})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := mysql.Connect(ctx, mysql.Config{
		Host:     cfg.MySQL.Host,
		Port:     cfg.MySQL.Port,
		User:     cfg.MySQL.User,
		Password: cfg.MySQL.Password,
		Database: cfg.MySQL.Database,
	})
	if err != nil {
		return fmt.Errorf("connect mysql: %w", err)
	}
	defer db.Close()

	var (
		sessions ports.SessionStore
		rdb      *goredis.Client
	)
	switch cfg.SessionBackend {
	case "redis":
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
		sessions = redis.NewSessionStore(rdb)
	default:
		store := session.NewMemoryStore()
		store.StartSweeper(ctx)
		sessions = store
	}

	e := api.NewRouter(api.Deps{
		DB:           db,
		Redis:        rdb,
		Sessions:     sessions,
		SecureCookie: cfg.IsProduction(),
		Log:          log,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	log.Info().Str("port", cfg.Port).Str("session_backend", cfg.SessionBackend).Msg("server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
