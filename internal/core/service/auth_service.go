package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quicknotes/notes-api/internal/core/domain"
	"github.com/quicknotes/notes-api/internal/core/ports"
)

// AuthService implements registration, login and the session lifecycle.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	cost     int
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, cost: bcrypt.DefaultCost, log: log}
}

// Register hashes the password and persists a new account. The plaintext
// password never reaches the repository.
func (s *AuthService) Register(ctx context.Context, id int64, username, password, email, name string) (*domain.User, error) {
	if id == 0 || username == "" || password == "" || email == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           id,
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreateDate:   time.Now().UTC().Truncate(24 * time.Hour),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Int64("user_id", id).Msg("user registered")
	return created, nil
}

// Login verifies the credentials against the stored hash and opens a session.
func (s *AuthService) Login(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	user, err := s.users.FindByUsernameAndEmail(ctx, username, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info().Str("username", username).Msg("user logged in")
	return token, user, nil
}

// Resolve maps a session token back to the user snapshot bound at login.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}
	return s.sessions.Get(ctx, token)
}

// Logout destroys the session. The cookie is only cleared by the handler when
// this succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	s.log.Debug().Msg("session destroyed")
	return nil
}
