// Package session provides the in-memory SessionStore used when no external
// cache is configured. Sessions do not survive a process restart.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quicknotes/notes-api/internal/core/domain"
	"github.com/quicknotes/notes-api/internal/core/ports"
)

const sweepInterval = time.Minute

type entry struct {
	user      domain.User
	expiresAt time.Time
}

// MemoryStore keeps sessions in a mutex-guarded map with a background sweep
// that evicts expired entries.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a MemoryStore with the standard session TTL.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		ttl:      ports.SessionTTL,
		now:      time.Now,
	}
}

// StartSweeper launches the eviction loop. It stops when ctx is cancelled.
func (m *MemoryStore) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *MemoryStore) Create(_ context.Context, user *domain.User) (string, error) {
	token := uuid.NewString()

	snapshot := *user
	snapshot.PasswordHash = ""

	m.mu.Lock()
	m.sessions[token] = entry{user: snapshot, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()

	return token, nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (*domain.User, error) {
	m.mu.RLock()
	e, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok || m.now().After(e.expiresAt) {
		return nil, domain.ErrSessionNotFound
	}

	user := e.user
	return &user, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) sweep() {
	now := m.now()
	m.mu.Lock()
	for token, e := range m.sessions {
		if now.After(e.expiresAt) {
			delete(m.sessions, token)
		}
	}
	m.mu.Unlock()
}
