package repository

import (
	"context"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
	"sync"
	"time"
)

// SessionMemoryRepository keeps sessions in process memory. Sessions are lost
// on restart and are not shared between replicas.
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
	now      func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: map[string]entities.Session{}, now: time.Now}
}

// Save stores s and drops every session that has already expired.
func (r *SessionMemoryRepository) Save(_ context.Context, s entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for token, existing := range r.sessions {
		if existing.Expired(now) {
			delete(r.sessions, token)
		}
	}
	r.sessions[s.Token] = s
	return nil
}

func (r *SessionMemoryRepository) Get(_ context.Context, token string) (entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[token], nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *SessionMemoryRepository) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
