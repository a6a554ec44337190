package repositories

import (
	"context"
	"errors"
	"fashion-hub/models"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores sessions for their lifetime only. Update runs fn
// against the current session (a fresh one when absent or expired) and
// persists the result atomically with respect to other updates of that ID.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, id string, fn func(*models.Session)) (*models.Session, error)
}

type MemorySessionRepository struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*models.Session
	now      func() time.Time
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		ttl:      ttl,
		sessions: map[string]*models.Session{},
		now:      time.Now,
	}
}

func (r *MemorySessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (r *MemorySessionRepository) Update(ctx context.Context, id string, fn func(*models.Session)) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()
	s, ok := r.sessions[id]
	if !ok {
		s = models.NewSession(id, r.ttl)
	} else {
		s = cloneSession(s)
	}

	fn(s)
	s.ExpiresAt = r.now().Add(r.ttl)
	r.sessions[id] = s

	return cloneSession(s), nil
}

// sweep drops expired sessions. Caller holds mu.
func (r *MemorySessionRepository) sweep() {
	now := r.now()
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
		}
	}
}

func cloneSession(s *models.Session) *models.Session {
	c := *s
	c.Cart = s.Cart.Snapshot()
	return &c
}
