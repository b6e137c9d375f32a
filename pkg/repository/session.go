package repository

import (
	"sync"
	"time"

	"github.com/dskvich/chatai-assistant/pkg/domain"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionRepository keeps sessions in memory. A session untouched for
// longer than ttl is dropped; ttl <= 0 disables expiry.
func NewSessionRepository(ttl time.Duration) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *sessionRepository) Save(session domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = r.now()
	}

	r.sessions[session.ID] = session
}

func (r *sessionRepository) Get(id string) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok || r.isExpired(session) {
		return domain.Session{}, false
	}

	return session, true
}

func (r *sessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Purge removes expired sessions and reports how many were dropped.
func (r *sessionRepository) Purge() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	for id, session := range r.sessions {
		if r.isExpired(session) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

func (r *sessionRepository) isExpired(session domain.Session) bool {
	if r.ttl <= 0 {
		return false
	}
	return r.now().Sub(session.UpdatedAt) > r.ttl
}
