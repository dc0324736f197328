package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/t1tu5x/project-golan/internal/catalog"
	"github.com/t1tu5x/project-golan/internal/planner"
)

var ErrNotFound = errors.New("session not found")

// Store keeps sessions in memory. Idle sessions are dropped once they outlive the
// TTL; pruning happens when new sessions are created.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	newCatalog func() *catalog.Cache
	ttl        time.Duration
	now        func() time.Time
}

// NewStore builds a store. newCatalog is called once per session; returning the
// same cache every time pools catalog tables across sessions.
func NewStore(newCatalog func() *catalog.Cache, ttl time.Duration) *Store {
	return &Store{
		sessions:   make(map[string]*Session),
		newCatalog: newCatalog,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *Store) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		Catalog:   s.newCatalog(),
		selection: planner.Selection{},
		lastSeen:  now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)
	s.sessions[sess.ID] = sess
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	sess.touch(now)
	return sess, nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) pruneLocked(now time.Time) {
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && sess.idleSince(now) > s.ttl
}
