package session

import (
	"sync"
	"time"

	"github.com/t1tu5x/project-golan/internal/catalog"
	"github.com/t1tu5x/project-golan/internal/planner"
)

// Session is the per-visitor context: it owns the catalog tables seen by this
// visitor and the dropdown values the form retains between renders.
type Session struct {
	ID      string
	Catalog *catalog.Cache

	mu        sync.Mutex
	selection planner.Selection
	lastSeen  time.Time
}

// Selection returns a copy of the retained dropdown values.
func (s *Session) Selection() planner.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Clone()
}

func (s *Session) SetSelection(sel planner.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = sel.Clone()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
