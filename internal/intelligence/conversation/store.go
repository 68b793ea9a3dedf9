package conversation

import (
	"context"
	"sync"
	"time"

	"swayam-intelligence/internal/common/metrics"
	"swayam-intelligence/internal/models"
)

// SessionStore persists per-session conversation context between turns.
// Get returns (nil, nil) for a session that does not exist or has expired.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConversationContext, error)
	Put(ctx context.Context, cctx *models.ConversationContext) error
	Clear(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	cctx      *models.ConversationContext
	expiresAt time.Time
}

// MemoryStore is the default in-process session store. Entries expire after
// the configured TTL; a TTL of zero disables expiry.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*models.ConversationContext, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if s.ttl > 0 && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil, nil
	}
	return entry.cctx, nil
}

func (s *MemoryStore) Put(_ context.Context, cctx *models.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[cctx.SessionID] = memoryEntry{
		cctx:      cctx,
		expiresAt: time.Now().Add(s.ttl),
	}
	metrics.SessionsActive.WithLabelValues("memory").Set(float64(len(s.sessions)))
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	metrics.SessionsActive.WithLabelValues("memory").Set(float64(len(s.sessions)))
	return nil
}

// Len reports the number of live sessions, for the active-sessions gauge.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
