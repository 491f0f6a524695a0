package importer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// --------------------------------------------------
// InMemorySessionStore
// --------------------------------------------------

type InMemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session

	// Now lets tests control the clock. Defaults to time.Now.
	Now func() time.Time
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[string]*Session),
		Now:      time.Now,
	}
}

func (s *InMemorySessionStore) Create(_ context.Context, userID, filename string, columns []string, rows []map[string]string, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.New().String()
	now := s.Now()

	s.sessions[token] = &Session{
		ID:        token,
		UserID:    userID,
		Filename:  filename,
		Columns:   columns,
		Rows:      rows,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	return token, nil
}

func (s *InMemorySessionStore) GetValid(_ context.Context, token, userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok || session.UserID != userID || !s.Now().Before(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}

	copied := *session
	return &copied, nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *InMemorySessionStore) SweepExpired(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	for token, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
	return nil
}
