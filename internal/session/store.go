package session

import (
	"context"
	"sync"
)

// Store defines the interface for session storage operations
type Store interface {
	Set(ctx context.Context, token string, sess Session) error
	Get(ctx context.Context, token string) (Session, bool, error)
	Delete(ctx context.Context, token string) error
	Len(ctx context.Context) (int, error)
}

// memoryStore implements Store with a mutex-guarded map. Sessions are
// process-local by design: there is no persistence and no cross-node sharing.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[string]Session),
	}
}

// Set stores a session under its token
func (s *memoryStore) Set(_ context.Context, token string, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sess
	return nil
}

// Get retrieves a session by token
func (s *memoryStore) Get(_ context.Context, token string) (Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	return sess, ok, nil
}

// Delete removes a session; deleting an absent token is a no-op
func (s *memoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Len reports the number of stored sessions, expired entries included
func (s *memoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}
