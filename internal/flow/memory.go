package flow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is the in-process fallback used when redis is not configured,
// and by tests.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]memoryEntry
	now    func() time.Time
}

type memoryEntry struct {
	state     State
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[string]memoryEntry),
		now:    time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, state State) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[token] = memoryEntry{state: state, expiresAt: s.now().Add(TTL)}
	return token, nil
}

func (s *MemoryStore) Consume(_ context.Context, token string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.states[token]
	if !ok {
		return nil, nil
	}
	delete(s.states, token)
	if s.now().After(entry.expiresAt) {
		return nil, nil
	}
	state := entry.state
	return &state, nil
}
