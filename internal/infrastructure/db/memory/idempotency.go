package memory

import (
	"context"
	"sync"
)

// IdempotencyStore keeps idempotency keys for the life of the process.
// A stored ID of zero marks a reservation whose create is still running.
type IdempotencyStore struct {
	mu   sync.Mutex
	keys map[string]int64
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{keys: make(map[string]int64)}
}

func (s *IdempotencyStore) Reserve(_ context.Context, resource, key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := resource + ":" + key
	if id, ok := s.keys[k]; ok {
		return id, false, nil
	}
	s.keys[k] = 0
	return 0, true, nil
}

func (s *IdempotencyStore) Complete(_ context.Context, resource, key string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := resource + ":" + key
	if existing, ok := s.keys[k]; !ok || existing == 0 {
		s.keys[k] = id
	}
	return nil
}

func (s *IdempotencyStore) Release(_ context.Context, resource, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := resource + ":" + key
	if id, ok := s.keys[k]; ok && id == 0 {
		delete(s.keys, k)
	}
	return nil
}
