package repository

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.docs[name]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return append([]byte(nil), body...), nil
}

func (s *MemoryStore) Save(_ context.Context, name string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[name] = append([]byte(nil), body...)
	return nil
}
