package sizestore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps the last maze size in process memory. It is used when no
// Redis address is configured.
type MemoryStore struct {
	size int
	sync.RWMutex
}

// NewMemoryStore creates a store that starts at defaultSize.
func NewMemoryStore(defaultSize int) *MemoryStore {
	return &MemoryStore{size: defaultSize}
}

func (s *MemoryStore) LastSize(_ context.Context) (int, error) {
	s.RLock()
	defer s.RUnlock()
	return s.size, nil
}

func (s *MemoryStore) SaveSize(_ context.Context, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	s.Lock()
	defer s.Unlock()
	s.size = size
	return nil
}
