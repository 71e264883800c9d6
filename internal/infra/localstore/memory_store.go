package localstore

import (
	"context"
	"slices"
	"sync"

	"tilemart/internal/domain/repository"
)

// memoryStore is an in-memory CartRepository, used by tests and by callers
// that do not want a durable cart.
type memoryStore struct {
	mu      sync.Mutex
	tileIDs []int64
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() repository.CartRepository {
	return &memoryStore{}
}

func (s *memoryStore) Load(ctx context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.tileIDs), nil
}

func (s *memoryStore) Save(ctx context.Context, tileIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tileIDs = slices.Clone(tileIDs)

	return nil
}
