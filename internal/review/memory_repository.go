package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	reviews []Review
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, rev *Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rev.ID = uuid.New()
	rev.CreatedAt = time.Now().UTC()
	r.reviews = append(r.reviews, *rev)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}
