package reservation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu           sync.RWMutex
	reservations []Reservation
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, res *Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res.ID = uuid.New()
	res.CreatedAt = time.Now().UTC()
	if res.Status == "" {
		res.Status = "pending"
	}
	r.reservations = append(r.reservations, *res)
	return nil
}

func (r *MemoryRepository) ListByEmail(_ context.Context, email string) ([]Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Reservation
	for _, res := range r.reservations {
		if res.Email == email {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out, nil
}
