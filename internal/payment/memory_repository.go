package payment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	payments []Payment
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, p *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	if p.Currency == "" {
		p.Currency = "usd"
	}
	r.payments = append(r.payments, *p)
	return nil
}

func (r *MemoryRepository) ListByEmail(_ context.Context, email string) ([]Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Payment
	for _, p := range r.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}
