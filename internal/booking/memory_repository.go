package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*Booking
	order    []uuid.UUID
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: make(map[uuid.UUID]*Booking)}
}

func (r *MemoryRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = uuid.New()
	b.CreatedAt = time.Now().UTC()
	cp := *b
	r.bookings[b.ID] = &cp
	r.order = append(r.order, b.ID)
	return nil
}

func (r *MemoryRepository) ListByEmail(_ context.Context, email string) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Booking
	for _, id := range r.order {
		if b, ok := r.bookings[id]; ok && b.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, id uuid.UUID, f UpdateFields) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return 0, nil
	}
	b.GuestCount = f.GuestCount
	b.Price = f.Price
	return 1, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return 0, nil
	}
	delete(r.bookings, id)
	return 1, nil
}
