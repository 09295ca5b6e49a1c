package place

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	places map[uuid.UUID]*Place
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{places: make(map[uuid.UUID]*Place)}
}

func (r *MemoryRepository) Create(_ context.Context, p *Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	cp := *p
	r.places[p.ID] = &cp
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.places[id]
	if !ok {
		return nil, ErrPlaceNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	places := make([]Place, 0, len(r.places))
	for _, p := range r.places {
		places = append(places, *p)
	}
	sort.Slice(places, func(i, j int) bool { return places[i].CreatedAt.Before(places[j].CreatedAt) })
	return places, nil
}

func (r *MemoryRepository) Update(_ context.Context, id uuid.UUID, f UpdateFields) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.places[id]
	if !ok {
		return 0, nil
	}

	p.Name = f.Name
	p.Category = f.Category
	p.Description = f.Description
	p.OldPrice = f.OldPrice
	p.NewPrice = f.NewPrice
	p.Rating = f.Rating
	p.Stock = f.Stock
	p.StockQuantity = f.StockQuantity
	p.Featured = f.Featured
	p.Offer = f.Offer
	p.Brand = f.Brand
	p.UnitOfMeasure = f.UnitOfMeasure
	p.Img = f.Img

	return 1, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.places[id]; !ok {
		return 0, nil
	}
	delete(r.places, id)
	return 1, nil
}
