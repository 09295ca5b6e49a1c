package user

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests and local
// development. Not durable.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*User
}

// NewMemoryRepository creates an empty in-memory Repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[uuid.UUID]*User)}
}

func (r *MemoryRepository) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = uuid.New()
	u.CreatedAt = time.Now().UTC()
	if u.Extra == nil {
		u.Extra = map[string]any{}
	}

	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *User
	for _, u := range r.users {
		if u.Email == email && (found == nil || u.CreatedAt.Before(found.CreatedAt)) {
			found = u
		}
	}
	if found == nil {
		return nil, ErrUserNotFound
	}
	cp := *found
	return &cp, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (r *MemoryRepository) Update(_ context.Context, id uuid.UUID, patch Patch) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}

	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.PhotoURL != nil {
		u.PhotoURL = *patch.PhotoURL
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.LastSignInAt != nil {
		t := *patch.LastSignInAt
		u.LastSignInAt = &t
	}
	for k, v := range patch.Extra {
		if u.Extra == nil {
			u.Extra = map[string]any{}
		}
		u.Extra[k] = v
	}

	return 1, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}
