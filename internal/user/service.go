package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Service provides account operations on top of the Repository.
type Service struct {
	repo Repository
}

// NewService creates a new user Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates the user on first registration for its email. Re-registering
// an existing email is a no-op reporting the stored record: created is false
// and exactly one record remains persisted.
func (s *Service) Register(ctx context.Context, u *User) (created bool, existing *User, err error) {
	found, err := s.repo.GetByEmail(ctx, u.Email)
	if err == nil {
		return false, found, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return false, nil, fmt.Errorf("checking existing user: %w", err)
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return false, nil, err
	}

	return true, u, nil
}

// IsAdmin performs the role point read for the given email. An unknown email
// and a known non-admin are indistinguishable: both report false. The read
// is never cached across requests.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("looking up role for %s: %w", email, err)
	}
	return u.IsAdmin(), nil
}

// Promote sets role=admin on the addressed record and returns the matched
// count. A missing id yields zero, not an error.
func (s *Service) Promote(ctx context.Context, id uuid.UUID) (int64, error) {
	role := RoleAdmin
	return s.repo.Update(ctx, id, Patch{Role: &role})
}
