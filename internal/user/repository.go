package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user record is not found.
var ErrUserNotFound = errors.New("user not found")

// Repository provides operations on the users table. Update and Delete
// report the number of affected rows instead of failing on a missing id:
// callers surface the zero count to the client verbatim.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, patch Patch) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
