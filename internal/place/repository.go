package place

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrPlaceNotFound is returned when a place record is not found.
var ErrPlaceNotFound = errors.New("place not found")

// Repository provides operations on the places table. Update and Delete
// report affected-row counts; a missing id yields zero, not an error.
type Repository interface {
	Create(ctx context.Context, p *Place) error
	GetByID(ctx context.Context, id uuid.UUID) (*Place, error)
	List(ctx context.Context) ([]Place, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
