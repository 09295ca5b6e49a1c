package booking

import (
	"context"

	"github.com/google/uuid"
)

// Repository provides operations on the bookings table. Update and Delete
// report affected-row counts; a missing id yields zero, not an error.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	ListByEmail(ctx context.Context, email string) ([]Booking, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
