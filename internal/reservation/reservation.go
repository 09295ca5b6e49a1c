// Package reservation stores stay reservations. Listings are scoped to the
// caller's own email; the admin view sees every record.
package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Reservation represents a row in the reservations table.
type Reservation struct {
	ID        uuid.UUID
	Email     string
	PlaceName string
	Date      string
	Guests    int
	Status    string
	CreatedAt time.Time
}

// Repository provides operations on the reservations table.
type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	ListByEmail(ctx context.Context, email string) ([]Reservation, error)
	ListAll(ctx context.Context) ([]Reservation, error)
}
