package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a row in the bookings table.
type Booking struct {
	ID         uuid.UUID
	Email      string
	PlaceName  string
	Date       string
	GuestCount int
	Price      float64
	CreatedAt  time.Time
}

// UpdateFields is the field-set replaced by a booking patch.
type UpdateFields struct {
	GuestCount int
	Price      float64
}
