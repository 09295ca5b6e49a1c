package payment

import (
	"time"

	"github.com/google/uuid"
)

// Payment represents a row in the payments table. Amount is stored in major
// currency units as supplied by the client confirmation callback.
type Payment struct {
	ID            uuid.UUID
	Email         string
	BookingID     string
	Amount        float64
	Currency      string
	TransactionID string
	Status        string
	CreatedAt     time.Time
}
