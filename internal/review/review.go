// Package review stores traveller reviews. The surface is intentionally
// small: a single insert and a full listing.
package review

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Review represents a row in the reviews table.
type Review struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Rating    float64
	Comment   string
	CreatedAt time.Time
}

// Repository provides operations on the reviews table.
type Repository interface {
	Create(ctx context.Context, rev *Review) error
	List(ctx context.Context) ([]Review, error)
}
