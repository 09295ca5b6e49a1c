// Package gallery stores user-submitted trip media entries.
package gallery

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Item represents a row in the gallery table.
type Item struct {
	ID        uuid.UUID
	Email     string
	Title     string
	ImageURL  string
	CreatedAt time.Time
}

// Repository provides operations on the gallery table.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	List(ctx context.Context) ([]Item, error)
}
