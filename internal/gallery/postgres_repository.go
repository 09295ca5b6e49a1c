package gallery

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new gallery record.
func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO gallery (email, title, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, item.Email, item.Title, item.ImageURL).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting gallery item: %w", err)
	}

	return nil
}

// List returns all gallery records.
func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	query := `SELECT id, email, title, image_url, created_at FROM gallery ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing gallery: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Email, &item.Title, &item.ImageURL, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning gallery item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
