package stats

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

// Collect runs the aggregate query for the admin dashboard.
func (r *PostgresRepository) Collect(ctx context.Context) (*Summary, error) {
	query := `
		SELECT
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM places),
			(SELECT count(*) FROM bookings),
			(SELECT count(*) FROM payments),
			(SELECT COALESCE(sum(amount), 0) FROM payments)`

	var s Summary
	err := r.pool.QueryRow(ctx, query).Scan(&s.Users, &s.Places, &s.Bookings, &s.Payments, &s.Revenue)
	if err != nil {
		return nil, fmt.Errorf("collecting stats: %w", err)
	}

	return &s, nil
}
