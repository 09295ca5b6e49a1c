package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
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

// Create inserts a new booking record.
func (r *PostgresRepository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (email, place_name, date, guest_count, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, b.Email, b.PlaceName, b.Date, b.GuestCount, b.Price).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}

	return nil
}

// ListByEmail returns all bookings recorded for the given email.
func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]Booking, error) {
	query := `
		SELECT id, email, place_name, date, guest_count, price, created_at
		FROM bookings
		WHERE email = $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.Email, &b.PlaceName, &b.Date, &b.GuestCount, &b.Price, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// Update replaces the guest count and price and returns the matched count.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, f UpdateFields) (int64, error) {
	query := `UPDATE bookings SET guest_count = $1, price = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, f.GuestCount, f.Price, id)
	if err != nil {
		return 0, fmt.Errorf("updating booking: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete removes a booking record and returns the number of deleted rows.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting booking: %w", err)
	}
	return tag.RowsAffected(), nil
}
