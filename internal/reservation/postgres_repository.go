package reservation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

const reservationColumns = `id, email, place_name, date, guests, status, created_at`

// Create inserts a new reservation record.
func (r *PostgresRepository) Create(ctx context.Context, res *Reservation) error {
	query := `
		INSERT INTO reservations (email, place_name, date, guests, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	status := res.Status
	if status == "" {
		status = "pending"
		res.Status = status
	}

	err := r.pool.QueryRow(ctx, query, res.Email, res.PlaceName, res.Date, res.Guests, status).
		Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting reservation: %w", err)
	}

	return nil
}

// ListByEmail returns all reservations recorded for the given email.
func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE email = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	return collect(rows)
}

// ListAll returns every reservation record.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]Reservation, error) {
	defer rows.Close()

	var reservations []Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(&res.ID, &res.Email, &res.PlaceName, &res.Date, &res.Guests, &res.Status, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}
