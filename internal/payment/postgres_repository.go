package payment

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

// Create inserts a new payment record.
func (r *PostgresRepository) Create(ctx context.Context, p *Payment) error {
	query := `
		INSERT INTO payments (email, booking_id, amount, currency, transaction_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	currency := p.Currency
	if currency == "" {
		currency = "usd"
		p.Currency = currency
	}

	err := r.pool.QueryRow(ctx, query,
		p.Email, p.BookingID, p.Amount, currency, p.TransactionID, p.Status,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}

	return nil
}

// ListByEmail returns all payments recorded for the given email.
func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]Payment, error) {
	query := `
		SELECT id, email, booking_id, amount, currency, transaction_id, status, created_at
		FROM payments
		WHERE email = $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.Email, &p.BookingID, &p.Amount, &p.Currency,
			&p.TransactionID, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
