package payment

import "context"

// Repository provides operations on the payments table.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByEmail(ctx context.Context, email string) ([]Payment, error)
}
