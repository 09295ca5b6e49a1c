// Package stats computes the admin dashboard aggregates.
package stats

import "context"

// Summary holds marketplace-wide counts and summed payment revenue.
type Summary struct {
	Users    int64
	Places   int64
	Bookings int64
	Payments int64
	Revenue  float64
}

// Repository collects the summary in one round trip.
type Repository interface {
	Collect(ctx context.Context) (*Summary, error)
}
