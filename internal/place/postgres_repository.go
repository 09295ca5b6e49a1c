package place

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
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

const placeColumns = `id, name, category, description, old_price, new_price, rating,
	stock, stock_quantity, featured, offer, brand, unit_of_measure, img, created_at`

func scanPlace(row pgx.Row) (*Place, error) {
	var p Place
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.OldPrice,
		&p.NewPrice, &p.Rating, &p.Stock, &p.StockQuantity, &p.Featured,
		&p.Offer, &p.Brand, &p.UnitOfMeasure, &p.Img, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("scanning place: %w", err)
	}
	return &p, nil
}

// Create inserts a new place record.
func (r *PostgresRepository) Create(ctx context.Context, p *Place) error {
	query := `
		INSERT INTO places (name, category, description, old_price, new_price, rating,
			stock, stock_quantity, featured, offer, brand, unit_of_measure, img)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		p.Name, p.Category, p.Description, p.OldPrice, p.NewPrice, p.Rating,
		p.Stock, p.StockQuantity, p.Featured, p.Offer, p.Brand, p.UnitOfMeasure, p.Img,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting place: %w", err)
	}

	return nil
}

// GetByID retrieves a single place by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`
	return scanPlace(r.pool.QueryRow(ctx, query, id))
}

// List returns all place records.
func (r *PostgresRepository) List(ctx context.Context) ([]Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing places: %w", err)
	}
	defer rows.Close()

	var places []Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, *p)
	}

	return places, rows.Err()
}

// Update replaces the fixed field-set and returns the matched count.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, f UpdateFields) (int64, error) {
	query := `
		UPDATE places
		SET name = $1, category = $2, description = $3, old_price = $4, new_price = $5,
			rating = $6, stock = $7, stock_quantity = $8, featured = $9, offer = $10,
			brand = $11, unit_of_measure = $12, img = $13
		WHERE id = $14`

	tag, err := r.pool.Exec(ctx, query,
		f.Name, f.Category, f.Description, f.OldPrice, f.NewPrice, f.Rating,
		f.Stock, f.StockQuantity, f.Featured, f.Offer, f.Brand, f.UnitOfMeasure, f.Img, id)
	if err != nil {
		return 0, fmt.Errorf("updating place: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete removes a place record and returns the number of deleted rows.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting place: %w", err)
	}
	return tag.RowsAffected(), nil
}
