package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const userColumns = `id, email, name, photo_url, role, last_sign_in_at, extra, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role,
		&u.LastSignInAt, &u.Extra, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

// Create inserts a new user record.
func (r *PostgresRepository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (email, name, photo_url, role, last_sign_in_at, extra)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	extra := u.Extra
	if extra == nil {
		extra = map[string]any{}
	}

	err := r.pool.QueryRow(ctx, query,
		u.Email, u.Name, u.PhotoURL, u.Role, u.LastSignInAt, extra,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

// GetByID retrieves a single user by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail retrieves the first user matching the given email. Email is the
// business key but is not backed by a unique index, mirroring the store
// contract: registration is the only writer and checks for existence first.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 ORDER BY created_at LIMIT 1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

// List returns all user records.
func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}

	return users, rows.Err()
}

// Update applies a partial update and returns the number of matched rows.
// A missing id yields zero, not an error.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, patch Patch) (int64, error) {
	var sets []string
	var args []any

	add := func(expr string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf(expr, len(args)))
	}

	if patch.Name != nil {
		add("name = $%d", *patch.Name)
	}
	if patch.PhotoURL != nil {
		add("photo_url = $%d", *patch.PhotoURL)
	}
	if patch.Role != nil {
		add("role = $%d", *patch.Role)
	}
	if patch.LastSignInAt != nil {
		add("last_sign_in_at = $%d", *patch.LastSignInAt)
	}
	if len(patch.Extra) > 0 {
		add("extra = extra || $%d", patch.Extra)
	}

	if len(sets) == 0 {
		// Empty patch still reports whether the id matched.
		var n int64
		err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE id = $1`, id).Scan(&n)
		if err != nil {
			return 0, fmt.Errorf("counting user: %w", err)
		}
		return n, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("updating user: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete removes a user record and returns the number of deleted rows.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting user: %w", err)
	}
	return tag.RowsAffected(), nil
}
