package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wendelDmesquita/minhas-financas-api/internal/model"
)

// ErrEmailExists reports a violated unique constraint on users.email.
// The service layer maps it to its duplicate-email business error, so a
// registration race still surfaces the same message to the user.
var ErrEmailExists = errors.New("email already exists")

// SaveUser inserts a new user and returns it with the assigned identity.
func (r *Repository) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	saved := *user
	err := r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Password,
	).Scan(&saved.ID, &saved.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &saved, nil
}

// FindUserByEmail retrieves a user by exact email match.
// Returns (nil, nil) when no user matches.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, name, email, password, created_at
		FROM users
		WHERE email = $1
	`

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// ExistsUserByEmail checks whether a user with this email exists.
func (r *Repository) ExistsUserByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// FindUserByID retrieves a user by identity.
// Returns (nil, nil) when no user matches.
func (r *Repository) FindUserByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, name, email, password, created_at
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// scanUser scans a single row into a User model.
func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
